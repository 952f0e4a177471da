package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewAdvanceOrderCommand(" OF-1 ", "documents checked", true)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "OF-1", cmd.Reference())
		assert.Equal(t, "documents checked", cmd.Comment())
		assert.True(t, cmd.Enforce())
	})

	t.Run("blank reference", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderCommand("  ", "", false)
		require.ErrorIs(t, err, commands.ErrReferenceIsRequired)
	})

	t.Run("zero value", func(t *testing.T) {
		assert.ErrorIs(t, commands.AdvanceOrderCommand{}.Validate(), commands.ErrAdvanceOrderCommandIsNotConstructed)
	})
}

func TestNewRetreatOrderCommand(t *testing.T) {
	cmd, err := commands.NewRetreatOrderCommand("OF-1", "")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "OF-1", cmd.Reference())
	assert.Empty(t, cmd.Comment())

	_, err = commands.NewRetreatOrderCommand("", "")
	require.ErrorIs(t, err, commands.ErrReferenceIsRequired)

	assert.ErrorIs(t, commands.RetreatOrderCommand{}.Validate(), commands.ErrRetreatOrderCommandIsNotConstructed)
}
