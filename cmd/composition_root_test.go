package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"fulfillment/cmd"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_FileStore(t *testing.T) {
	ctx := t.Context()
	dir := t.TempDir()
	cfg := cmd.Config{
		StoreDriver: cmd.StoreDriverFile,
		DataFile:    filepath.Join(dir, "orders.json"),
		BackupDir:   filepath.Join(dir, "backups"),
		BackupKeep:  2,
	}

	root, err := cmd.NewCompositionRoot(ctx, cfg, logging.Discard())
	require.NoError(t, err)
	defer func() { assert.NoError(t, root.Close()) }()

	create := root.CreateCreateOrderCommandHandler()
	cmdCreate, err := commands.NewCreateOrderCommand("OF-1", "ACME",
		[]commands.LineItemInput{{Code: "P-100", Quantity: 1}}, nil)
	require.NoError(t, err)
	require.NoError(t, create.Handle(ctx, cmdCreate))

	advance := root.CreateAdvanceOrderCommandHandler()
	cmdAdvance, err := commands.NewAdvanceOrderCommand("OF-1", "", true)
	require.NoError(t, err)
	result, err := advance.Handle(ctx, cmdAdvance)
	require.NoError(t, err)
	assert.Equal(t, order.OrderDraft, result.To)

	query, err := queries.NewGetOrderQuery("OF-1")
	require.NoError(t, err)
	details, err := root.CreateGetOrderQueryHandler().Handle(ctx, query)
	require.NoError(t, err)
	assert.Len(t, details.History, 2)

	summary, err := root.CreateGetWorkflowSummaryQueryHandler().Handle(ctx, queries.NewGetWorkflowSummaryQuery())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count(order.OrderDraft))

	backup := root.CreateBackupOrdersCommandHandler()
	location, err := backup.Handle(ctx, commands.NewBackupOrdersCommand())
	require.NoError(t, err)
	_, err = os.Stat(location)
	assert.NoError(t, err)

	assert.NotNil(t, root.CreateJobManager())
}

func TestCompositionRoot_UnknownDriver(t *testing.T) {
	_, err := cmd.NewCompositionRoot(t.Context(), cmd.Config{StoreDriver: "mongo"}, logging.Discard())
	require.ErrorIs(t, err, cmd.ErrUnknownStoreDriver)
}
