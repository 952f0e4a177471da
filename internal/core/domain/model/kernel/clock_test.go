package kernel_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock(t *testing.T) {
	t.Run("returns utc truncated to microseconds", func(t *testing.T) {
		now := kernel.SystemClock()()

		assert.Equal(t, time.UTC, now.Location())
		assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
	})
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	clock := kernel.FixedClock(at)

	assert.Equal(t, at, clock())
	assert.Equal(t, at, clock())
}
