package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderAt(t *testing.T, reference string, steps int) *order.Order {
	t.Helper()
	item, err := order.NewLineItem("P-1", "Part", 1, "")
	require.NoError(t, err)
	o, err := order.NewOrder(reference, "ACME", []order.LineItem{item})
	require.NoError(t, err)
	for range steps {
		o.Advance("")
	}
	return o
}

func TestWorkflowSummarizer_Summarize(t *testing.T) {
	t.Run("should count orders per state", func(t *testing.T) {
		orders := []*order.Order{
			newOrderAt(t, "A", 0),
			newOrderAt(t, "B", 1),
			newOrderAt(t, "C", 1),
			newOrderAt(t, "D", 11),
		}

		summary, err := services.NewWorkflowSummarizer().Summarize(orders)

		require.NoError(t, err)
		assert.Equal(t, 4, summary.Total)
		require.Len(t, summary.ByState, order.TotalStates)
		assert.Equal(t, 1, summary.Count(order.OfferReceived))
		assert.Equal(t, 2, summary.Count(order.OrderDraft))
		assert.Equal(t, 1, summary.Count(order.Completed))
		assert.Equal(t, 0, summary.Count(order.PackageInTransit))
		assert.Equal(t, 2, summary.Blocked)
		// (0 + 9 + 9 + 100) / 4
		assert.InDelta(t, 29.5, summary.AverageProgress, 1e-9)
	})

	t.Run("should count unknown states separately", func(t *testing.T) {
		snap := newOrderAt(t, "X", 0).Snapshot()
		snap.State = order.Unknown
		unknown, err := order.Restore(snap)
		require.NoError(t, err)

		summary, err := services.NewWorkflowSummarizer().Summarize([]*order.Order{unknown})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Unknown)
		assert.Zero(t, summary.AverageProgress)
	})

	t.Run("should handle empty input", func(t *testing.T) {
		summary, err := services.NewWorkflowSummarizer().Summarize(nil)

		require.NoError(t, err)
		assert.Zero(t, summary.Total)
		assert.Len(t, summary.ByState, order.TotalStates)
	})

	t.Run("should reject invalid orders", func(t *testing.T) {
		_, err := services.NewWorkflowSummarizer().Summarize([]*order.Order{{}})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
