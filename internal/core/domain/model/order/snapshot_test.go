package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestore(t *testing.T) {
	t.Run("round trip keeps every field and five history entries", func(t *testing.T) {
		o := newOrder(t)
		o.SetSupplierEmail("sales@acme.test")
		o.Advance("")
		o.SetRequisitionID("REQ-1")
		require.NoError(t, o.SetInternalOrderNumber(42))
		o.Advance("")
		o.Advance("signed by manager")
		o.SetPurchaseOrderDocument("po.pdf")
		o.SetPurchaseOrderNumber("PO-9")
		o.Advance("")
		require.Len(t, o.History(), 5)

		restored, err := order.Restore(o.Snapshot())

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.Equal(t, o.Snapshot(), restored.Snapshot())
		assert.Equal(t, order.PickupFormSubmittedNoLabels, restored.State())
		assert.Equal(t, "signed by manager", restored.History()[3].Comment())
		assert.True(t, o.History()[2].ID().IsEqual(restored.History()[2].ID()))
	})

	t.Run("accepts legacy records without ids or line items", func(t *testing.T) {
		restored, err := order.Restore(order.Snapshot{
			Reference: "OF-OLD",
			Supplier:  "ACME",
			State:     order.OrderDraft,
			History: []order.HistorySnapshot{
				{State: order.OfferReceived, Timestamp: time.Now(), Comment: "order created"},
			},
		})

		require.NoError(t, err)
		assert.Empty(t, restored.LineItems())
		require.Len(t, restored.History(), 1)
		require.NoError(t, restored.History()[0].ID().Validate())
	})

	t.Run("uses the restore clock for new transitions", func(t *testing.T) {
		later := fixedNow.Add(48 * time.Hour)
		restored, err := order.Restore(newOrder(t).Snapshot(), order.WithClock(kernel.FixedClock(later)))
		require.NoError(t, err)

		restored.Advance("")

		assert.Equal(t, later, restored.History()[1].Timestamp())
		assert.Equal(t, fixedNow, restored.CreatedAt())
	})

	t.Run("rejects invalid records", func(t *testing.T) {
		snap := newOrder(t).Snapshot()
		snap.Supplier = ""
		snap.PackageCount = -1
		snap.History[0].ID = "nope"

		_, err := order.Restore(snap)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		li, err := order.NewLineItem(" P-1 ", "Gear", 2, "PRJ")

		require.NoError(t, err)
		require.NoError(t, li.Validate())
		assert.Equal(t, "P-1", li.Code())
		assert.Equal(t, "Gear", li.Description())
		assert.Equal(t, 2, li.Quantity())
		assert.Equal(t, "PRJ", li.Project())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := order.NewLineItem(" ", "", 0, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var li order.LineItem

		assert.Equal(t, order.ErrLineItemIsNotConstructed, li.Validate())
	})
}
