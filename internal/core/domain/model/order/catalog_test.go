package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedStates(t *testing.T) {
	t.Run("should list twelve states in sequence", func(t *testing.T) {
		states := order.OrderedStates()

		require.Len(t, states, order.TotalStates)
		assert.Equal(t, order.OfferReceived, states[0])
		assert.Equal(t, order.Completed, states[len(states)-1])
		for i, s := range states {
			assert.Equal(t, i+1, s.Position())
		}
	})

	t.Run("should return a fresh slice every call", func(t *testing.T) {
		states := order.OrderedStates()
		states[0] = order.Completed

		assert.Equal(t, order.OfferReceived, order.OrderedStates()[0])
	})

	t.Run("should use canonical names", func(t *testing.T) {
		names := make([]string, 0, order.TotalStates)
		for _, s := range order.OrderedStates() {
			names = append(names, s.String())
		}

		assert.Equal(t, []string{
			"OFFER_RECEIVED",
			"ORDER_DRAFT",
			"ORDER_SUBMITTED_UNSIGNED",
			"ORDER_SUBMITTED_SIGNED",
			"PICKUP_FORM_SUBMITTED_NO_LABELS",
			"LABELS_RECEIVED",
			"LABELS_SENT_TO_SUPPLIER",
			"PACKAGE_PICKED_UP",
			"PACKAGE_IN_TRANSIT",
			"PACKAGE_AT_WAREHOUSE",
			"PACKAGE_AT_WAREHOUSE_COLLECTED",
			"COMPLETED",
		}, names)
	})
}

func TestState_NextPrevious(t *testing.T) {
	t.Run("next then previous is identity before the last state", func(t *testing.T) {
		for _, s := range order.OrderedStates() {
			if s.IsTerminal() {
				continue
			}
			assert.Equal(t, s, s.Next().Previous(), s.String())
		}
	})

	t.Run("previous then next is identity after the first state", func(t *testing.T) {
		for _, s := range order.OrderedStates() {
			if s.IsInitial() {
				continue
			}
			assert.Equal(t, s, s.Previous().Next(), s.String())
		}
	})

	t.Run("ends are fixed points", func(t *testing.T) {
		assert.Equal(t, order.Completed, order.Completed.Next())
		assert.Equal(t, order.OfferReceived, order.OfferReceived.Previous())
	})

	t.Run("unknown state resets to the first state", func(t *testing.T) {
		assert.Equal(t, order.OfferReceived, order.Unknown.Next())
		assert.Equal(t, order.OfferReceived, order.Unknown.Previous())
		assert.Equal(t, order.OfferReceived, order.State(99).Next())
	})
}

func TestState_Progress(t *testing.T) {
	t.Run("first is 0 and last is 100", func(t *testing.T) {
		assert.Equal(t, 0, order.OfferReceived.ProgressPercent())
		assert.Equal(t, 100, order.Completed.ProgressPercent())
	})

	t.Run("is monotone and rounded", func(t *testing.T) {
		prev := -1
		for _, s := range order.OrderedStates() {
			p := s.ProgressPercent()
			assert.Greater(t, p, prev)
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
			prev = p
		}
		assert.Equal(t, 9, order.OrderDraft.ProgressPercent())
		assert.Equal(t, 45, order.LabelsReceived.ProgressPercent())
	})

	t.Run("unknown is position 0 and progress 0", func(t *testing.T) {
		assert.Equal(t, 0, order.Unknown.Position())
		assert.Equal(t, 0, order.Unknown.ProgressPercent())
	})
}

func TestState_RequiredFields(t *testing.T) {
	t.Run("gated states", func(t *testing.T) {
		assert.Equal(t,
			[]order.Field{order.FieldRequisitionID, order.FieldInternalOrderNumber},
			order.OrderDraft.RequiredFields())
		assert.Equal(t,
			[]order.Field{order.FieldPurchaseOrderDocument, order.FieldPurchaseOrderNumber},
			order.OrderSubmittedSigned.RequiredFields())
		assert.Equal(t,
			[]order.Field{order.FieldLabelDocument, order.FieldPackageCount, order.FieldTotalWeight, order.FieldDimensions},
			order.LabelsReceived.RequiredFields())
	})

	t.Run("other states have none", func(t *testing.T) {
		for _, s := range []order.State{order.OfferReceived, order.PackageInTransit, order.Completed, order.Unknown} {
			assert.Empty(t, s.RequiredFields(), s.String())
		}
	})
}

func TestParseState(t *testing.T) {
	t.Run("should parse every canonical name", func(t *testing.T) {
		for _, s := range order.OrderedStates() {
			parsed, err := order.ParseState(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "order_draft", "SHIPPED", "UNKNOWN"} {
			s, err := order.ParseState(name)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
			assert.Equal(t, order.Unknown, s)
		}
	})
}

func TestState_Labels(t *testing.T) {
	assert.Equal(t, "Labels received", order.LabelsReceived.Label())
	assert.Equal(t, "Done", order.Completed.ShortLabel())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Unknown.Label())
	require.Error(t, order.Unknown.Validate())
	require.NoError(t, order.OrderDraft.Validate())
}
