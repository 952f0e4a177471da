package queries_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("lists everything without a term", func(t *testing.T) {
		ctx := t.Context()
		first, second := newTestOrder(t, "OF-1"), newTestOrder(t, "OF-2")
		second.Advance("")

		reader := new(MockOrderReader)
		reader.On("List", ctx).Return([]*order.Order{first, second}, nil).Once()

		result, err := queries.NewListOrdersQueryHandler(reader).
			Handle(ctx, queries.NewListOrdersQuery("", order.Unknown))
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "OF-1", result[0].Reference)
		assert.True(t, result[0].CanAdvance)
		assert.Equal(t, order.OrderDraft, result[1].State)
		assert.False(t, result[1].CanAdvance)
		assert.Equal(t, 1, result[1].ItemCount)
		reader.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("searches with a term", func(t *testing.T) {
		ctx := t.Context()
		reader := new(MockOrderReader)
		reader.On("Search", ctx, "of-2").Return([]*order.Order{newTestOrder(t, "OF-2")}, nil).Once()

		result, err := queries.NewListOrdersQueryHandler(reader).
			Handle(ctx, queries.NewListOrdersQuery(" of-2 ", order.Unknown))
		require.NoError(t, err)
		require.Len(t, result, 1)
		reader.AssertExpectations(t)
	})

	t.Run("filters by state", func(t *testing.T) {
		ctx := t.Context()
		first, second := newTestOrder(t, "OF-1"), newTestOrder(t, "OF-2")
		second.Advance("")

		reader := new(MockOrderReader)
		reader.On("List", ctx).Return([]*order.Order{first, second}, nil)

		result, err := queries.NewListOrdersQueryHandler(reader).
			Handle(ctx, queries.NewListOrdersQuery("", order.OrderDraft))
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "OF-2", result[0].Reference)
	})

	t.Run("empty store gives an empty slice", func(t *testing.T) {
		ctx := t.Context()
		reader := new(MockOrderReader)
		reader.On("List", ctx).Return([]*order.Order{}, nil)

		result, err := queries.NewListOrdersQueryHandler(reader).
			Handle(ctx, queries.NewListOrdersQuery("", order.Unknown))
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("reader error", func(t *testing.T) {
		ctx := t.Context()
		reader := new(MockOrderReader)
		reader.On("List", ctx).Return(nil, errors.New("boom"))

		_, err := queries.NewListOrdersQueryHandler(reader).
			Handle(ctx, queries.NewListOrdersQuery("", order.Unknown))
		require.Error(t, err)
	})

	t.Run("not constructed", func(t *testing.T) {
		_, err := queries.NewListOrdersQueryHandler(new(MockOrderReader)).
			Handle(t.Context(), queries.ListOrdersQuery{})
		require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
	})
}
