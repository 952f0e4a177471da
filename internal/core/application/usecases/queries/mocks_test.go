package queries_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, reference string) (*order.Order, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) Search(ctx context.Context, term string) ([]*order.Order, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func newTestOrder(t *testing.T, reference string) *order.Order {
	t.Helper()
	item, err := order.NewLineItem("P-100", "Bearing", 4, "PRJ-7")
	require.NoError(t, err)
	o, err := order.NewOrder(reference, "ACME", []order.LineItem{item})
	require.NoError(t, err)
	return o
}
