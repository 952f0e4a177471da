package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderExporter writes a point-in-time copy of a set of orders somewhere
// outside the primary store.
type OrderExporter interface {
	// Export writes the orders and returns a locator for the copy, such as a file path.
	Export(ctx context.Context, orders []*order.Order) (string, error)
}
