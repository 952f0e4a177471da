// Package ports defines the contracts between the fulfillment core and its
// infrastructure adapters.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderReader is the read-only half of the order persistence contract.
// Query handlers depend on it directly, outside any unit of work.
type OrderReader interface {
	// Get retrieves an order by reference.
	// Returns errs.ObjectNotFoundError when no order has that reference.
	Get(ctx context.Context, reference string) (*order.Order, error)

	// List returns every order, oldest first.
	List(ctx context.Context) ([]*order.Order, error)

	// Search returns the orders whose reference contains term, compared
	// case-insensitively, oldest first. An empty term matches every order.
	Search(ctx context.Context, term string) ([]*order.Order, error)
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	OrderReader

	// Add persists a new order.
	// Returns errs.ObjectAlreadyExistsError when the reference is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, including new history entries.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Remove deletes an order and its line items and history.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Remove(ctx context.Context, reference string) error
}
