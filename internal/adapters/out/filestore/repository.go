package filestore

import (
	"context"
	"slices"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// FileOrderRepository implements ports.OrderRepository over a Store.
type FileOrderRepository struct {
	store *Store
	tx    *FileUnitOfWork
}

// NewFileOrderRepository creates a repository whose every call loads and, for
// writes, saves the data file under the store lock.
func NewFileOrderRepository(store *Store) *FileOrderRepository {
	return &FileOrderRepository{store: store}
}

func (r *FileOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.write(ctx, func(orders []*order.Order) ([]*order.Order, error) {
		if indexOf(orders, aggregate.Reference()) >= 0 {
			return nil, errs.NewObjectAlreadyExistsError("reference", aggregate.Reference())
		}
		return append(orders, aggregate), nil
	})
}

func (r *FileOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.write(ctx, func(orders []*order.Order) ([]*order.Order, error) {
		i := indexOf(orders, aggregate.Reference())
		if i < 0 {
			return nil, errs.NewObjectNotFoundError("reference", aggregate.Reference())
		}
		orders[i] = aggregate
		return orders, nil
	})
}

func (r *FileOrderRepository) Remove(ctx context.Context, reference string) error {
	return r.write(ctx, func(orders []*order.Order) ([]*order.Order, error) {
		i := indexOf(orders, reference)
		if i < 0 {
			return nil, errs.NewObjectNotFoundError("reference", reference)
		}
		return slices.Delete(orders, i, i+1), nil
	})
}

func (r *FileOrderRepository) Get(ctx context.Context, reference string) (*order.Order, error) {
	var found *order.Order
	err := r.read(ctx, func(orders []*order.Order) error {
		i := indexOf(orders, reference)
		if i < 0 {
			return errs.NewObjectNotFoundError("reference", reference)
		}
		found = orders[i]
		return nil
	})
	return found, err
}

func (r *FileOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	return r.Search(ctx, "")
}

// Search matches term against references, ignoring case. Orders keep their
// insertion order.
func (r *FileOrderRepository) Search(ctx context.Context, term string) ([]*order.Order, error) {
	term = strings.ToLower(strings.TrimSpace(term))

	result := make([]*order.Order, 0)
	err := r.read(ctx, func(orders []*order.Order) error {
		for _, o := range orders {
			if term == "" || strings.Contains(strings.ToLower(o.Reference()), term) {
				result = append(result, o)
			}
		}
		return nil
	})
	return result, err
}

func (r *FileOrderRepository) read(ctx context.Context, fn func([]*order.Order) error) error {
	if r.tx != nil {
		return fn(r.tx.orders)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	orders, err := r.store.load(ctx)
	if err != nil {
		return err
	}
	return fn(orders)
}

func (r *FileOrderRepository) write(ctx context.Context, fn func([]*order.Order) ([]*order.Order, error)) error {
	if r.tx != nil {
		orders, err := fn(r.tx.orders)
		if err != nil {
			return err
		}
		r.tx.orders = orders
		r.tx.dirty = true
		return nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	orders, err := r.store.load(ctx)
	if err != nil {
		return err
	}
	if orders, err = fn(orders); err != nil {
		return err
	}
	return r.store.save(orders)
}

func indexOf(orders []*order.Order, reference string) int {
	return slices.IndexFunc(orders, func(o *order.Order) bool {
		return o.Reference() == reference
	})
}
