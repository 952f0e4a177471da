package filestore

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// FileUnitOfWorkFactory creates units of work over one Store.
type FileUnitOfWorkFactory struct {
	store *Store
}

func NewFileUnitOfWorkFactory(store *Store) *FileUnitOfWorkFactory {
	return &FileUnitOfWorkFactory{store: store}
}

func (f *FileUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &FileUnitOfWork{store: f.store}
}

// FileUnitOfWork holds the store lock from Begin until Commit or Rollback and
// works on a private copy of the collection read at Begin.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().Get(ctx, "OF-2025-001")
//	// ... modify o
//	_ = uow.OrderRepository().Update(ctx, o)
//	return uow.Commit(ctx)
type FileUnitOfWork struct {
	store  *Store
	orders []*order.Order
	active bool
	dirty  bool
}

// Begin locks the store and loads the collection. Calling Begin twice is a no-op.
func (uow *FileUnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()
	orders, err := uow.store.load(ctx)
	if err != nil {
		uow.store.mu.Unlock()
		return err
	}

	uow.orders = orders
	uow.active = true
	uow.dirty = false
	return nil
}

// Commit writes the collection back when it changed and releases the lock.
// The lock is released even when the write fails.
func (uow *FileUnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	defer uow.end()

	if !uow.dirty {
		return nil
	}
	return uow.store.save(uow.orders)
}

// Rollback discards the private copy and releases the lock.
func (uow *FileUnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.end()
	return nil
}

// OrderRepository returns a repository bound to this unit of work, or an
// auto-committing one when no transaction is active.
func (uow *FileUnitOfWork) OrderRepository() ports.OrderRepository {
	if uow.active {
		return &FileOrderRepository{store: uow.store, tx: uow}
	}
	return &FileOrderRepository{store: uow.store}
}

func (uow *FileUnitOfWork) end() {
	uow.orders = nil
	uow.active = false
	uow.dirty = false
	uow.store.mu.Unlock()
}
