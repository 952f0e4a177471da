package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBackupOrdersCommandHandler_Handle(t *testing.T) {
	t.Run("exports every order", func(t *testing.T) {
		ctx := t.Context()
		orders := []*order.Order{newTestOrder(t, "OF-1"), newTestOrder(t, "OF-2")}

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		exporter := new(MockOrderExporter)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("List", ctx).Return(orders, nil).Once(),
			exporter.On("Export", ctx, orders).Return("/backups/orders_backup_20250101_120000.json", nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewBackupOrdersCommandHandler(factory, exporter, logging.Discard())
		location, err := h.Handle(ctx, commands.NewBackupOrdersCommand())
		require.NoError(t, err)
		assert.Equal(t, "/backups/orders_backup_20250101_120000.json", location)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		exporter.AssertExpectations(t)
	})

	t.Run("export error", func(t *testing.T) {
		ctx := t.Context()

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		exporter := new(MockOrderExporter)
		uow.On("Begin", ctx).Return(nil)
		uow.On("OrderRepository").Return(repo)
		uow.On("Rollback", ctx).Return(nil)
		repo.On("List", ctx).Return([]*order.Order{}, nil)
		exporter.On("Export", ctx, []*order.Order{}).Return("", errors.New("disk full"))

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow)

		h := commands.NewBackupOrdersCommandHandler(factory, exporter, logging.Discard())
		_, err := h.Handle(ctx, commands.NewBackupOrdersCommand())
		require.EqualError(t, err, "disk full")
	})

	t.Run("missing exporter", func(t *testing.T) {
		h := commands.NewBackupOrdersCommandHandler(new(MockOrderUoWFactory), nil, logging.Discard())
		_, err := h.Handle(t.Context(), commands.NewBackupOrdersCommand())
		require.ErrorIs(t, err, commands.ErrExporterIsRequired)
	})

	t.Run("not constructed", func(t *testing.T) {
		h := commands.NewBackupOrdersCommandHandler(new(MockOrderUoWFactory), new(MockOrderExporter), logging.Discard())
		_, err := h.Handle(t.Context(), commands.BackupOrdersCommand{})
		require.ErrorIs(t, err, commands.ErrBackupOrdersCommandIsNotConstructed)
	})
}
