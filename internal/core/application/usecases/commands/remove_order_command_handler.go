package commands

import (
	"context"
	"log/slog"
)

type RemoveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewRemoveOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "remove_order_handler"),
	}
}

// Handle deletes the order. Returns errs.ObjectNotFoundError for an unknown reference.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Remove(ctx, cmd.Reference()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order removed", "reference", cmd.Reference())
	return nil
}
