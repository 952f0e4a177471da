package commands

import (
	"context"
	"log/slog"
)

// UpdateOrderFieldsCommandHandler applies operator edits to an order.
// Either every field is accepted and the order is saved, or nothing is.
type UpdateOrderFieldsCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewUpdateOrderFieldsCommandHandler creates a handler for field edits.
func NewUpdateOrderFieldsCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) UpdateOrderFieldsCommandHandler {
	return UpdateOrderFieldsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "update_order_fields_handler"),
	}
}

// Handle loads the order, applies every field and persists the result.
// Returns the joined parse errors without saving when any value is rejected.
func (h *UpdateOrderFieldsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderFieldsCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.Reference())
	if err != nil {
		return err
	}

	if err = applyFields(o, cmd.Fields()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order fields updated", "reference", o.Reference(), "fields", len(cmd.Fields()))
	return nil
}
