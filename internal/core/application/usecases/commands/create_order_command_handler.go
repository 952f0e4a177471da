package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// The new order starts in OfferReceived with a single history entry.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle builds the order and persists it.
// Returns errs.ObjectAlreadyExistsError when the reference is taken.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := buildOrder(cmd)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order created", "reference", o.Reference(), "supplier", o.Supplier())
	return nil
}

func buildOrder(cmd CreateOrderCommand) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(cmd.Items()))
	var errList []error
	for i, in := range cmd.Items() {
		li, err := order.NewLineItem(in.Code, in.Description, in.Quantity, in.Project)
		if err != nil {
			errList = append(errList, fmt.Errorf("line item %d: %w", i, err))
			continue
		}
		items = append(items, li)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.Reference(), cmd.Supplier(), items)
	if err != nil {
		return nil, err
	}

	if err = applyFields(o, cmd.Fields()); err != nil {
		return nil, err
	}

	return o, nil
}

// applyFields sets every given field in EditableFields order and joins the failures.
func applyFields(o *order.Order, fields map[order.Field]string) error {
	var errList []error
	for _, f := range order.EditableFields() {
		raw, ok := fields[f]
		if !ok {
			continue
		}
		errList = append(errList, o.SetField(f, raw))
	}
	for f := range fields {
		if _, err := order.ParseField(string(f)); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
