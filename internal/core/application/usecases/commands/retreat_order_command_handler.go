package commands

import (
	"context"
	"log/slog"
)

// RetreatOrderCommandHandler moves an order one step back and records the
// transition in its history. Retreating is never gated.
type RetreatOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewRetreatOrderCommandHandler creates a handler for retreat operations.
func NewRetreatOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) RetreatOrderCommandHandler {
	return RetreatOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "retreat_order_handler"),
	}
}

// Handle loads the order under exclusive access, retreats it and persists the
// change. Nothing is written when the order is already at the first state.
func (h *RetreatOrderCommandHandler) Handle(ctx context.Context, cmd RetreatOrderCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.Reference())
	if err != nil {
		return TransitionResult{}, err
	}

	from := o.State()
	if !from.IsValid() {
		h.logger.WarnContext(ctx, "order has an unrecognized state, it will restart from the first state",
			"reference", o.Reference())
	}

	if !o.Retreat(cmd.Comment()) {
		return newTransitionResult(from, o, false), nil
	}

	if err = repo.Update(ctx, o); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	h.logger.InfoContext(ctx, "order retreated", "reference", o.Reference(), "from", from, "to", o.State())
	return newTransitionResult(from, o, true), nil
}
