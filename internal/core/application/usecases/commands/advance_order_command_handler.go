package commands

import (
	"context"
	"log/slog"
)

// AdvanceOrderCommandHandler moves an order one step forward and records the
// transition in its history.
//
// Example:
//
//	cmd, _ := NewAdvanceOrderCommand("OF-2025-001", "", true)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrTransitionIsBlocked) {
//	    fmt.Println("fill in:", result.MissingFields)
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for advance operations.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "advance_order_handler"),
	}
}

// Handle loads the order under exclusive access, advances it and persists the
// change. Nothing is written when the order is already Completed or when an
// enforced advance is blocked; in the latter case the error wraps
// ErrTransitionIsBlocked.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (TransitionResult, error) {
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

	if cmd.Enforce() && !o.CanAdvance() {
		result := newTransitionResult(from, o, false)
		return result, blockedError(result.MissingFields)
	}

	if !o.Advance(cmd.Comment()) {
		return newTransitionResult(from, o, false), nil
	}

	if err = repo.Update(ctx, o); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	h.logger.InfoContext(ctx, "order advanced", "reference", o.Reference(), "from", from, "to", o.State())
	return newTransitionResult(from, o, true), nil
}
