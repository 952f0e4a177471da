package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ErrTransitionIsBlocked is returned by an enforced advance when the current
// state still has unfilled required fields. The returned error also wraps one
// errs.ValueIsRequiredError per missing field.
var ErrTransitionIsBlocked = errors.New("transition is blocked by missing required fields")

// TransitionResult describes the outcome of an advance or retreat.
type TransitionResult struct {
	Reference string
	From      order.State
	To        order.State

	// Moved is false when the order was already at the end of the sequence
	// in the requested direction, or when an enforced advance was blocked.
	Moved bool

	// CanAdvance and MissingFields describe the gate of the state the order
	// is in after the operation.
	CanAdvance    bool
	MissingFields []order.Field
}

func newTransitionResult(from order.State, o *order.Order, moved bool) TransitionResult {
	return TransitionResult{
		Reference:     o.Reference(),
		From:          from,
		To:            o.State(),
		Moved:         moved,
		CanAdvance:    o.CanAdvance(),
		MissingFields: o.MissingFields(),
	}
}

func blockedError(missing []order.Field) error {
	errList := []error{ErrTransitionIsBlocked}
	for _, f := range missing {
		errList = append(errList, errs.NewValueIsRequiredError(string(f)))
	}
	return errors.Join(errList...)
}
