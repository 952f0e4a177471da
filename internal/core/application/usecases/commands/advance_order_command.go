package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to move an order one step forward.
//
// When enforce is set the handler refuses to advance while required fields
// are missing. Without it the advance always happens and the gate is only
// reported in the result.
type AdvanceOrderCommand struct {
	reference string
	comment   string
	enforce   bool

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates an advance request. The reference must not be blank.
func NewAdvanceOrderCommand(reference, comment string, enforce bool) (AdvanceOrderCommand, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return AdvanceOrderCommand{}, ErrReferenceIsRequired
	}

	return AdvanceOrderCommand{
		reference: reference,
		comment:   comment,
		enforce:   enforce,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) Reference() string {
	return c.reference
}

func (c AdvanceOrderCommand) Comment() string {
	return c.comment
}

func (c AdvanceOrderCommand) Enforce() bool {
	return c.enforce
}
