package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents a request to delete an order together with
// its line items and history.
type RemoveOrderCommand struct {
	reference string

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a removal request. The reference must not be blank.
func NewRemoveOrderCommand(reference string) (RemoveOrderCommand, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return RemoveOrderCommand{}, ErrReferenceIsRequired
	}

	return RemoveOrderCommand{
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

func (c RemoveOrderCommand) Reference() string {
	return c.reference
}
