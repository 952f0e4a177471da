package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/guard"
)

var ErrRetreatOrderCommandIsNotConstructed = errors.New(
	"RetreatOrderCommand must be created via NewRetreatOrderCommand constructor",
)

// RetreatOrderCommand represents a request to move an order one step back.
type RetreatOrderCommand struct {
	reference string
	comment   string

	guard guard.ConstructorGuard
}

// NewRetreatOrderCommand creates a retreat request. The reference must not be blank.
func NewRetreatOrderCommand(reference, comment string) (RetreatOrderCommand, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return RetreatOrderCommand{}, ErrReferenceIsRequired
	}

	return RetreatOrderCommand{
		reference: reference,
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RetreatOrderCommand) Validate() error {
	return c.guard.Validate(ErrRetreatOrderCommandIsNotConstructed)
}

func (c RetreatOrderCommand) Reference() string {
	return c.reference
}

func (c RetreatOrderCommand) Comment() string {
	return c.comment
}
