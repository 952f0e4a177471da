package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrReferenceIsRequired  = errors.New("reference is required")
	ErrSupplierIsRequired   = errors.New("supplier is required")
	ErrLineItemsAreRequired = errors.New("at least one line item is required")
)

// LineItemInput is the raw description of a requested part.
type LineItemInput struct {
	Code        string
	Description string
	Quantity    int
	Project     string
}

// CreateOrderCommand represents a request to register a new purchase order
// from a supplier offer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("OF-2025-001", "ACME",
//	    []LineItemInput{{Code: "P-100", Description: "Bearing", Quantity: 4}},
//	    map[order.Field]string{order.FieldSupplierEmail: "sales@acme.test"},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	reference string
	supplier  string
	items     []LineItemInput
	fields    map[order.Field]string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that reference and supplier are not blank and at least one line
// item is given. fields may carry initial values for editable fields.
func NewCreateOrderCommand(
	reference, supplier string,
	items []LineItemInput,
	fields map[order.Field]string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReference(reference),
		cmd.setSupplier(supplier),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.fields = make(map[order.Field]string, len(fields))
	for f, v := range fields {
		cmd.fields[f] = v
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Reference returns the identity of the new order.
func (c CreateOrderCommand) Reference() string {
	return c.reference
}

// Supplier returns the vendor name.
func (c CreateOrderCommand) Supplier() string {
	return c.supplier
}

// Items returns a copy of the requested parts.
func (c CreateOrderCommand) Items() []LineItemInput {
	items := make([]LineItemInput, len(c.items))
	copy(items, c.items)
	return items
}

// Fields returns the initial editable field values.
func (c CreateOrderCommand) Fields() map[order.Field]string {
	return c.fields
}

func (c *CreateOrderCommand) setReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return ErrReferenceIsRequired
	}

	c.reference = reference
	return nil
}

func (c *CreateOrderCommand) setSupplier(supplier string) error {
	supplier = strings.TrimSpace(supplier)
	if supplier == "" {
		return ErrSupplierIsRequired
	}

	c.supplier = supplier
	return nil
}

func (c *CreateOrderCommand) setItems(items []LineItemInput) error {
	if len(items) == 0 {
		return ErrLineItemsAreRequired
	}

	c.items = make([]LineItemInput, len(items))
	copy(c.items, items)
	return nil
}
