package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateOrderFieldsCommandIsNotConstructed = errors.New(
		"UpdateOrderFieldsCommand must be created via NewUpdateOrderFieldsCommand constructor",
	)
	ErrFieldsAreRequired = errors.New("at least one field is required")
)

// UpdateOrderFieldsCommand represents a request to edit the stage fields of an
// order. Values are raw operator input; parsing happens in the aggregate.
type UpdateOrderFieldsCommand struct {
	reference string
	fields    map[order.Field]string

	guard guard.ConstructorGuard
}

// NewUpdateOrderFieldsCommand creates an edit request.
// Field names must be one of order.EditableFields; unknown names are rejected
// together with a blank reference or an empty field set.
func NewUpdateOrderFieldsCommand(reference string, fields map[string]string) (UpdateOrderFieldsCommand, error) {
	cmd := UpdateOrderFieldsCommand{
		reference: strings.TrimSpace(reference),
		fields:    make(map[order.Field]string, len(fields)),
		guard:     guard.NewConstructorGuard(),
	}

	var errList []error
	if cmd.reference == "" {
		errList = append(errList, ErrReferenceIsRequired)
	}
	if len(fields) == 0 {
		errList = append(errList, ErrFieldsAreRequired)
	}
	for name, value := range fields {
		f, err := order.ParseField(name)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		cmd.fields[f] = value
	}

	if err := errors.Join(errList...); err != nil {
		return UpdateOrderFieldsCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderFieldsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderFieldsCommandIsNotConstructed)
}

func (c UpdateOrderFieldsCommand) Reference() string {
	return c.reference
}

// Fields returns the requested values keyed by field.
func (c UpdateOrderFieldsCommand) Fields() map[order.Field]string {
	return c.fields
}
