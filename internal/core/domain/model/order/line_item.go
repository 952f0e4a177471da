package order

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created through NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is an immutable part requested in the supplier's offer.
type LineItem struct {
	code        string
	description string
	quantity    int
	project     string

	guard guard.ConstructorGuard
}

// NewLineItem creates a requested part.
//
// Parameters:
//   - code: part reference, must not be blank
//   - description: free text, may be empty
//   - quantity: number of units, must be greater than 0
//   - project: project the part is charged to, may be empty
//
// Returns:
//   - LineItem: the value object when all checks pass
//   - error: the joined validation errors otherwise
func NewLineItem(code, description string, quantity int, project string) (LineItem, error) {
	var errList []error
	if strings.TrimSpace(code) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("code"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		))
	}
	if err := errors.Join(errList...); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		code:        strings.TrimSpace(code),
		description: description,
		quantity:    quantity,
		project:     project,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line item was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// Code returns the part reference.
func (li LineItem) Code() string {
	return li.code
}

// Description returns the part description.
func (li LineItem) Description() string {
	return li.description
}

// Quantity returns the number of units requested.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Project returns the project the part is charged to.
func (li LineItem) Project() string {
	return li.project
}
