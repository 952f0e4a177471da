package queries

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrReferenceIsRequired = errors.New("reference is required")
)

// GetOrderQuery retrieves one order with its fields, line items and history.
//
// Example:
//
//	query, _ := NewGetOrderQuery("OF-2025-001")
//	details, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s is %d%% done\n", details.Reference, details.Progress)
type GetOrderQuery struct {
	reference string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a lookup by reference. The reference must not be blank.
func NewGetOrderQuery(reference string) (GetOrderQuery, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return GetOrderQuery{}, ErrReferenceIsRequired
	}
	return GetOrderQuery{reference: reference, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Reference() string {
	return q.reference
}
