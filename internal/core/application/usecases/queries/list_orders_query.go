package queries

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders, oldest first.
//
// A non-empty search term keeps the orders whose reference contains it,
// ignoring case. A non-Unknown state keeps only orders in that state.
type ListOrdersQuery struct {
	search string
	state  order.State

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing. Pass "" and order.Unknown to list everything.
func NewListOrdersQuery(search string, state order.State) ListOrdersQuery {
	return ListOrdersQuery{
		search: strings.TrimSpace(search),
		state:  state,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Search() string {
	return q.search
}

func (q ListOrdersQuery) State() order.State {
	return q.state
}
