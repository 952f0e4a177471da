package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetWorkflowQueryIsNotConstructed = errors.New(
	"GetWorkflowQuery must be created via NewGetWorkflowQuery constructor",
)

// GetWorkflowQuery describes the state catalog: every state in sequence with
// its labels, progress and required fields.
type GetWorkflowQuery struct {
	guard guard.ConstructorGuard
}

func NewGetWorkflowQuery() GetWorkflowQuery {
	return GetWorkflowQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWorkflowQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkflowQueryIsNotConstructed)
}

type RequiredFieldResponse struct {
	Field order.Field
	Label string
	Kind  order.FieldKind
}

type WorkflowStateResponse struct {
	State          order.State
	Name           string
	Label          string
	ShortLabel     string
	Position       int
	Progress       int
	Initial        bool
	Terminal       bool
	RequiredFields []RequiredFieldResponse
}
