package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetWorkflowSummaryQueryIsNotConstructed = errors.New(
	"GetWorkflowSummaryQuery must be created via NewGetWorkflowSummaryQuery constructor",
)

// GetWorkflowSummaryQuery counts the stored orders per workflow state.
type GetWorkflowSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetWorkflowSummaryQuery() GetWorkflowSummaryQuery {
	return GetWorkflowSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWorkflowSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkflowSummaryQueryIsNotConstructed)
}
