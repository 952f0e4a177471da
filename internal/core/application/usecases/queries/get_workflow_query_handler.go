package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// GetWorkflowQueryHandler renders the static state catalog. It needs no storage.
type GetWorkflowQueryHandler struct{}

func NewGetWorkflowQueryHandler() GetWorkflowQueryHandler {
	return GetWorkflowQueryHandler{}
}

func (GetWorkflowQueryHandler) Handle(_ context.Context, query GetWorkflowQuery) ([]WorkflowStateResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	states := order.OrderedStates()
	result := make([]WorkflowStateResponse, 0, len(states))
	for _, s := range states {
		required := make([]RequiredFieldResponse, 0)
		for _, f := range s.RequiredFields() {
			required = append(required, RequiredFieldResponse{Field: f, Label: f.Label(), Kind: f.Kind()})
		}
		result = append(result, WorkflowStateResponse{
			State:          s,
			Name:           s.String(),
			Label:          s.Label(),
			ShortLabel:     s.ShortLabel(),
			Position:       s.Position(),
			Progress:       s.ProgressPercent(),
			Initial:        s.IsInitial(),
			Terminal:       s.IsTerminal(),
			RequiredFields: required,
		})
	}
	return result, nil
}
