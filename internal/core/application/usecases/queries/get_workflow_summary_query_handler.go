package queries

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

type GetWorkflowSummaryQueryHandler struct {
	reader     ports.OrderReader
	summarizer services.WorkflowSummarizer
}

func NewGetWorkflowSummaryQueryHandler(
	reader ports.OrderReader,
	summarizer services.WorkflowSummarizer,
) GetWorkflowSummaryQueryHandler {
	return GetWorkflowSummaryQueryHandler{reader: reader, summarizer: summarizer}
}

func (h GetWorkflowSummaryQueryHandler) Handle(ctx context.Context, query GetWorkflowSummaryQuery) (services.Summary, error) {
	if err := query.Validate(); err != nil {
		return services.Summary{}, err
	}

	orders, err := h.reader.List(ctx)
	if err != nil {
		return services.Summary{}, err
	}

	return h.summarizer.Summarize(orders)
}
