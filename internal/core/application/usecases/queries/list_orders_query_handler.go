package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

type ListOrdersQueryHandler struct {
	reader ports.OrderReader
}

func NewListOrdersQueryHandler(reader ports.OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

// Handle returns the matching orders in list form. The result is never nil.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		orders []*order.Order
		err    error
	)
	if query.Search() != "" {
		orders, err = h.reader.Search(ctx, query.Search())
	} else {
		orders, err = h.reader.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		if query.State() != order.Unknown && o.State() != query.State() {
			continue
		}
		result = append(result, toSummary(o))
	}
	return result, nil
}
