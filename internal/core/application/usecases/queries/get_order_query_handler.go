package queries

import (
	"context"

	"fulfillment/internal/core/ports"
)

type GetOrderQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrderQueryHandler(reader ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle returns the order details. Returns errs.ObjectNotFoundError for an
// unknown reference.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	o, err := h.reader.Get(ctx, query.Reference())
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	return toDetails(o), nil
}
