package queries

import (
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// FieldValue is one editable field of an order together with its label and
// current text.
type FieldValue struct {
	Field    order.Field
	Label    string
	Value    string
	Required bool
}

type LineItemResponse struct {
	Code        string
	Description string
	Quantity    int
	Project     string
}

type HistoryEntryResponse struct {
	ID        string
	State     order.State
	Timestamp time.Time
	Comment   string
}

// OrderSummaryResponse is the list form of an order.
type OrderSummaryResponse struct {
	Reference  string
	Supplier   string
	State      order.State
	Position   int
	Progress   int
	CanAdvance bool
	ItemCount  int
	CreatedAt  time.Time
}

// OrderDetailsResponse is the full form of an order, including the gate of
// its current state.
type OrderDetailsResponse struct {
	OrderSummaryResponse

	Fields        []FieldValue
	MissingFields []order.Field
	LineItems     []LineItemResponse
	History       []HistoryEntryResponse
}

func toSummary(o *order.Order) OrderSummaryResponse {
	return OrderSummaryResponse{
		Reference:  o.Reference(),
		Supplier:   o.Supplier(),
		State:      o.State(),
		Position:   o.State().Position(),
		Progress:   o.State().ProgressPercent(),
		CanAdvance: o.CanAdvance(),
		ItemCount:  len(o.LineItems()),
		CreatedAt:  o.CreatedAt(),
	}
}

func toDetails(o *order.Order) OrderDetailsResponse {
	required := make(map[order.Field]bool)
	for _, f := range o.State().RequiredFields() {
		required[f] = true
	}

	fields := make([]FieldValue, 0, len(order.EditableFields()))
	for _, f := range order.EditableFields() {
		fields = append(fields, FieldValue{
			Field:    f,
			Label:    f.Label(),
			Value:    o.FieldValue(f),
			Required: required[f],
		})
	}

	items := make([]LineItemResponse, 0, len(o.LineItems()))
	for _, li := range o.LineItems() {
		items = append(items, LineItemResponse{
			Code:        li.Code(),
			Description: li.Description(),
			Quantity:    li.Quantity(),
			Project:     li.Project(),
		})
	}

	history := make([]HistoryEntryResponse, 0, len(o.History()))
	for _, h := range o.History() {
		history = append(history, HistoryEntryResponse{
			ID:        h.ID().String(),
			State:     h.State(),
			Timestamp: h.Timestamp(),
			Comment:   h.Comment(),
		})
	}

	return OrderDetailsResponse{
		OrderSummaryResponse: toSummary(o),
		Fields:               fields,
		MissingFields:        o.MissingFields(),
		LineItems:            items,
		History:              history,
	}
}
