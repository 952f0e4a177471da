package http

import (
	"fmt"
	"strconv"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// Error is the body of every non-2xx API response.
type Error struct {
	Code          int      `json:"code"`
	Message       string   `json:"message"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

type LineItem struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
	Project     string `json:"project,omitempty"`
}

type NewOrder struct {
	Reference string         `json:"reference"`
	Supplier  string         `json:"supplier"`
	LineItems []LineItem     `json:"line_items"`
	Fields    map[string]any `json:"fields,omitempty"`
}

type AdvanceRequest struct {
	Comment string `json:"comment"`
	Force   bool   `json:"force"`
}

type RetreatRequest struct {
	Comment string `json:"comment"`
}

type OrderSummary struct {
	Reference  string    `json:"reference"`
	Supplier   string    `json:"supplier"`
	State      string    `json:"state"`
	StateLabel string    `json:"state_label"`
	Position   int       `json:"position"`
	Progress   int       `json:"progress"`
	CanAdvance bool      `json:"can_advance"`
	ItemCount  int       `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type FieldValue struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	Required bool   `json:"required"`
}

type HistoryEntry struct {
	ID        string    `json:"id"`
	State     string    `json:"state"`
	Timestamp time.Time `json:"timestamp"`
	Comment   string    `json:"comment"`
}

type OrderDetails struct {
	OrderSummary

	Fields        []FieldValue   `json:"fields"`
	MissingFields []string       `json:"missing_fields"`
	LineItems     []LineItem     `json:"line_items"`
	History       []HistoryEntry `json:"history"`
}

type Transition struct {
	Reference     string   `json:"reference"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	Moved         bool     `json:"moved"`
	CanAdvance    bool     `json:"can_advance"`
	MissingFields []string `json:"missing_fields"`
	Progress      int      `json:"progress"`
}

type RequiredField struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
}

type WorkflowState struct {
	State          string          `json:"state"`
	Label          string          `json:"label"`
	ShortLabel     string          `json:"short_label"`
	Position       int             `json:"position"`
	Progress       int             `json:"progress"`
	Initial        bool            `json:"initial"`
	Terminal       bool            `json:"terminal"`
	RequiredFields []RequiredField `json:"required_fields"`
}

type StateCount struct {
	State string `json:"state"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type WorkflowSummary struct {
	Total           int          `json:"total"`
	Unknown         int          `json:"unknown"`
	Blocked         int          `json:"blocked"`
	AverageProgress float64      `json:"average_progress"`
	ByState         []StateCount `json:"by_state"`
}

func fieldNames(fields []order.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return names
}

// fieldText turns a JSON field value into the raw text the domain parses.
// Numbers are accepted as JSON numbers or strings; null clears the field.
func fieldText(name string, v any) (string, error) {
	switch value := v.(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("field %s: unsupported value %v", name, v)
	}
}

func fieldTexts(fields map[string]any) (map[string]string, error) {
	result := make(map[string]string, len(fields))
	for name, v := range fields {
		text, err := fieldText(name, v)
		if err != nil {
			return nil, err
		}
		result[name] = text
	}
	return result, nil
}

func toOrderSummary(o queries.OrderSummaryResponse) OrderSummary {
	return OrderSummary{
		Reference:  o.Reference,
		Supplier:   o.Supplier,
		State:      o.State.String(),
		StateLabel: o.State.Label(),
		Position:   o.Position,
		Progress:   o.Progress,
		CanAdvance: o.CanAdvance,
		ItemCount:  o.ItemCount,
		CreatedAt:  o.CreatedAt,
	}
}

func toOrderDetails(o queries.OrderDetailsResponse) OrderDetails {
	fields := make([]FieldValue, len(o.Fields))
	for i, f := range o.Fields {
		fields[i] = FieldValue{Field: string(f.Field), Label: f.Label, Value: f.Value, Required: f.Required}
	}

	items := make([]LineItem, len(o.LineItems))
	for i, li := range o.LineItems {
		items[i] = LineItem(li)
	}

	history := make([]HistoryEntry, len(o.History))
	for i, h := range o.History {
		history[i] = HistoryEntry{ID: h.ID, State: h.State.String(), Timestamp: h.Timestamp, Comment: h.Comment}
	}

	return OrderDetails{
		OrderSummary:  toOrderSummary(o.OrderSummaryResponse),
		Fields:        fields,
		MissingFields: fieldNames(o.MissingFields),
		LineItems:     items,
		History:       history,
	}
}

func toTransition(r commands.TransitionResult) Transition {
	return Transition{
		Reference:     r.Reference,
		From:          r.From.String(),
		To:            r.To.String(),
		Moved:         r.Moved,
		CanAdvance:    r.CanAdvance,
		MissingFields: fieldNames(r.MissingFields),
		Progress:      r.To.ProgressPercent(),
	}
}

func toWorkflowState(s queries.WorkflowStateResponse) WorkflowState {
	required := make([]RequiredField, len(s.RequiredFields))
	for i, f := range s.RequiredFields {
		required[i] = RequiredField{Field: string(f.Field), Label: f.Label, Kind: kindName(f.Kind)}
	}
	return WorkflowState{
		State:          s.Name,
		Label:          s.Label,
		ShortLabel:     s.ShortLabel,
		Position:       s.Position,
		Progress:       s.Progress,
		Initial:        s.Initial,
		Terminal:       s.Terminal,
		RequiredFields: required,
	}
}

func toWorkflowSummary(s services.Summary) WorkflowSummary {
	byState := make([]StateCount, len(s.ByState))
	for i, sc := range s.ByState {
		byState[i] = StateCount{State: sc.State.String(), Label: sc.State.Label(), Count: sc.Count}
	}
	return WorkflowSummary{
		Total:           s.Total,
		Unknown:         s.Unknown,
		Blocked:         s.Blocked,
		AverageProgress: s.AverageProgress,
		ByState:         byState,
	}
}

func kindName(k order.FieldKind) string {
	switch k {
	case order.KindInteger:
		return "integer"
	case order.KindDecimal:
		return "decimal"
	default:
		return "text"
	}
}
