package filestore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// document is the top-level shape of the data file and of backup files.
type document struct {
	Orders  []orderRecord `json:"orders"`
	SavedAt timestamp     `json:"saved_at"`
}

type orderRecord struct {
	Reference             string           `json:"reference"`
	Supplier              string           `json:"supplier"`
	SupplierEmail         string           `json:"supplier_email"`
	OfferDocument         string           `json:"offer_document"`
	OrderNumber           string           `json:"order_number"`
	LineItems             []lineItemRecord `json:"line_items"`
	State                 string           `json:"state"`
	CreatedAt             timestamp        `json:"created_at"`
	RequisitionID         string           `json:"requisition_id"`
	InternalOrderNumber   int              `json:"internal_order_number"`
	PurchaseOrderNumber   string           `json:"purchase_order_number"`
	PurchaseOrderDocument string           `json:"purchase_order_document"`
	LabelDocument         string           `json:"label_document"`
	PackageCount          int              `json:"package_count"`
	TotalWeight           float64          `json:"total_weight"`
	Dimensions            string           `json:"dimensions"`
	TrackingNumber        string           `json:"tracking_number"`
	History               []historyRecord  `json:"history"`
}

type lineItemRecord struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Project     string `json:"project"`
}

type historyRecord struct {
	ID        string    `json:"id,omitempty"`
	State     string    `json:"state"`
	Timestamp timestamp `json:"timestamp"`
	Comment   string    `json:"comment"`
}

// timestamp writes RFC 3339 with sub-second precision and also reads the
// zone-less ISO form found in older data files, which is taken as UTC.
type timestamp time.Time

var legacyLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func (t timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(time.RFC3339Nano))
}

func (t *timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = timestamp{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*t = timestamp{}
		return nil
	}

	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		*t = timestamp(parsed)
		return nil
	}
	for _, layout := range legacyLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			*t = timestamp(parsed)
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", raw)
}

func fromDomain(o *order.Order) orderRecord {
	s := o.Snapshot()

	items := make([]lineItemRecord, len(s.LineItems))
	for i, li := range s.LineItems {
		items[i] = lineItemRecord(li)
	}

	history := make([]historyRecord, len(s.History))
	for i, h := range s.History {
		history[i] = historyRecord{
			ID:        h.ID,
			State:     h.State.String(),
			Timestamp: timestamp(h.Timestamp),
			Comment:   h.Comment,
		}
	}

	return orderRecord{
		Reference:             s.Reference,
		Supplier:              s.Supplier,
		SupplierEmail:         s.SupplierEmail,
		OfferDocument:         s.OfferDocument,
		OrderNumber:           s.OrderNumber,
		LineItems:             items,
		State:                 s.State.String(),
		CreatedAt:             timestamp(s.CreatedAt),
		RequisitionID:         s.RequisitionID,
		InternalOrderNumber:   s.InternalOrderNumber,
		PurchaseOrderNumber:   s.PurchaseOrderNumber,
		PurchaseOrderDocument: s.PurchaseOrderDocument,
		LabelDocument:         s.LabelDocument,
		PackageCount:          s.PackageCount,
		TotalWeight:           s.TotalWeight,
		Dimensions:            s.Dimensions,
		TrackingNumber:        s.TrackingNumber,
		History:               history,
	}
}

// toDomain restores an order from its record. An unrecognized state is kept
// as order.Unknown and reported through logger.
func toDomain(r orderRecord, logger *slog.Logger) (*order.Order, error) {
	state := parseState(r.State, r.Reference, logger)

	items := make([]order.LineItemSnapshot, len(r.LineItems))
	for i, li := range r.LineItems {
		items[i] = order.LineItemSnapshot(li)
	}

	history := make([]order.HistorySnapshot, len(r.History))
	for i, h := range r.History {
		history[i] = order.HistorySnapshot{
			ID:        h.ID,
			State:     parseState(h.State, r.Reference, logger),
			Timestamp: time.Time(h.Timestamp),
			Comment:   h.Comment,
		}
	}

	return order.Restore(order.Snapshot{
		Reference:             r.Reference,
		Supplier:              r.Supplier,
		SupplierEmail:         r.SupplierEmail,
		OfferDocument:         r.OfferDocument,
		OrderNumber:           r.OrderNumber,
		LineItems:             items,
		State:                 state,
		CreatedAt:             time.Time(r.CreatedAt),
		RequisitionID:         r.RequisitionID,
		InternalOrderNumber:   r.InternalOrderNumber,
		PurchaseOrderNumber:   r.PurchaseOrderNumber,
		PurchaseOrderDocument: r.PurchaseOrderDocument,
		LabelDocument:         r.LabelDocument,
		PackageCount:          r.PackageCount,
		TotalWeight:           r.TotalWeight,
		Dimensions:            r.Dimensions,
		TrackingNumber:        r.TrackingNumber,
		History:               history,
	})
}

func parseState(raw, reference string, logger *slog.Logger) order.State {
	s, err := order.ParseState(raw)
	if err != nil {
		logger.Warn("unrecognized order state", "reference", reference, "state", raw)
		return order.Unknown
	}
	return s
}
