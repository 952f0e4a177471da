package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Snapshot is the flat, exported form of an Order used by persistence
// adapters. Every field that survives a save/load round trip is here.
type Snapshot struct {
	Reference             string
	Supplier              string
	SupplierEmail         string
	OfferDocument         string
	OrderNumber           string
	LineItems             []LineItemSnapshot
	State                 State
	CreatedAt             time.Time
	RequisitionID         string
	InternalOrderNumber   int
	PurchaseOrderNumber   string
	PurchaseOrderDocument string
	LabelDocument         string
	PackageCount          int
	TotalWeight           float64
	Dimensions            string
	TrackingNumber        string
	History               []HistorySnapshot
}

// LineItemSnapshot is the persisted form of a LineItem.
type LineItemSnapshot struct {
	Code        string
	Description string
	Quantity    int
	Project     string
}

// HistorySnapshot is the persisted form of a HistoryEntry.
// An empty ID is accepted on restore and replaced by a fresh one.
type HistorySnapshot struct {
	ID        string
	State     State
	Timestamp time.Time
	Comment   string
}

// Snapshot captures the complete state of the order.
func (o *Order) Snapshot() Snapshot {
	items := make([]LineItemSnapshot, len(o.lineItems))
	for i, li := range o.lineItems {
		items[i] = LineItemSnapshot{
			Code:        li.Code(),
			Description: li.Description(),
			Quantity:    li.Quantity(),
			Project:     li.Project(),
		}
	}

	history := make([]HistorySnapshot, len(o.history))
	for i, h := range o.history {
		history[i] = HistorySnapshot{
			ID:        h.ID().String(),
			State:     h.State(),
			Timestamp: h.Timestamp(),
			Comment:   h.Comment(),
		}
	}

	return Snapshot{
		Reference:             o.reference,
		Supplier:              o.supplier,
		SupplierEmail:         o.supplierEmail,
		OfferDocument:         o.offerDocument,
		OrderNumber:           o.orderNumber,
		LineItems:             items,
		State:                 o.state,
		CreatedAt:             o.createdAt,
		RequisitionID:         o.requisitionID,
		InternalOrderNumber:   o.internalOrderNumber,
		PurchaseOrderNumber:   o.purchaseOrderNumber,
		PurchaseOrderDocument: o.purchaseOrderDocument,
		LabelDocument:         o.labelDocument,
		PackageCount:          o.packageCount,
		TotalWeight:           o.totalWeight,
		Dimensions:            o.dimensions,
		TrackingNumber:        o.trackingNumber,
		History:               history,
	}
}

// Restore rebuilds an Order from a Snapshot without replaying its history.
//
// Restore applies the same reference, supplier and numeric checks as the
// constructor and setters, but accepts records that NewOrder would not
// produce: an empty line item list, an empty history, or an Unknown state.
// An Unknown state is kept so the catalog's fail-safe applies on the next
// transition; detecting and reporting it is the caller's job.
//
// Returns:
//   - *Order: the restored aggregate
//   - error: the joined validation errors otherwise
func Restore(s Snapshot, opts ...Option) (*Order, error) {
	o := &Order{
		state:                 s.State,
		createdAt:             s.CreatedAt,
		supplierEmail:         s.SupplierEmail,
		offerDocument:         s.OfferDocument,
		orderNumber:           s.OrderNumber,
		requisitionID:         s.RequisitionID,
		purchaseOrderNumber:   s.PurchaseOrderNumber,
		purchaseOrderDocument: s.PurchaseOrderDocument,
		labelDocument:         s.LabelDocument,
		dimensions:            s.Dimensions,
		trackingNumber:        s.TrackingNumber,
		clock:                 kernel.SystemClock(),
		isConstructed:         true,
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := errors.Join(
		o.setReference(s.Reference),
		o.setSupplier(s.Supplier),
		o.SetInternalOrderNumber(s.InternalOrderNumber),
		o.SetPackageCount(s.PackageCount),
		o.SetTotalWeight(s.TotalWeight),
		o.restoreLineItems(s.LineItems),
		o.restoreHistory(s.History),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) restoreLineItems(items []LineItemSnapshot) error {
	o.lineItems = make([]LineItem, 0, len(items))
	for i, item := range items {
		li, err := NewLineItem(item.Code, item.Description, item.Quantity, item.Project)
		if err != nil {
			return fmt.Errorf("line item %d: %w", i, err)
		}
		o.lineItems = append(o.lineItems, li)
	}
	return nil
}

func (o *Order) restoreHistory(entries []HistorySnapshot) error {
	o.history = make([]HistoryEntry, 0, len(entries))
	for i, entry := range entries {
		id := kernel.NewUUID()
		if strings.TrimSpace(entry.ID) != "" {
			parsed, err := kernel.UUIDFromString(entry.ID)
			if err != nil {
				return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("history[%d].id", i), err)
			}
			id = parsed
		}

		h, err := RestoreHistoryEntry(id, entry.State, entry.Timestamp, entry.Comment)
		if err != nil {
			return err
		}
		o.history = append(o.history, h)
	}
	return nil
}
