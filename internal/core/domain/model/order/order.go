package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or Restore.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or Restore")
)

const createdComment = "order created"

// Order is the aggregate root of a purchase order moving through the
// fulfillment workflow.
//
// Order follows these invariants:
//   - Reference and supplier are never blank
//   - A newly created order has at least one line item
//   - State starts at OfferReceived
//   - History is append-only and gains exactly one entry per successful transition
//   - Numeric stage fields are never negative
//
// Stage fields start empty and are filled in by the operator as the order
// progresses. The aggregate does not refuse to advance when they are missing;
// CanAdvance and MissingFields expose the gate so that callers can decide.
type Order struct {
	// reference is the caller-supplied identity, usually the offer number
	reference string

	// supplier is the vendor name
	supplier string

	supplierEmail string
	offerDocument string
	orderNumber   string

	// lineItems are the requested parts; immutable after construction
	lineItems []LineItem

	// state is the current workflow stage
	state State

	createdAt time.Time

	// stage fields
	requisitionID         string
	internalOrderNumber   int
	purchaseOrderNumber   string
	purchaseOrderDocument string
	labelDocument         string
	packageCount          int
	totalWeight           float64
	dimensions            string
	trackingNumber        string

	// history is the audit trail, oldest first
	history []HistoryEntry

	// clock stamps created_at and history entries
	clock kernel.Clock

	// isConstructed ensures the order was created via NewOrder or Restore
	isConstructed bool
}

// Option customizes an Order at construction or restore time.
type Option func(*Order)

// WithClock replaces the time source used for created_at and history timestamps.
func WithClock(clock kernel.Clock) Option {
	return func(o *Order) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// NewOrder creates a new Order in the OfferReceived state.
//
// Parameters:
//   - reference: identity of the order, must not be blank
//   - supplier: vendor name, must not be blank
//   - items: requested parts, at least one, each built with NewLineItem
//   - opts: optional settings such as WithClock
//
// Returns:
//   - *Order: the new order with a single history entry "order created"
//   - error: the joined validation errors if any parameter is invalid
//
// Example:
//
//	item, _ := order.NewLineItem("P-100", "Bearing", 4, "PRJ-7")
//	o, err := order.NewOrder("OF-2025-001", "ACME", []order.LineItem{item})
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(o.State()) // OFFER_RECEIVED
func NewOrder(reference, supplier string, items []LineItem, opts ...Option) (*Order, error) {
	o := &Order{
		state:         OfferReceived,
		clock:         kernel.SystemClock(),
		isConstructed: true,
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := errors.Join(
		o.setReference(reference),
		o.setSupplier(supplier),
		o.setLineItems(items),
	); err != nil {
		return nil, err
	}

	o.createdAt = o.clock()
	o.history = []HistoryEntry{NewHistoryEntry(OfferReceived, o.createdAt, createdComment)}

	return o, nil
}

// Validate ensures the Order instance was created through NewOrder or Restore.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed for a nil pointer or a zero value
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by reference.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.reference == other.reference
}

// Reference returns the order's identity.
func (o *Order) Reference() string {
	return o.reference
}

// Supplier returns the vendor name.
func (o *Order) Supplier() string {
	return o.supplier
}

// SupplierEmail returns the vendor contact address.
func (o *Order) SupplierEmail() string {
	return o.supplierEmail
}

// OfferDocument returns the reference to the supplier's offer document.
func (o *Order) OfferDocument() string {
	return o.offerDocument
}

// OrderNumber returns the procurement platform's order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// LineItems returns a copy of the requested parts.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// State returns the current workflow stage.
func (o *Order) State() State {
	return o.state
}

// CreatedAt returns the construction time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// History returns a copy of the audit trail, oldest entry first.
func (o *Order) History() []HistoryEntry {
	history := make([]HistoryEntry, len(o.history))
	copy(history, o.history)
	return history
}

func (o *Order) RequisitionID() string {
	return o.requisitionID
}

func (o *Order) InternalOrderNumber() int {
	return o.internalOrderNumber
}

func (o *Order) PurchaseOrderNumber() string {
	return o.purchaseOrderNumber
}

func (o *Order) PurchaseOrderDocument() string {
	return o.purchaseOrderDocument
}

func (o *Order) LabelDocument() string {
	return o.labelDocument
}

func (o *Order) PackageCount() int {
	return o.packageCount
}

func (o *Order) TotalWeight() float64 {
	return o.totalWeight
}

func (o *Order) Dimensions() string {
	return o.dimensions
}

func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// SetSupplierEmail stores the vendor contact address.
func (o *Order) SetSupplierEmail(v string) {
	o.supplierEmail = v
}

// SetOfferDocument stores the reference to the offer document.
func (o *Order) SetOfferDocument(v string) {
	o.offerDocument = v
}

// SetOrderNumber stores the procurement platform's order number.
func (o *Order) SetOrderNumber(v string) {
	o.orderNumber = v
}

// SetRequisitionID stores the procurement requisition identifier.
func (o *Order) SetRequisitionID(v string) {
	o.requisitionID = v
}

// SetInternalOrderNumber stores the internal order number. Negative values are rejected.
func (o *Order) SetInternalOrderNumber(v int) error {
	if v < 0 {
		return errs.NewValueIsOutOfRangeError(string(FieldInternalOrderNumber), v, 0, math.MaxInt)
	}
	o.internalOrderNumber = v
	return nil
}

// SetPurchaseOrderNumber stores the purchase order number.
func (o *Order) SetPurchaseOrderNumber(v string) {
	o.purchaseOrderNumber = v
}

// SetPurchaseOrderDocument stores the reference to the signed purchase order document.
func (o *Order) SetPurchaseOrderDocument(v string) {
	o.purchaseOrderDocument = v
}

// SetLabelDocument stores the reference to the shipping label document.
func (o *Order) SetLabelDocument(v string) {
	o.labelDocument = v
}

// SetPackageCount stores the number of packages. Negative values are rejected.
func (o *Order) SetPackageCount(v int) error {
	if v < 0 {
		return errs.NewValueIsOutOfRangeError(string(FieldPackageCount), v, 0, math.MaxInt)
	}
	o.packageCount = v
	return nil
}

// SetTotalWeight stores the shipment weight. Negative and non-finite values are rejected.
func (o *Order) SetTotalWeight(v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.NewValueIsOutOfRangeError(string(FieldTotalWeight), v, 0, math.MaxFloat64)
	}
	o.totalWeight = v
	return nil
}

// SetDimensions stores the package dimensions as free text.
func (o *Order) SetDimensions(v string) {
	o.dimensions = v
}

// SetTrackingNumber stores the carrier tracking number.
func (o *Order) SetTrackingNumber(v string) {
	o.trackingNumber = v
}

// Advance moves the order one step forward in the workflow.
//
// Advance is not gated by RequiredFields; callers that want enforcement check
// CanAdvance first. An order in an unrecognized state moves to OfferReceived.
//
// Parameters:
//   - comment: free text for the history entry; when blank the comment
//     "advanced to <STATE>" is used
//
// Returns:
//   - true when the state changed and a history entry was appended
//   - false when the order is already Completed; nothing is modified
//
// Example:
//
//	if !o.CanAdvance() {
//	    fmt.Println("missing:", o.MissingFields())
//	}
//	o.Advance("")
func (o *Order) Advance(comment string) bool {
	next := o.state.Next()
	if next == o.state {
		return false
	}

	if strings.TrimSpace(comment) == "" {
		comment = "advanced to " + next.String()
	}
	o.moveTo(next, comment)
	return true
}

// Retreat moves the order one step back in the workflow.
//
// Parameters:
//   - comment: free text for the history entry; when blank the comment
//     "retreated to <STATE>" is used
//
// Returns:
//   - true when the state changed and a history entry was appended
//   - false when the order is already at OfferReceived; nothing is modified
func (o *Order) Retreat(comment string) bool {
	prev := o.state.Previous()
	if prev == o.state {
		return false
	}

	if strings.TrimSpace(comment) == "" {
		comment = "retreated to " + prev.String()
	}
	o.moveTo(prev, comment)
	return true
}

func (o *Order) moveTo(s State, comment string) {
	o.state = s
	o.history = append(o.history, NewHistoryEntry(s, o.clock(), comment))
}

func (o *Order) setReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	o.reference = reference
	return nil
}

func (o *Order) setSupplier(supplier string) error {
	supplier = strings.TrimSpace(supplier)
	if supplier == "" {
		return errs.NewValueIsRequiredError("supplier")
	}
	o.supplier = supplier
	return nil
}

func (o *Order) setLineItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("line_items", errors.New("at least one line item is needed"))
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("line item %d: %w", i, err)
		}
	}
	o.lineItems = make([]LineItem, len(items))
	copy(o.lineItems, items)
	return nil
}
