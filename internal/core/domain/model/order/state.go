package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// State is a stage of the purchase-order fulfillment workflow.
//
// The twelve valid states form a single linear sequence:
//
//	OfferReceived ─> OrderDraft ─> OrderSubmittedUnsigned ─> OrderSubmittedSigned
//	  ─> PickupFormSubmittedNoLabels ─> LabelsReceived ─> LabelsSentToSupplier
//	  ─> PackagePickedUp ─> PackageInTransit ─> PackageAtWarehouse
//	  ─> PackageAtWarehouseCollected ─> Completed
//
// The zero value Unknown is not part of the sequence. It stands for a
// persisted state name that could not be recognized.
type State int

const (
	// Unknown represents an unrecognized or uninitialized state.
	Unknown State = iota

	// OfferReceived is the initial state: the supplier's offer is on file.
	OfferReceived

	// OrderDraft means the order is being drafted on the procurement platform.
	// Leaving it requires the requisition id and the internal order number.
	OrderDraft

	// OrderSubmittedUnsigned means the order was submitted and awaits signature.
	OrderSubmittedUnsigned

	// OrderSubmittedSigned means the order is signed. Leaving it requires the
	// purchase order document and number.
	OrderSubmittedSigned

	// PickupFormSubmittedNoLabels means the carrier pickup form is filed but
	// shipping labels have not arrived yet.
	PickupFormSubmittedNoLabels

	// LabelsReceived means the carrier issued labels. Leaving it requires the
	// label document, package count, total weight and dimensions.
	LabelsReceived

	// LabelsSentToSupplier means the labels were forwarded to the supplier.
	LabelsSentToSupplier

	// PackagePickedUp means the carrier collected the package.
	PackagePickedUp

	// PackageInTransit means the package is on its way.
	PackageInTransit

	// PackageAtWarehouse means the package arrived at the receiving warehouse.
	PackageAtWarehouse

	// PackageAtWarehouseCollected means the package was collected from the warehouse.
	PackageAtWarehouseCollected

	// Completed is the terminal state.
	Completed
)

type stateNames struct {
	canonical string
	label     string
	short     string
}

// getStateNames returns the canonical, human and short names of every valid state.
func getStateNames() map[State]stateNames {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[State]stateNames{
		OfferReceived:               {"OFFER_RECEIVED", "Offer received", "Offer"},
		OrderDraft:                  {"ORDER_DRAFT", "Order draft", "Draft"},
		OrderSubmittedUnsigned:      {"ORDER_SUBMITTED_UNSIGNED", "Order submitted, unsigned", "Submitted"},
		OrderSubmittedSigned:        {"ORDER_SUBMITTED_SIGNED", "Order submitted, signed", "Signed"},
		PickupFormSubmittedNoLabels: {"PICKUP_FORM_SUBMITTED_NO_LABELS", "Pickup form submitted, no labels", "Pickup"},
		LabelsReceived:              {"LABELS_RECEIVED", "Labels received", "Labels"},
		LabelsSentToSupplier:        {"LABELS_SENT_TO_SUPPLIER", "Labels sent to supplier", "Sent"},
		PackagePickedUp:             {"PACKAGE_PICKED_UP", "Package picked up", "Picked up"},
		PackageInTransit:            {"PACKAGE_IN_TRANSIT", "Package in transit", "Transit"},
		PackageAtWarehouse:          {"PACKAGE_AT_WAREHOUSE", "Package at warehouse", "Warehouse"},
		PackageAtWarehouseCollected: {"PACKAGE_AT_WAREHOUSE_COLLECTED", "Package collected at warehouse", "Collected"},
		Completed:                   {"COMPLETED", "Completed", "Done"},
	}
}

// ParseState resolves a canonical state identifier such as "ORDER_DRAFT".
//
// Matching is exact. Any other input yields Unknown together with a
// ValueIsInvalidError; callers that load persisted data typically log the
// error and keep the Unknown state, which the catalog maps back onto the
// first stage on the next transition.
//
// Example:
//
//	s, err := order.ParseState("LABELS_RECEIVED")
//	// s == order.LabelsReceived, err == nil
func ParseState(name string) (State, error) {
	for s, n := range getStateNames() {
		if n.canonical == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"state",
		fmt.Errorf("%q is not a workflow state", name),
	)
}

// IsValid reports whether s belongs to the workflow sequence.
func (s State) IsValid() bool {
	_, ok := getStateNames()[s]
	return ok
}

// Validate returns a ValueIsInvalidError when s is not a workflow state.
func (s State) Validate() error {
	if !s.IsValid() {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a workflow state", s))
	}
	return nil
}

// String returns the canonical identifier used for persistence and APIs,
// for example "ORDER_SUBMITTED_SIGNED". Unknown renders as "UNKNOWN".
func (s State) String() string {
	if n, ok := getStateNames()[s]; ok {
		return n.canonical
	}
	return "UNKNOWN"
}

// Label returns a human readable name for display.
func (s State) Label() string {
	if n, ok := getStateNames()[s]; ok {
		return n.label
	}
	return "Unknown"
}

// ShortLabel returns a compact name suited to progress bars.
func (s State) ShortLabel() string {
	if n, ok := getStateNames()[s]; ok {
		return n.short
	}
	return "?"
}
