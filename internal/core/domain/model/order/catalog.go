package order

import "math"

// TotalStates is the number of states in the workflow sequence.
const TotalStates = 12

// OrderedStates returns the workflow states in sequence order.
// Each call returns a fresh slice that the caller may modify.
func OrderedStates() []State {
	states := make([]State, 0, TotalStates)
	for s := OfferReceived; s <= Completed; s++ {
		states = append(states, s)
	}
	return states
}

// IsInitial reports whether s is the first state of the sequence.
func (s State) IsInitial() bool {
	return s == OfferReceived
}

// IsTerminal reports whether s is the last state of the sequence.
func (s State) IsTerminal() bool {
	return s == Completed
}

// Next returns the state that follows s.
//
// Returns:
//   - the following state for any state before Completed
//   - Completed unchanged for Completed
//   - OfferReceived for an unrecognized state
func (s State) Next() State {
	switch {
	case !s.IsValid():
		return OfferReceived
	case s.IsTerminal():
		return s
	default:
		return s + 1
	}
}

// Previous returns the state that precedes s.
//
// Returns:
//   - the preceding state for any state after OfferReceived
//   - OfferReceived unchanged for OfferReceived
//   - OfferReceived for an unrecognized state
func (s State) Previous() State {
	switch {
	case !s.IsValid():
		return OfferReceived
	case s.IsInitial():
		return s
	default:
		return s - 1
	}
}

// Position returns the 1-based index of s in the sequence, or 0 when s is unrecognized.
func (s State) Position() int {
	if !s.IsValid() {
		return 0
	}
	return int(s)
}

// ProgressPercent maps the position of s onto 0..100.
//
// The first state is 0, the last is 100 and the states in between are spread
// evenly and rounded to the nearest integer. Unrecognized states report 0.
//
// Example:
//
//	order.OfferReceived.ProgressPercent()  // 0
//	order.LabelsReceived.ProgressPercent() // 45
//	order.Completed.ProgressPercent()      // 100
func (s State) ProgressPercent() int {
	pos := s.Position()
	if pos == 0 {
		return 0
	}
	return int(math.Round(100 * float64(pos-1) / float64(TotalStates-1)))
}

// RequiredFields lists the fields that must be filled before an order in
// state s can advance. Most states have none.
//
// Each call returns a fresh slice.
func (s State) RequiredFields() []Field {
	//nolint:exhaustive // only gated states carry requirements
	switch s {
	case OrderDraft:
		return []Field{FieldRequisitionID, FieldInternalOrderNumber}
	case OrderSubmittedSigned:
		return []Field{FieldPurchaseOrderDocument, FieldPurchaseOrderNumber}
	case LabelsReceived:
		return []Field{FieldLabelDocument, FieldPackageCount, FieldTotalWeight, FieldDimensions}
	default:
		return []Field{}
	}
}
