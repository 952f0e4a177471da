// Package order provides the purchase-order aggregate and the fulfillment
// workflow it moves through.
//
// The package includes:
//   - State: the closed enumeration of the twelve workflow stages and the
//     catalog operations over it (Next, Previous, Position, ProgressPercent,
//     RequiredFields)
//   - Field: the stage fields an operator fills in along the way
//   - LineItem: an immutable requested part
//   - HistoryEntry: one audit record per state change
//   - Order: the aggregate root that owns all of the above
//   - Snapshot: the flat record used by persistence adapters to save and
//     restore an Order
//
// Key business rules:
//   - A new order always starts in OfferReceived with a single history entry
//   - Advance and Retreat move exactly one step and are no-ops at the ends
//   - Gating is advisory: CanAdvance and MissingFields report whether the
//     current stage's required fields are filled, but Advance never refuses
//   - A state that cannot be recognized falls back to the first stage when
//     moved in either direction
//
// Nothing in this package performs I/O or synchronization; callers that share
// an Order between goroutines must provide their own exclusion.
package order
