package services

import (
	"math"

	"fulfillment/internal/core/domain/model/order"
)

// StateCount is the number of orders sitting in one workflow state.
type StateCount struct {
	State order.State
	Count int
}

// Summary aggregates a set of orders by workflow state.
type Summary struct {
	// Total is the number of orders summarized.
	Total int

	// ByState holds one entry per workflow state, in sequence order,
	// including states with zero orders.
	ByState []StateCount

	// Unknown counts orders whose state could not be recognized.
	Unknown int

	// Blocked counts orders whose current state has unfilled required fields.
	Blocked int

	// AverageProgress is the mean ProgressPercent over recognized orders,
	// rounded to one decimal. It is 0 for an empty set.
	AverageProgress float64
}

// Count returns the number of orders in state s.
func (s Summary) Count(state order.State) int {
	for _, sc := range s.ByState {
		if sc.State == state {
			return sc.Count
		}
	}
	return 0
}

// WorkflowSummarizer is a stateless domain service that builds a Summary.
//
// Example usage:
//
//	summary, err := services.NewWorkflowSummarizer().Summarize(orders)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d orders completed\n", summary.Count(order.Completed), summary.Total)
type WorkflowSummarizer struct{}

// NewWorkflowSummarizer creates a new WorkflowSummarizer instance.
func NewWorkflowSummarizer() WorkflowSummarizer {
	return WorkflowSummarizer{}
}

// Summarize counts orders per state.
//
// Parameters:
//   - orders: the orders to summarize; each must be valid
//
// Returns:
//   - Summary: counts and progress figures
//   - error: the validation error of the first invalid order
func (WorkflowSummarizer) Summarize(orders []*order.Order) (Summary, error) {
	counts := make(map[order.State]int, order.TotalStates)
	summary := Summary{Total: len(orders)}

	progressSum, recognized := 0, 0
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return Summary{}, err
		}

		s := o.State()
		if !s.IsValid() {
			summary.Unknown++
			continue
		}
		counts[s]++
		recognized++
		progressSum += s.ProgressPercent()
		if !o.CanAdvance() {
			summary.Blocked++
		}
	}

	summary.ByState = make([]StateCount, 0, order.TotalStates)
	for _, s := range order.OrderedStates() {
		summary.ByState = append(summary.ByState, StateCount{State: s, Count: counts[s]})
	}

	if recognized > 0 {
		summary.AverageProgress = math.Round(10*float64(progressSum)/float64(recognized)) / 10
	}

	return summary, nil
}
