// Package services provides domain services that compute over collections of
// orders rather than a single aggregate.
//
// The package includes:
//   - WorkflowSummarizer: per-state counts and overall progress for a set of
//     orders, backing the statistics views of the operator interfaces
package services
