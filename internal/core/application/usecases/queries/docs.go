// Package queries contains read-only operations over orders and the workflow
// catalog. Query handlers read through ports.OrderReader outside any unit of
// work and return flat response types that adapters render directly.
package queries
