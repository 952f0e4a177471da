// Package jobs provides scheduled background tasks for the fulfillment service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. BackupJob - Copies every order to a timestamped backup file and prunes old copies
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(backupHandler, "0 0 2 * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with seconds. An empty schedule
// disables the job; an invalid one makes StartAll fail.
//
// # Error Handling
//
// A failed backup is logged and retried on the next tick. A backup still
// running when the next tick fires is skipped.
package jobs
