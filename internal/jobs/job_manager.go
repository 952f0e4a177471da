package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// A job whose schedule is empty is disabled.
type JobManager struct {
	backupJob *BackupJob
	logger    *slog.Logger
}

// NewJobManager creates a job manager. An empty backupSchedule disables the
// backup job.
func NewJobManager(
	backupHandler commands.BackupOrdersCommandHandler,
	backupSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}
	if backupSchedule != "" {
		jm.backupJob = NewBackupJob(backupHandler, backupSchedule, logger)
	}
	return jm
}

// StartAll starts all enabled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.backupJob == nil {
		jm.logger.InfoContext(context.Background(), "Backup job disabled, no schedule configured")
		return nil
	}

	if err := jm.backupJob.Start(); err != nil {
		return fmt.Errorf("failed to start backup job: %w", err)
	}

	return nil
}

// StopAll stops all enabled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.backupJob != nil {
		jm.backupJob.Stop()
	}
}
