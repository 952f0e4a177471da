package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BackupJob copies the order collection on a cron schedule.
type BackupJob struct {
	handler  commands.BackupOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBackupJob creates a backup job. schedule is a cron expression with a
// leading seconds field, for example "0 0 2 * * *" for 02:00 every day.
func NewBackupJob(handler commands.BackupOrdersCommandHandler, schedule string, logger *slog.Logger) *BackupJob {
	return &BackupJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "backup_job"),
	}
}

// Start registers the backup on its schedule and starts the scheduler.
func (j *BackupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backup job started", "schedule", j.schedule)
	return nil
}

// Run performs one backup. Failures are logged; the next tick retries.
func (j *BackupJob) Run(ctx context.Context) {
	location, err := j.handler.Handle(ctx, commands.NewBackupOrdersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Backup job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Backup written", "location", location)
}

// Stop stops the scheduler and waits for a running backup to finish.
func (j *BackupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Backup job stopped")
}
