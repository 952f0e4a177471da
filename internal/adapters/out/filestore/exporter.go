package filestore

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

const backupPattern = "orders_backup_*.json"

// Exporter writes timestamped backup documents into a directory and prunes
// the oldest ones beyond a retention count.
type Exporter struct {
	dir    string
	keep   int
	clock  kernel.Clock
	logger *slog.Logger
}

// NewExporter creates an exporter into dir. keep <= 0 keeps every backup.
func NewExporter(dir string, keep int, logger *slog.Logger) *Exporter {
	return &Exporter{
		dir:    dir,
		keep:   keep,
		clock:  kernel.SystemClock(),
		logger: logger.With("component", "backup_exporter", "dir", dir),
	}
}

// WithClock replaces the time source used for file names and saved_at.
func (e *Exporter) WithClock(clock kernel.Clock) *Exporter {
	e.clock = clock
	return e
}

// Export writes orders to orders_backup_YYYYMMDD_HHMMSS.json and returns its path.
func (e *Exporter) Export(ctx context.Context, orders []*order.Order) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	now := e.clock()
	path := filepath.Join(e.dir, fmt.Sprintf("orders_backup_%s.json", now.Format("20060102_150405")))
	if err := writeDocument(path, orders, now); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	e.prune(ctx)
	return path, nil
}

// prune removes the oldest backups beyond the retention count. Failures are
// logged and do not fail the export.
func (e *Exporter) prune(ctx context.Context) {
	if e.keep <= 0 {
		return
	}

	files, err := filepath.Glob(filepath.Join(e.dir, backupPattern))
	if err != nil {
		e.logger.WarnContext(ctx, "list backups", "error", err)
		return
	}
	if len(files) <= e.keep {
		return
	}

	// the timestamp layout sorts lexically
	slices.Sort(files)
	for _, f := range files[:len(files)-e.keep] {
		if err = os.Remove(f); err != nil {
			e.logger.WarnContext(ctx, "remove old backup", "file", f, "error", err)
			continue
		}
		e.logger.DebugContext(ctx, "old backup removed", "file", f)
	}
}
