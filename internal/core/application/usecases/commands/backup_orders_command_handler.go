package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/ports"
)

var ErrExporterIsRequired = errors.New("order exporter is required")

// BackupOrdersCommandHandler copies a consistent view of every order to an
// OrderExporter. The unit of work is only used to read and is always rolled back.
type BackupOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	exporter   ports.OrderExporter
	logger     *slog.Logger
}

func NewBackupOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	exporter ports.OrderExporter,
	logger *slog.Logger,
) BackupOrdersCommandHandler {
	return BackupOrdersCommandHandler{
		uowFactory: uowFactory,
		exporter:   exporter,
		logger:     logger.With("component", "backup_orders_handler"),
	}
}

// Handle exports the orders and returns the locator of the copy.
func (h *BackupOrdersCommandHandler) Handle(ctx context.Context, cmd BackupOrdersCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}
	if h.exporter == nil {
		return "", ErrExporterIsRequired
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().List(ctx)
	if err != nil {
		return "", err
	}

	location, err := h.exporter.Export(ctx, orders)
	if err != nil {
		return "", err
	}

	h.logger.InfoContext(ctx, "orders backed up", "count", len(orders), "location", location)
	return location, nil
}
