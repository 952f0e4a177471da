package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apihttp "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/in/tui"
	"fulfillment/internal/adapters/out/filestore"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	uowFactory ports.UnitOfWorkFactory
	reader     ports.OrderReader
	exporter   ports.OrderExporter

	gormDB *gorm.DB
}

// NewCompositionRoot opens the store selected by cfg.StoreDriver. The
// postgres schema is migrated on open. Call Close when done.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		cfg:      cfg,
		logger:   logger,
		exporter: filestore.NewExporter(cfg.BackupDir, cfg.BackupKeep, logger),
	}

	switch cfg.StoreDriver {
	case StoreDriverFile:
		store := filestore.NewStore(cfg.DataFile, logger)
		root.uowFactory = filestore.NewFileUnitOfWorkFactory(store)
		root.reader = filestore.NewFileOrderRepository(store)

	case StoreDriverPostgres:
		gormDB, err := gorm.Open(gorm_postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
		})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		if err = postgres.Migrate(ctx, gormDB); err != nil {
			return nil, errors.Join(err, closeDB(gormDB))
		}
		root.gormDB = gormDB
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, logger)
		root.reader = orderrepo.NewGormOrderRepository(gormDB, logger, false)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStoreDriver, cfg.StoreDriver)
	}

	return root, nil
}

// Close releases the database connection, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	return closeDB(c.gormDB)
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderFieldsCommandHandler() commands.UpdateOrderFieldsCommandHandler {
	return commands.NewUpdateOrderFieldsCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRetreatOrderCommandHandler() commands.RetreatOrderCommandHandler {
	return commands.NewRetreatOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateBackupOrdersCommandHandler() commands.BackupOrdersCommandHandler {
	return commands.NewBackupOrdersCommandHandler(c.orderUoWFactory(), c.exporter, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateGetWorkflowQueryHandler() queries.GetWorkflowQueryHandler {
	return queries.NewGetWorkflowQueryHandler()
}

func (c *CompositionRoot) CreateGetWorkflowSummaryQueryHandler() queries.GetWorkflowSummaryQueryHandler {
	return queries.NewGetWorkflowSummaryQueryHandler(c.reader, services.NewWorkflowSummarizer())
}

func (c *CompositionRoot) CreateHTTPHandlers() apihttp.Handlers {
	return apihttp.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		UpdateOrderFields:  c.CreateUpdateOrderFieldsCommandHandler(),
		AdvanceOrder:       c.CreateAdvanceOrderCommandHandler(),
		RetreatOrder:       c.CreateRetreatOrderCommandHandler(),
		RemoveOrder:        c.CreateRemoveOrderCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetWorkflow:        c.CreateGetWorkflowQueryHandler(),
		GetWorkflowSummary: c.CreateGetWorkflowSummaryQueryHandler(),
	}
}

func (c *CompositionRoot) CreateTUIHandlers() tui.Handlers {
	return tui.Handlers{
		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		AdvanceOrder:      c.CreateAdvanceOrderCommandHandler(),
		RetreatOrder:      c.CreateRetreatOrderCommandHandler(),
		UpdateOrderFields: c.CreateUpdateOrderFieldsCommandHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateBackupOrdersCommandHandler(), c.cfg.BackupSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
