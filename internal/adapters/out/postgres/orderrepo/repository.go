package orderrepo

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db     *gorm.DB
	logger *slog.Logger

	// lockRows makes Get take a row lock; only meaningful inside a transaction
	lockRows bool
}

// NewGormOrderRepository creates a repository on db. When lockRows is set, Get
// reads the order row with SELECT ... FOR UPDATE so that concurrent units of
// work modifying the same order are serialized.
func NewGormOrderRepository(db *gorm.DB, logger *slog.Logger, lockRows bool) *GormOrderRepository {
	return &GormOrderRepository{
		db:       db,
		logger:   logger,
		lockRows: lockRows,
	}
}

// Add inserts the order with its line items and history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	exists, err := r.exists(ctx, dto.Reference)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError("reference", dto.Reference)
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("reference", dto.Reference, err)
		}
		return err
	}
	return nil
}

// Update saves the order row and upserts its children. History is append-only
// and line items never change, so no child rows have to be deleted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	exists, err := r.exists(ctx, dto.Reference)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("reference", dto.Reference)
	}

	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto).Error
}

// Remove deletes the order and its children.
func (r *GormOrderRepository) Remove(ctx context.Context, reference string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_reference = ?", reference).Delete(&HistoryEntryDTO{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_reference = ?", reference).Delete(&LineItemDTO{}).Error; err != nil {
			return err
		}

		result := tx.Where("reference = ?", reference).Delete(&OrderDTO{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("reference", reference)
		}
		return nil
	})
}

// Get retrieves an order by reference.
func (r *GormOrderRepository) Get(ctx context.Context, reference string) (*order.Order, error) {
	query := r.preloaded(ctx)
	if r.lockRows {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.First(&dto, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("reference", reference, err)
		}
		return nil, err
	}

	return toDomain(dto, r.logger)
}

// List returns every order, oldest first.
func (r *GormOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	return r.find(r.preloaded(ctx))
}

// Search returns the orders whose reference contains term, ignoring case.
func (r *GormOrderRepository) Search(ctx context.Context, term string) ([]*order.Order, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.List(ctx)
	}
	return r.find(r.preloaded(ctx).Where("reference ILIKE ?", "%"+escapeLike(term)+"%"))
}

func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("sequence") })
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Order("created_at, reference").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto, r.logger)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *GormOrderRepository) exists(ctx context.Context, reference string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("reference = ?", reference).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
