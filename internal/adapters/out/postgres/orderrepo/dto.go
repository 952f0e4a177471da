// Package orderrepo maps order aggregates onto three tables: orders,
// order_line_items and order_history. Line items are keyed by their position
// in the order; history entries by their id and kept in sequence.
package orderrepo

import (
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders row. The state is stored by its canonical name so the
// table stays readable and survives reordering of the enum.
type OrderDTO struct {
	Reference             string `gorm:"primaryKey;size:128"`
	Supplier              string `gorm:"not null"`
	SupplierEmail         string
	OfferDocument         string
	OrderNumber           string
	State                 string    `gorm:"size:64;index;not null"`
	CreatedAt             time.Time `gorm:"autoCreateTime:false;index"`
	RequisitionID         string
	InternalOrderNumber   int
	PurchaseOrderNumber   string
	PurchaseOrderDocument string
	LabelDocument         string
	PackageCount          int
	TotalWeight           float64
	Dimensions            string
	TrackingNumber        string

	LineItems []LineItemDTO     `gorm:"foreignKey:OrderReference;references:Reference;constraint:OnDelete:CASCADE"`
	History   []HistoryEntryDTO `gorm:"foreignKey:OrderReference;references:Reference;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type LineItemDTO struct {
	OrderReference string `gorm:"primaryKey;size:128"`
	Position       int    `gorm:"primaryKey;autoIncrement:false"`
	Code           string `gorm:"not null"`
	Description    string
	Quantity       int
	Project        string
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

type HistoryEntryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderReference string    `gorm:"size:128;index;not null"`
	Sequence       int       `gorm:"not null"`
	State          string    `gorm:"size:64;not null"`
	Timestamp      time.Time `gorm:"not null"`
	Comment        string
}

func (HistoryEntryDTO) TableName() string {
	return "order_history"
}

// Models lists the DTOs in migration order.
func Models() []any {
	return []any{&OrderDTO{}, &LineItemDTO{}, &HistoryEntryDTO{}}
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	s := o.Snapshot()

	items := make([]LineItemDTO, len(s.LineItems))
	for i, li := range s.LineItems {
		items[i] = LineItemDTO{
			OrderReference: s.Reference,
			Position:       i,
			Code:           li.Code,
			Description:    li.Description,
			Quantity:       li.Quantity,
			Project:        li.Project,
		}
	}

	history := make([]HistoryEntryDTO, len(s.History))
	for i, h := range s.History {
		id, err := uuid.Parse(h.ID)
		if err != nil {
			return OrderDTO{}, err
		}
		history[i] = HistoryEntryDTO{
			ID:             id,
			OrderReference: s.Reference,
			Sequence:       i,
			State:          h.State.String(),
			Timestamp:      h.Timestamp,
			Comment:        h.Comment,
		}
	}

	return OrderDTO{
		Reference:             s.Reference,
		Supplier:              s.Supplier,
		SupplierEmail:         s.SupplierEmail,
		OfferDocument:         s.OfferDocument,
		OrderNumber:           s.OrderNumber,
		State:                 s.State.String(),
		CreatedAt:             s.CreatedAt,
		RequisitionID:         s.RequisitionID,
		InternalOrderNumber:   s.InternalOrderNumber,
		PurchaseOrderNumber:   s.PurchaseOrderNumber,
		PurchaseOrderDocument: s.PurchaseOrderDocument,
		LabelDocument:         s.LabelDocument,
		PackageCount:          s.PackageCount,
		TotalWeight:           s.TotalWeight,
		Dimensions:            s.Dimensions,
		TrackingNumber:        s.TrackingNumber,
		LineItems:             items,
		History:               history,
	}, nil
}

// toDomain expects LineItems and History to be loaded in position and
// sequence order.
func toDomain(dto OrderDTO, logger *slog.Logger) (*order.Order, error) {
	items := make([]order.LineItemSnapshot, len(dto.LineItems))
	for i, li := range dto.LineItems {
		items[i] = order.LineItemSnapshot{
			Code:        li.Code,
			Description: li.Description,
			Quantity:    li.Quantity,
			Project:     li.Project,
		}
	}

	history := make([]order.HistorySnapshot, len(dto.History))
	for i, h := range dto.History {
		history[i] = order.HistorySnapshot{
			ID:        h.ID.String(),
			State:     parseState(h.State, dto.Reference, logger),
			Timestamp: h.Timestamp.UTC(),
			Comment:   h.Comment,
		}
	}

	return order.Restore(order.Snapshot{
		Reference:             dto.Reference,
		Supplier:              dto.Supplier,
		SupplierEmail:         dto.SupplierEmail,
		OfferDocument:         dto.OfferDocument,
		OrderNumber:           dto.OrderNumber,
		LineItems:             items,
		State:                 parseState(dto.State, dto.Reference, logger),
		CreatedAt:             dto.CreatedAt.UTC(),
		RequisitionID:         dto.RequisitionID,
		InternalOrderNumber:   dto.InternalOrderNumber,
		PurchaseOrderNumber:   dto.PurchaseOrderNumber,
		PurchaseOrderDocument: dto.PurchaseOrderDocument,
		LabelDocument:         dto.LabelDocument,
		PackageCount:          dto.PackageCount,
		TotalWeight:           dto.TotalWeight,
		Dimensions:            dto.Dimensions,
		TrackingNumber:        dto.TrackingNumber,
		History:               history,
	})
}

func parseState(raw, reference string, logger *slog.Logger) order.State {
	s, err := order.ParseState(raw)
	if err != nil {
		logger.Warn("unrecognized order state", "reference", reference, "state", raw)
		return order.Unknown
	}
	return s
}
