package orderrepo

import (
	"context"
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// updatableColumns are written by Update. request_number, owner_id and
// created_at never change after Add.
var updatableColumns = []string{
	"title",
	"justification",
	"total_amount",
	"status",
	"reviewer_notes",
	"reviewed_by",
	"reviewed_at",
	"version",
	"updated_at",
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and its items, then copies the generated request
// number back into the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewRepositoryError("add order", err)
	}

	if err := aggregate.AssignRequestNumber(dto.RequestNumber); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order only if the stored version still matches the one
// the aggregate was loaded with, and bumps it by one.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	items := dto.Items
	dto.Items = nil
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select(updatableColumns).
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return errs.NewRepositoryError("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.conflictOrNotFound(ctx, aggregate.ID())
	}

	if aggregate.ItemsChanged() {
		if err := r.replaceItems(ctx, dto, items); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the order under the same version guard as Update.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID().Bytes()
	result := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", id, aggregate.Version()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return errs.NewRepositoryError("delete order", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.conflictOrNotFound(ctx, aggregate.ID())
	}

	// Covers schemas created without the cascading foreign key.
	if err := r.db.WithContext(ctx).Where("order_id = ?", id).Delete(&LineItemDTO{}).Error; err != nil {
		return errs.NewRepositoryError("delete order items", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with items in submitted order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewRepositoryError("get order", err)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) replaceItems(ctx context.Context, dto OrderDTO, items []LineItemDTO) error {
	if err := r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&LineItemDTO{}).Error; err != nil {
		return errs.NewRepositoryError("replace order items", err)
	}
	if len(items) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return errs.NewRepositoryError("replace order items", err)
	}
	return nil
}

func (r *GormOrderRepository) conflictOrNotFound(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return errs.NewRepositoryError("check order", err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return errs.NewConflictError("order", id.String())
}
