// Package orderrepo persists the order aggregate in the orders and order_items tables.
package orderrepo

import (
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. RequestNumber is a bigserial filled in by the database.
// Timestamps come from the aggregate, never from GORM's clock.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RequestNumber int64           `gorm:"autoIncrement;uniqueIndex;not null"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title         string          `gorm:"type:varchar(255);not null"`
	Justification string          `gorm:"type:text;not null"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status        string          `gorm:"type:varchar(16);not null;index"`
	ReviewerNotes string          `gorm:"type:text;not null"`
	ReviewedBy    *uuid.UUID      `gorm:"type:uuid"`
	ReviewedAt    *time.Time
	Version       int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime:false"`

	Items []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one order_items row. Position keeps the submitted item order.
type LineItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Supplier    string          `gorm:"type:varchar(255);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,4);not null"`
}

func (LineItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var reviewedBy *uuid.UUID
	if id := aggregate.ReviewedBy(); id != nil {
		raw := id.Bytes()
		reviewedBy = &raw
	}

	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		RequestNumber: aggregate.RequestNumber(),
		OwnerID:       aggregate.OwnerID().Bytes(),
		Title:         aggregate.Title(),
		Justification: aggregate.Justification(),
		TotalAmount:   aggregate.TotalAmount().Rounded(),
		Status:        aggregate.Status().String(),
		ReviewerNotes: aggregate.ReviewerNotes(),
		ReviewedBy:    reviewedBy,
		ReviewedAt:    aggregate.ReviewedAt(),
		Version:       aggregate.Version(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
	dto.Items = itemsFromDomain(dto.ID, aggregate.Items())

	return dto
}

func itemsFromDomain(orderID uuid.UUID, items []order.LineItem) []LineItemDTO {
	dtos := make([]LineItemDTO, 0, len(items))
	for position, item := range items {
		dtos = append(dtos, LineItemDTO{
			ID:          uuid.New(),
			OrderID:     orderID,
			Position:    position,
			ProductName: item.ProductName(),
			Supplier:    item.Supplier(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate through RestoreOrder, so stored rows pass the
// same validation as new orders.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var reviewedBy *kernel.UUID
	if dto.ReviewedBy != nil {
		rID, reviewerErr := kernel.UUIDFromBytes((*dto.ReviewedBy)[:])
		if reviewerErr != nil {
			return nil, reviewerErr
		}
		reviewedBy = &rID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(itemDTO.ProductName, itemDTO.Supplier, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:            id,
		RequestNumber: dto.RequestNumber,
		OwnerID:       ownerID,
		Title:         dto.Title,
		Justification: dto.Justification,
		Items:         items,
		Status:        status,
		ReviewerNotes: dto.ReviewerNotes,
		ReviewedBy:    reviewedBy,
		ReviewedAt:    dto.ReviewedAt,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
		Version:       dto.Version,
	})
}
