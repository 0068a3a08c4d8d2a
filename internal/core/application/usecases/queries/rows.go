package queries

import (
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const orderColumns = `
	o.id,
	o.request_number,
	o.owner_id,
	COALESCE(p.full_name, '') AS owner_name,
	o.title,
	o.justification,
	o.status,
	o.total_amount,
	o.reviewer_notes,
	o.reviewed_by,
	o.reviewed_at,
	o.version,
	o.created_at,
	o.updated_at`

const orderFrom = `
	FROM orders o
	LEFT JOIN profiles p ON p.id = o.owner_id`

type orderRow struct {
	ID            uuid.UUID
	RequestNumber int64
	OwnerID       uuid.UUID
	OwnerName     string
	Title         string
	Justification string
	Status        string
	TotalAmount   decimal.Decimal
	ReviewerNotes string
	ReviewedBy    *uuid.UUID
	ReviewedAt    *time.Time
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type itemRow struct {
	ProductName string
	Supplier    string
	Quantity    int
	UnitPrice   decimal.Decimal
}

func (r orderRow) summary() (OrderSummary, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(r.OwnerID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return OrderSummary{}, err
	}
	total, err := kernel.NewMoney(r.TotalAmount)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:            id,
		RequestNumber: r.RequestNumber,
		OwnerID:       ownerID,
		OwnerName:     r.OwnerName,
		Title:         r.Title,
		Status:        status,
		TotalAmount:   total,
		ReviewerNotes: r.ReviewerNotes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}, nil
}

func (r orderRow) details(items []itemRow) (OrderDetails, error) {
	summary, err := r.summary()
	if err != nil {
		return OrderDetails{}, err
	}

	var reviewedBy *kernel.UUID
	if r.ReviewedBy != nil {
		id, idErr := kernel.UUIDFromBytes((*r.ReviewedBy)[:])
		if idErr != nil {
			return OrderDetails{}, idErr
		}
		reviewedBy = &id
	}

	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		unitPrice, priceErr := kernel.NewPrice(item.UnitPrice)
		if priceErr != nil {
			return OrderDetails{}, priceErr
		}
		lines = append(lines, OrderLine{
			ProductName: item.ProductName,
			Supplier:    item.Supplier,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
			LineTotal:   unitPrice.Times(item.Quantity),
		})
	}

	return OrderDetails{
		OrderSummary:  summary,
		Justification: r.Justification,
		ReviewedBy:    reviewedBy,
		ReviewedAt:    r.ReviewedAt,
		Version:       r.Version,
		Items:         lines,
	}, nil
}

func summaries(rows []orderRow) ([]OrderSummary, error) {
	result := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		summary, err := row.summary()
		if err != nil {
			return nil, err
		}
		result = append(result, summary)
	}
	return result, nil
}
