// Package queries contains read-only operations over purchase orders.
// Handlers read straight from the database into read models and apply the
// same access rules as the commands.
package queries

import (
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
)

// OrderSummary is one row of an order list.
type OrderSummary struct {
	ID            kernel.UUID
	RequestNumber int64
	OwnerID       kernel.UUID
	OwnerName     string
	Title         string
	Status        order.Status
	TotalAmount   kernel.Money
	ReviewerNotes string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderLine is a line item as shown to readers.
type OrderLine struct {
	ProductName string
	Supplier    string
	Quantity    int
	UnitPrice   kernel.Money
	LineTotal   kernel.Money
}

// OrderDetails is a full order with its items in submitted order.
type OrderDetails struct {
	OrderSummary
	Justification string
	ReviewedBy    *kernel.UUID
	ReviewedAt    *time.Time
	Version       int64
	Items         []OrderLine
}
