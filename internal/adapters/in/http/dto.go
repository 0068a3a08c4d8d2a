package http

import (
	"fmt"
	"time"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type LineItem struct {
	ProductName string          `json:"product_name"`
	Supplier    string          `json:"supplier"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// OrderContent is the body of CreateOrder and EditOrder.
type OrderContent struct {
	Title         string     `json:"title"`
	Justification string     `json:"justification"`
	Items         []LineItem `json:"items"`
}

type Rejection struct {
	Reason string `json:"reason"`
}

type CreatedOrder struct {
	ID            string `json:"id"`
	RequestNumber int64  `json:"request_number"`
}

type OrderSummary struct {
	ID            string    `json:"id"`
	RequestNumber int64     `json:"request_number"`
	OwnerID       string    `json:"owner_id"`
	OwnerName     string    `json:"owner_name"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	TotalAmount   string    `json:"total_amount"`
	ReviewerNotes string    `json:"reviewer_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type OrderLine struct {
	ProductName string `json:"product_name"`
	Supplier    string `json:"supplier"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

type OrderDetails struct {
	OrderSummary
	Justification string      `json:"justification"`
	ReviewedBy    *string     `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time  `json:"reviewed_at,omitempty"`
	Version       int64       `json:"version"`
	Items         []OrderLine `json:"items"`
}

func (c OrderContent) lineItems() ([]commands.LineItemInput, error) {
	if c.Items == nil {
		return nil, errs.NewValueIsRequiredError("items")
	}

	items := make([]commands.LineItemInput, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, commands.LineItemInput{
			ProductName: item.ProductName,
			Supplier:    item.Supplier,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return items, nil
}

func toOrderSummary(s queries.OrderSummary) OrderSummary {
	return OrderSummary{
		ID:            s.ID.String(),
		RequestNumber: s.RequestNumber,
		OwnerID:       s.OwnerID.String(),
		OwnerName:     s.OwnerName,
		Title:         s.Title,
		Status:        s.Status.String(),
		TotalAmount:   s.TotalAmount.String(),
		ReviewerNotes: s.ReviewerNotes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toOrderSummaries(summaries []queries.OrderSummary) []OrderSummary {
	result := make([]OrderSummary, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, toOrderSummary(s))
	}
	return result
}

func toOrderDetails(d queries.OrderDetails) OrderDetails {
	var reviewedBy *string
	if d.ReviewedBy != nil {
		id := d.ReviewedBy.String()
		reviewedBy = &id
	}

	items := make([]OrderLine, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, OrderLine{
			ProductName: item.ProductName,
			Supplier:    item.Supplier,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			LineTotal:   item.LineTotal.String(),
		})
	}

	return OrderDetails{
		OrderSummary:  toOrderSummary(d.OrderSummary),
		Justification: d.Justification,
		ReviewedBy:    reviewedBy,
		ReviewedAt:    d.ReviewedAt,
		Version:       d.Version,
		Items:         items,
	}
}

func contentDisposition(fileName string) string {
	return fmt.Sprintf("attachment; filename=%s", fileName)
}
