package queries

import (
	"bytes"
	"context"
	"errors"

	"purchasing/internal/core/application/export"
	"purchasing/internal/core/domain/model/identity"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
)

var ErrExportOrderQueryIsNotConstructed = errors.New(
	"ExportOrderQuery must be created via NewExportOrderQuery constructor",
)

// ExportOrderQuery renders one order as a CSV attachment.
type ExportOrderQuery struct {
	orderID kernel.UUID
	actor   identity.Actor

	guard guard.ConstructorGuard
}

func NewExportOrderQuery(orderID kernel.UUID, actor identity.Actor) (ExportOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return ExportOrderQuery{}, err
	}

	return ExportOrderQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ExportOrderQuery) Validate() error {
	return q.guard.Validate(ErrExportOrderQueryIsNotConstructed)
}

// ExportOrderQueryResponse is a ready-to-send file.
type ExportOrderQueryResponse struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportOrderQueryHandler applies the same visibility rule as GetOrderQueryHandler.
type ExportOrderQueryHandler struct {
	orders GetOrderQueryHandler
}

func NewExportOrderQueryHandler(orders GetOrderQueryHandler) ExportOrderQueryHandler {
	return ExportOrderQueryHandler{orders: orders}
}

func (h ExportOrderQueryHandler) Handle(ctx context.Context, query ExportOrderQuery) (ExportOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ExportOrderQueryResponse{}, err
	}

	getQuery, err := NewGetOrderQuery(query.orderID, query.actor)
	if err != nil {
		return ExportOrderQueryResponse{}, err
	}
	details, err := h.orders.Handle(ctx, getQuery)
	if err != nil {
		return ExportOrderQueryResponse{}, err
	}

	var buf bytes.Buffer
	if err = export.WriteOrderCSV(&buf, toDocument(details)); err != nil {
		return ExportOrderQueryResponse{}, err
	}

	return ExportOrderQueryResponse{
		FileName:    export.FileName(details.RequestNumber),
		ContentType: export.ContentType,
		Content:     buf.Bytes(),
	}, nil
}

func toDocument(details OrderDetails) export.OrderDocument {
	lines := make([]export.OrderLine, 0, len(details.Items))
	for _, item := range details.Items {
		lines = append(lines, export.OrderLine{
			Product:   item.ProductName,
			Supplier:  item.Supplier,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			Total:     item.LineTotal.String(),
		})
	}

	requester := details.OwnerName
	if requester == "" {
		requester = details.OwnerID.String()
	}

	return export.OrderDocument{
		RequestNumber: details.RequestNumber,
		Title:         details.Title,
		Date:          details.CreatedAt,
		Status:        details.Status.String(),
		Requester:     requester,
		Justification: details.Justification,
		Lines:         lines,
		GrandTotal:    details.TotalAmount.String(),
	}
}
