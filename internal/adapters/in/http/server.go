package http

import (
	"context"
	"net/http"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/domain/model/identity"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int64, error)
}

type EditOrderHandler interface {
	Handle(ctx context.Context, cmd commands.EditOrderCommand) error
}

type DeleteOrderHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
}

type ApproveOrderHandler interface {
	Handle(ctx context.Context, cmd commands.ApproveOrderCommand) error
}

type RejectOrderHandler interface {
	Handle(ctx context.Context, cmd commands.RejectOrderCommand) error
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDetails, error)
}

type ListMyOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListMyOrdersQuery) ([]queries.OrderSummary, error)
}

type ListOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error)
}

type ExportOrderHandler interface {
	Handle(ctx context.Context, query queries.ExportOrderQuery) (queries.ExportOrderQueryResponse, error)
}

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	CreateOrder  CreateOrderHandler
	EditOrder    EditOrderHandler
	DeleteOrder  DeleteOrderHandler
	ApproveOrder ApproveOrderHandler
	RejectOrder  RejectOrderHandler

	GetOrder     GetOrderHandler
	ListMyOrders ListMyOrdersHandler
	ListOrders   ListOrdersHandler
	ExportOrder  ExportOrderHandler
}

var _ ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
// Errors are returned to echo and rendered by NewErrorHandler.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return err
	}

	var body OrderContent
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	items, err := body.lineItems()
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actor, body.Title, body.Justification, items)
	if err != nil {
		return err
	}

	requestNumber, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/v1/orders/"+orderID.String())
	return ctx.JSON(http.StatusCreated, CreatedOrder{ID: orderID.String(), RequestNumber: requestNumber})
}

// ListOrders handles GET /api/v1/orders, the reviewer queue.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return err
	}

	var statuses []order.Status
	if params.Status != nil {
		for _, name := range *params.Status {
			status, parseErr := order.ParseStatus(name)
			if parseErr != nil {
				return parseErr
			}
			statuses = append(statuses, status)
		}
	}

	query, err := queries.NewListOrdersQuery(actor, statuses)
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// ListMyOrders handles GET /api/v1/me/orders.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	actor, err := currentActor(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListMyOrdersQuery(actor)
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListMyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	actor, orderID, err := actorAndOrderID(ctx, id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return err
	}

	details, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderDetails(details))
}

// EditOrder handles PUT /api/v1/orders/{id}. Editing a rejected order resubmits it.
func (s *Server) EditOrder(ctx echo.Context, id openapi_types.UUID) error {
	actor, orderID, err := actorAndOrderID(ctx, id)
	if err != nil {
		return err
	}

	var body OrderContent
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	items, err := body.lineItems()
	if err != nil {
		return err
	}

	cmd, err := commands.NewEditOrderCommand(orderID, actor, body.Title, body.Justification, items)
	if err != nil {
		return err
	}

	if err = s.handlers.EditOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id openapi_types.UUID) error {
	actor, orderID, err := actorAndOrderID(ctx, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, actor)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveOrder handles POST /api/v1/orders/{id}/approve.
func (s *Server) ApproveOrder(ctx echo.Context, id openapi_types.UUID) error {
	actor, orderID, err := actorAndOrderID(ctx, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewApproveOrderCommand(orderID, actor)
	if err != nil {
		return err
	}

	if err = s.handlers.ApproveOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/{id}/reject.
func (s *Server) RejectOrder(ctx echo.Context, id openapi_types.UUID) error {
	actor, orderID, err := actorAndOrderID(ctx, id)
	if err != nil {
		return err
	}

	var body Rejection
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, actor, body.Reason)
	if err != nil {
		return err
	}

	if err = s.handlers.RejectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ExportOrder handles GET /api/v1/orders/{id}/export.
func (s *Server) ExportOrder(ctx echo.Context, id openapi_types.UUID) error {
	actor, orderID, err := actorAndOrderID(ctx, id)
	if err != nil {
		return err
	}

	query, err := queries.NewExportOrderQuery(orderID, actor)
	if err != nil {
		return err
	}

	file, err := s.handlers.ExportOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, contentDisposition(file.FileName))
	return ctx.Blob(http.StatusOK, file.ContentType, file.Content)
}

func actorAndOrderID(ctx echo.Context, id openapi_types.UUID) (identity.Actor, kernel.UUID, error) {
	actor, err := currentActor(ctx)
	if err != nil {
		return identity.Actor{}, kernel.UUID{}, err
	}

	orderID, err := kernel.UUIDFromString(id.String())
	if err != nil {
		return identity.Actor{}, kernel.UUID{}, err
	}

	return actor, orderID, nil
}
