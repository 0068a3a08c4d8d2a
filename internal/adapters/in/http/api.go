package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *[]string `form:"status,omitempty" json:"status,omitempty"`
}

// ServerInterface represents all server handlers of api/openapi.yaml.
type ServerInterface interface {
	// Submit a purchase order
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// Reviewer queue of all orders, newest first
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Orders submitted by the caller, newest first
	// (GET /me/orders)
	ListMyOrders(ctx echo.Context) error
	// Order with its line items
	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
	// Edit a pending order or resubmit a rejected one
	// (PUT /orders/{id})
	EditOrder(ctx echo.Context, id openapi_types.UUID) error
	// Delete a pending or rejected order
	// (DELETE /orders/{id})
	DeleteOrder(ctx echo.Context, id openapi_types.UUID) error
	// Approve a pending order
	// (POST /orders/{id}/approve)
	ApproveOrder(ctx echo.Context, id openapi_types.UUID) error
	// Reject a pending order with a reason
	// (POST /orders/{id}/reject)
	RejectOrder(ctx echo.Context, id openapi_types.UUID) error
	// Download the order as CSV
	// (GET /orders/{id}/export)
	ExportOrder(ctx echo.Context, id openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) ListMyOrders(ctx echo.Context) error {
	return w.Handler.ListMyOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) EditOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.EditOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) ApproveOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ApproveOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) RejectOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RejectOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) ExportOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ExportOrder(ctx, id)
}

func bindOrderID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.GET(baseURL+"/me/orders", wrapper.ListMyOrders)
	router.GET(baseURL+"/orders/:id", wrapper.GetOrder)
	router.PUT(baseURL+"/orders/:id", wrapper.EditOrder)
	router.DELETE(baseURL+"/orders/:id", wrapper.DeleteOrder)
	router.POST(baseURL+"/orders/:id/approve", wrapper.ApproveOrder)
	router.POST(baseURL+"/orders/:id/reject", wrapper.RejectOrder)
	router.GET(baseURL+"/orders/:id/export", wrapper.ExportOrder)
}
