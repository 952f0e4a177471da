package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// (GET /api/v1/workflow)
	GetWorkflow(ctx echo.Context) error
	// (GET /api/v1/workflow/summary)
	GetWorkflowSummary(ctx echo.Context) error
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders/{reference})
	GetOrder(ctx echo.Context, reference string) error
	// (PATCH /api/v1/orders/{reference})
	UpdateOrderFields(ctx echo.Context, reference string) error
	// (DELETE /api/v1/orders/{reference})
	RemoveOrder(ctx echo.Context, reference string) error
	// (POST /api/v1/orders/{reference}/advance)
	AdvanceOrder(ctx echo.Context, reference string) error
	// (POST /api/v1/orders/{reference}/retreat)
	RetreatOrder(ctx echo.Context, reference string) error
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Search *string `form:"search,omitempty" json:"search,omitempty"`
	State  *string `form:"state,omitempty" json:"state,omitempty"`
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetWorkflow(ctx echo.Context) error {
	return w.Handler.GetWorkflow(ctx)
}

func (w *ServerInterfaceWrapper) GetWorkflowSummary(ctx echo.Context) error {
	return w.Handler.GetWorkflowSummary(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "state", ctx.QueryParams(), &params.State)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter state: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	reference, err := bindReference(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, reference)
}

func (w *ServerInterfaceWrapper) UpdateOrderFields(ctx echo.Context) error {
	reference, err := bindReference(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderFields(ctx, reference)
}

func (w *ServerInterfaceWrapper) RemoveOrder(ctx echo.Context) error {
	reference, err := bindReference(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RemoveOrder(ctx, reference)
}

func (w *ServerInterfaceWrapper) AdvanceOrder(ctx echo.Context) error {
	reference, err := bindReference(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AdvanceOrder(ctx, reference)
}

func (w *ServerInterfaceWrapper) RetreatOrder(ctx echo.Context) error {
	reference, err := bindReference(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RetreatOrder(ctx, reference)
}

func bindReference(ctx echo.Context) (string, error) {
	var reference string
	err := runtime.BindStyledParameterWithOptions("simple", "reference", ctx.Param("reference"), &reference,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter reference: %s", err))
	}
	return reference, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
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

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/workflow", wrapper.GetWorkflow)
	router.GET(baseURL+"/api/v1/workflow/summary", wrapper.GetWorkflowSummary)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:reference", wrapper.GetOrder)
	router.PATCH(baseURL+"/api/v1/orders/:reference", wrapper.UpdateOrderFields)
	router.DELETE(baseURL+"/api/v1/orders/:reference", wrapper.RemoveOrder)
	router.POST(baseURL+"/api/v1/orders/:reference/advance", wrapper.AdvanceOrder)
	router.POST(baseURL+"/api/v1/orders/:reference/retreat", wrapper.RetreatOrder)
}
