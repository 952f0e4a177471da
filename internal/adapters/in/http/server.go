package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the API exposes.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	UpdateOrderFields  commands.UpdateOrderFieldsCommandHandler
	AdvanceOrder       commands.AdvanceOrderCommandHandler
	RetreatOrder       commands.RetreatOrderCommandHandler
	RemoveOrder        commands.RemoveOrderCommandHandler
	GetOrder           queries.GetOrderQueryHandler
	ListOrders         queries.ListOrdersQueryHandler
	GetWorkflow        queries.GetWorkflowQueryHandler
	GetWorkflowSummary queries.GetWorkflowSummaryQueryHandler
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	metrics  *Metrics
	logger   *slog.Logger
}

// NewServer creates a Server. metrics may be nil.
func NewServer(handlers Handlers, metrics *Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  metrics,
		logger:   logger.With("component", "http"),
	}
}

var _ ServerInterface = (*Server)(nil)

// GetWorkflow handles GET /api/v1/workflow - the ordered state catalog.
func (s *Server) GetWorkflow(ctx echo.Context) error {
	states, err := s.handlers.GetWorkflow.Handle(ctx.Request().Context(), queries.NewGetWorkflowQuery())
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	response := make([]WorkflowState, len(states))
	for i, st := range states {
		response[i] = toWorkflowState(st)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetWorkflowSummary handles GET /api/v1/workflow/summary - order counts per state.
func (s *Server) GetWorkflowSummary(ctx echo.Context) error {
	summary, err := s.handlers.GetWorkflowSummary.Handle(ctx.Request().Context(), queries.NewGetWorkflowSummaryQuery())
	if err != nil {
		return writeError(ctx, s.logger, err)
	}
	return ctx.JSON(http.StatusOK, toWorkflowSummary(summary))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	var search string
	if params.Search != nil {
		search = *params.Search
	}

	state := order.Unknown
	if params.State != nil && *params.State != "" {
		parsed, err := order.ParseState(*params.State)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		state = parsed
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery(search, state))
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = toOrderSummary(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.LineItemInput, len(body.LineItems))
	for i, li := range body.LineItems {
		items[i] = commands.LineItemInput(li)
	}

	texts, err := fieldTexts(body.Fields)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	fields := make(map[order.Field]string, len(texts))
	for name, text := range texts {
		f, parseErr := order.ParseField(name)
		if parseErr != nil {
			return badRequest(ctx, parseErr.Error())
		}
		fields[f] = text
	}

	cmd, err := commands.NewCreateOrderCommand(body.Reference, body.Supplier, items, fields)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, cmd.Reference())
}

// GetOrder handles GET /api/v1/orders/{reference}.
func (s *Server) GetOrder(ctx echo.Context, reference string) error {
	return s.respondWithOrder(ctx, http.StatusOK, reference)
}

// UpdateOrderFields handles PATCH /api/v1/orders/{reference}.
func (s *Server) UpdateOrderFields(ctx echo.Context, reference string) error {
	// BindBody only: Bind would copy the path parameter into the map.
	var body map[string]any
	if err := (&echo.DefaultBinder{}).BindBody(ctx, &body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	texts, err := fieldTexts(body)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateOrderFieldsCommand(reference, texts)
	if err != nil {
		return badRequest(ctx, "Invalid field update: "+err.Error())
	}

	if err = s.handlers.UpdateOrderFields.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, s.logger, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, cmd.Reference())
}

// RemoveOrder handles DELETE /api/v1/orders/{reference}.
func (s *Server) RemoveOrder(ctx echo.Context, reference string) error {
	cmd, err := commands.NewRemoveOrderCommand(reference)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.RemoveOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/v1/orders/{reference}/advance.
//
// The gate is enforced unless the body sets force; a blocked advance answers
// 409 with the missing fields.
func (s *Server) AdvanceOrder(ctx echo.Context, reference string) error {
	var body AdvanceRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdvanceOrderCommand(reference, body.Comment, !body.Force)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrTransitionIsBlocked) {
			s.observeTransition("advance", "blocked")
			return ctx.JSON(http.StatusConflict, Error{
				Code:          http.StatusConflict,
				Message:       "order cannot advance until the required fields are filled",
				MissingFields: fieldNames(result.MissingFields),
			})
		}
		s.observeTransition("advance", "failed")
		return writeError(ctx, s.logger, err)
	}

	s.observeTransition("advance", transitionOutcome(result))
	return ctx.JSON(http.StatusOK, toTransition(result))
}

// RetreatOrder handles POST /api/v1/orders/{reference}/retreat.
func (s *Server) RetreatOrder(ctx echo.Context, reference string) error {
	var body RetreatRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRetreatOrderCommand(reference, body.Comment)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.handlers.RetreatOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.observeTransition("retreat", "failed")
		return writeError(ctx, s.logger, err)
	}

	s.observeTransition("retreat", transitionOutcome(result))
	return ctx.JSON(http.StatusOK, toTransition(result))
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, reference string) error {
	query, err := queries.NewGetOrderQuery(reference)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	details, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, s.logger, err)
	}

	return ctx.JSON(status, toOrderDetails(details))
}

func (s *Server) observeTransition(direction, result string) {
	if s.metrics != nil {
		s.metrics.ObserveTransition(direction, result)
	}
}

func transitionOutcome(r commands.TransitionResult) string {
	if r.Moved {
		return "moved"
	}
	return "unchanged"
}
