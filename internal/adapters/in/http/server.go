// Package http exposes the marketplace over a Telegram WebApp-facing REST
// API. Every /api route is authenticated by verifying the signed initData
// payload and resolving it to a registered account; /internal routes serve
// the bot onboarding flow.
package http

import (
	"net/http"
	"strconv"

	"ustabar/internal/core/application/usecases/commands"
	"ustabar/internal/core/application/usecases/queries"
	"ustabar/internal/core/domain/model/account"
	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/initdata"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultFeedBatchSize = 20

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	verifier *initdata.Verifier

	// Command handlers
	registerAccountHandler   commands.RegisterAccountCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	completeOrderHandler     commands.CompleteOrderCommandHandler
	acceptApplicationHandler commands.AcceptApplicationCommandHandler
	applyToOrderHandler      commands.ApplyToOrderCommandHandler
	skipOrderHandler         commands.SkipOrderCommandHandler

	// Query handlers
	workerFeedHandler          queries.GetWorkerFeedQueryHandler
	customerOrdersHandler      queries.GetCustomerOrdersQueryHandler
	orderApplicationsHandler   queries.GetOrderApplicationsQueryHandler
	accountByTelegramIDHandler queries.GetAccountByTelegramIDQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	verifier *initdata.Verifier,
	registerAccountHandler commands.RegisterAccountCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	acceptApplicationHandler commands.AcceptApplicationCommandHandler,
	applyToOrderHandler commands.ApplyToOrderCommandHandler,
	skipOrderHandler commands.SkipOrderCommandHandler,
	workerFeedHandler queries.GetWorkerFeedQueryHandler,
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	orderApplicationsHandler queries.GetOrderApplicationsQueryHandler,
	accountByTelegramIDHandler queries.GetAccountByTelegramIDQueryHandler,
) *Server {
	return &Server{
		verifier:                   verifier,
		registerAccountHandler:     registerAccountHandler,
		createOrderHandler:         createOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		completeOrderHandler:       completeOrderHandler,
		acceptApplicationHandler:   acceptApplicationHandler,
		applyToOrderHandler:        applyToOrderHandler,
		skipOrderHandler:           skipOrderHandler,
		workerFeedHandler:          workerFeedHandler,
		customerOrdersHandler:      customerOrdersHandler,
		orderApplicationsHandler:   orderApplicationsHandler,
		accountByTelegramIDHandler: accountByTelegramIDHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	internal := e.Group("/internal/v1")
	internal.POST("/accounts", s.RegisterAccount)

	api := e.Group("/api/v1", s.authenticate)
	api.GET("/accounts/me", s.GetMe)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderID/applications", s.GetOrderApplications)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/complete", s.CompleteOrder)
	api.POST("/orders/:orderID/accept", s.AcceptApplication)
	api.POST("/orders/:orderID/apply", s.ApplyToOrder)
	api.POST("/orders/:orderID/skip", s.SkipOrder)
	api.GET("/feed", s.GetWorkerFeed)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterAccount handles POST /internal/v1/accounts - the bot onboarding
// path, the only place accounts are created or refreshed.
func (s *Server) RegisterAccount(ctx echo.Context) error {
	var req RegisterAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return badRequest(ctx, "Invalid account data: "+err.Error())
	}

	cmd, err := commands.NewRegisterAccountCommand(
		req.TgID, req.Username, req.Name, role, req.ServiceCategory)
	if err != nil {
		return badRequest(ctx, "Invalid account data: "+err.Error())
	}

	if handleErr := s.registerAccountHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMe handles GET /api/v1/accounts/me - returns the resolved account.
func (s *Server) GetMe(ctx echo.Context) error {
	me := currentAccount(ctx)

	return ctx.JSON(http.StatusOK, AccountResponse{
		ID:              me.ID.String(),
		TgID:            me.TgID,
		Username:        me.Username,
		Name:            me.Name,
		Role:            me.Role,
		ServiceCategory: me.ServiceCategory,
	})
}

// CreateOrder handles POST /api/v1/orders - publishes a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		currentAccount(ctx).ID,
		req.ServiceCategory,
		req.Price,
		req.Duration,
		req.Comment,
		req.Address,
		req.Photos,
		req.Location.Latitude,
		req.Location.Longitude,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - the requester's own orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(currentAccount(ctx).ID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.customerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, item := range orders {
		response[i] = orderResponseFrom(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderApplications handles GET /api/v1/orders/:orderID/applications.
func (s *Server) GetOrderApplications(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderApplicationsQuery(orderID, currentAccount(ctx).ID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	applications, err := s.orderApplicationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	response := make([]ApplicationResponse, len(applications))
	for i, item := range applications {
		response[i] = applicationResponseFrom(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, currentAccount(ctx).ID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:orderID/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, currentAccount(ctx).ID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptApplication handles POST /api/v1/orders/:orderID/accept.
func (s *Server) AcceptApplication(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req AcceptApplicationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	applicationID, err := kernel.UUIDFromString(req.ApplicationID)
	if err != nil {
		return badRequest(ctx, "Invalid application ID")
	}

	cmd, err := commands.NewAcceptApplicationCommand(orderID, applicationID, currentAccount(ctx).ID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.acceptApplicationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return handlerError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyToOrder handles POST /api/v1/orders/:orderID/apply - a worker's
// application. A repeated decision for the same order is reported as
// already_decided, not as an error.
func (s *Server) ApplyToOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req ApplyToOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApplyToOrderCommand(
		kernel.NewUUID(), orderID, currentAccount(ctx).ID, req.ProposedPrice, req.Message)
	if err != nil {
		return badRequest(ctx, "Invalid application data: "+err.Error())
	}

	outcome, err := s.applyToOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, decisionResponseFrom(outcome))
}

// SkipOrder handles POST /api/v1/orders/:orderID/skip - hides the order from
// this worker's feed permanently.
func (s *Server) SkipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewSkipOrderCommand(kernel.NewUUID(), orderID, currentAccount(ctx).ID)
	if err != nil {
		return badRequest(ctx, "Invalid skip data: "+err.Error())
	}

	outcome, err := s.skipOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, decisionResponseFrom(outcome))
}

// GetWorkerFeed handles GET /api/v1/feed - unseen Searching orders in the
// worker's category, newest first. batch_size caps the page.
func (s *Server) GetWorkerFeed(ctx echo.Context) error {
	batchSize := defaultFeedBatchSize
	if raw := ctx.QueryParam("batch_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid batch_size")
		}
		batchSize = parsed
	}

	query, err := queries.NewGetWorkerFeedQuery(currentAccount(ctx).ID, batchSize)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	feed, err := s.workerFeedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	response := make([]FeedItemResponse, len(feed))
	for i, item := range feed {
		response[i] = feedItemResponseFrom(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

func decisionResponseFrom(outcome commands.DecisionOutcome) DecisionResponse {
	if outcome == commands.DecisionAlreadyMade {
		return DecisionResponse{Result: decisionAlreadyDecided}
	}
	return DecisionResponse{Result: decisionRecorded}
}
