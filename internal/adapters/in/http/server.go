// Package http provides the inbound HTTP adapter. It exposes the ordering
// use cases over a JSON API served by echo, translating between wire
// bodies and commands/queries and mapping domain errors to status codes.
package http

import (
	"errors"
	"net/http"

	"campuseats/internal/core/application/usecases/commands"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/menu"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerCustomerHandler commands.RegisterCustomerCommandHandler
	registerCourierHandler  commands.RegisterCourierCommandHandler
	placeOrderHandler       commands.PlaceOrderCommandHandler
	addExtraHandler         commands.AddExtraCommandHandler
	changeAddressHandler    commands.ChangeAddressCommandHandler
	payOrderHandler         commands.PayOrderCommandHandler
	changeStateHandler      commands.ChangeOrderStateCommandHandler

	// Query handlers
	kitchenQueueHandler    queries.GetKitchenQueueQueryHandler
	readyDeliveriesHandler queries.GetReadyDeliveriesQueryHandler
	orderDetailsHandler    queries.GetOrderDetailsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	registerCourierHandler commands.RegisterCourierCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	addExtraHandler commands.AddExtraCommandHandler,
	changeAddressHandler commands.ChangeAddressCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	changeStateHandler commands.ChangeOrderStateCommandHandler,
	kitchenQueueHandler queries.GetKitchenQueueQueryHandler,
	readyDeliveriesHandler queries.GetReadyDeliveriesQueryHandler,
	orderDetailsHandler queries.GetOrderDetailsQueryHandler,
) *Server {
	return &Server{
		registerCustomerHandler: registerCustomerHandler,
		registerCourierHandler:  registerCourierHandler,
		placeOrderHandler:       placeOrderHandler,
		addExtraHandler:         addExtraHandler,
		changeAddressHandler:    changeAddressHandler,
		payOrderHandler:         payOrderHandler,
		changeStateHandler:      changeStateHandler,
		kitchenQueueHandler:     kitchenQueueHandler,
		readyDeliveriesHandler:  readyDeliveriesHandler,
		orderDetailsHandler:     orderDetailsHandler,
	}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.RegisterCustomer)
	api.POST("/couriers", s.RegisterCourier)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:number", s.GetOrder)
	api.POST("/orders/:number/extras", s.AddExtra)
	api.PUT("/orders/:number/address", s.ChangeAddress)
	api.POST("/orders/:number/payment", s.PayOrder)
	api.POST("/orders/:number/state", s.ChangeState)

	api.GET("/kitchen/queue", s.GetKitchenQueue)
	api.GET("/deliveries/ready", s.GetReadyDeliveries)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var body RegisterCustomerRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterCustomerCommand(body.Name, body.DeliveryAddress, body.StudentNumber)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	id, err := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// RegisterCourier handles POST /api/v1/couriers.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var body RegisterCourierRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterCourierCommand(body.Name, body.Vehicle, body.Zone)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	id, err := s.registerCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body PlaceOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	mode, err := order.DeliveryModeFromString(body.Mode)
	if err != nil {
		return badRequest(ctx, "Invalid delivery mode: "+body.Mode)
	}

	lines := make([]commands.OrderLine, 0, len(body.Lines))
	for _, line := range body.Lines {
		price, err := kernel.NewMoneyFromFloat(line.UnitPrice)
		if err != nil {
			return badRequest(ctx, "Invalid unit price for "+line.Name)
		}
		lines = append(lines, commands.OrderLine{
			Name:        line.Name,
			Description: line.Description,
			UnitPrice:   price,
			Category:    line.Category,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(customerID, lines, body.PartySize, mode, body.Comment)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	number, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{Number: number})
}

// GetOrder handles GET /api/v1/orders/:number.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderDetailsQuery(ctx.Param("number"))
	if err != nil {
		return badRequest(ctx, "Invalid order number")
	}

	details, err := s.orderDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	lines := make([]OrderLineView, 0, len(details.Lines))
	for _, line := range details.Lines {
		lines = append(lines, OrderLineView{Name: line.Name, Description: line.Description, Price: line.Price})
	}

	return ctx.JSON(http.StatusOK, OrderDetailsResponse{
		Number:                details.Number,
		Status:                details.Status,
		Mode:                  details.Mode,
		Customer:              details.Customer,
		Address:               details.Address,
		PartySize:             details.PartySize,
		Lines:                 lines,
		TotalBeforeReductions: details.TotalBeforeReductions,
		AppliedReductions:     details.AppliedReductions,
		Total:                 details.Total,
		Paid:                  details.Paid,
		Courier:               details.Courier,
		Comments:              details.Comments,
		CreatedAt:             details.CreatedAt,
		DeliveredAt:           details.DeliveredAt,
		Events:                details.Events,
	})
}

// AddExtra handles POST /api/v1/orders/:number/extras.
func (s *Server) AddExtra(ctx echo.Context) error {
	var body AddExtraRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoneyFromFloat(body.Price)
	if err != nil {
		return badRequest(ctx, "Invalid extra price")
	}

	kind, err := menu.ExtraKindFromString(body.Kind)
	if err != nil {
		return badRequest(ctx, "Invalid extra kind: "+body.Kind)
	}

	quantity := body.Quantity
	if quantity == 0 {
		quantity = 1
	}

	cmd, err := commands.NewAddExtraCommand(ctx.Param("number"), body.Name, price, kind, quantity)
	if err != nil {
		return badRequest(ctx, "Invalid extra data: "+err.Error())
	}

	if err = s.addExtraHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeAddress handles PUT /api/v1/orders/:number/address.
func (s *Server) ChangeAddress(ctx echo.Context) error {
	var body ChangeAddressRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeAddressCommand(ctx.Param("number"), body.Address)
	if err != nil {
		return badRequest(ctx, "Invalid address data: "+err.Error())
	}

	if err = s.changeAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PayOrder handles POST /api/v1/orders/:number/payment.
func (s *Server) PayOrder(ctx echo.Context) error {
	var body PayOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	number := ctx.Param("number")

	var (
		cmd commands.PayOrderCommand
		err error
	)
	switch commands.PaymentMethod(body.Method) {
	case commands.MethodCard:
		cmd, err = commands.NewCardPayOrderCommand(number, body.CardNumber, body.CardExpiry, body.CardCVV)
	case commands.MethodCash:
		var tendered kernel.Money
		tendered, err = kernel.NewMoneyFromFloat(body.Tendered)
		if err == nil {
			cmd, err = commands.NewCashPayOrderCommand(number, tendered)
		}
	case commands.MethodAccount:
		cmd, err = commands.NewAccountPayOrderCommand(number)
	default:
		return badRequest(ctx, "Invalid payment method: "+body.Method)
	}
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if err = s.payOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeState handles POST /api/v1/orders/:number/state.
func (s *Server) ChangeState(ctx echo.Context) error {
	var body ChangeStateRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target state: "+body.Target)
	}

	cmd, err := commands.NewChangeOrderStateCommand(ctx.Param("number"), target)
	if err != nil {
		return badRequest(ctx, "Invalid state data: "+err.Error())
	}

	if err = s.changeStateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetKitchenQueue handles GET /api/v1/kitchen/queue.
func (s *Server) GetKitchenQueue(ctx echo.Context) error {
	queue, err := s.kitchenQueueHandler.Handle(ctx.Request().Context(), queries.NewGetKitchenQueueQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]KitchenQueueEntry, 0, len(queue))
	for _, entry := range queue {
		response = append(response, KitchenQueueEntry{
			Number:    entry.Number,
			Status:    entry.Status,
			Customer:  entry.Customer,
			ItemName:  entry.ItemName,
			PartySize: entry.PartySize,
			Paid:      entry.Paid,
			Comments:  entry.Comments,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetReadyDeliveries handles GET /api/v1/deliveries/ready.
func (s *Server) GetReadyDeliveries(ctx echo.Context) error {
	deliveries, err := s.readyDeliveriesHandler.Handle(ctx.Request().Context(), queries.NewGetReadyDeliveriesQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ReadyDeliveryEntry, 0, len(deliveries))
	for _, entry := range deliveries {
		response = append(response, ReadyDeliveryEntry{
			Number:   entry.Number,
			Customer: entry.Customer,
			Address:  entry.Address,
			Total:    entry.Total,
			Assigned: entry.Assigned,
			Courier:  entry.Courier,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain failures to HTTP status codes: unknown aggregates
// to 404, rejected business operations to 409, validation complaints to
// 400, everything else to 500.
func domainError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrPaymentRequired),
		errors.Is(err, order.ErrCourierRequired),
		errors.Is(err, order.ErrAlreadyPaid),
		errors.Is(err, order.ErrNoPaymentMethod),
		errors.Is(err, order.ErrOrderLocked),
		errors.Is(err, order.ErrPaymentFailed):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
