package http

import (
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP API for the dispatch service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	approveOrderHandler       commands.ApproveOrderCommandHandler
	rejectOrderHandler        commands.RejectOrderCommandHandler
	deleteOrderHandler        commands.DeleteOrderCommandHandler
	scheduleProductionHandler commands.ScheduleProductionCommandHandler
	scheduleDispatchHandler   commands.ScheduleDispatchCommandHandler
	assignVehicleHandler      commands.AssignVehicleCommandHandler
	rescheduleOrderHandler    commands.RescheduleOrderCommandHandler

	// Query handlers
	getAllOrdersHandler     queries.GetAllOrdersQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	scheduleProductionHandler commands.ScheduleProductionCommandHandler,
	scheduleDispatchHandler commands.ScheduleDispatchCommandHandler,
	assignVehicleHandler commands.AssignVehicleCommandHandler,
	rescheduleOrderHandler commands.RescheduleOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		approveOrderHandler:       approveOrderHandler,
		rejectOrderHandler:        rejectOrderHandler,
		deleteOrderHandler:        deleteOrderHandler,
		scheduleProductionHandler: scheduleProductionHandler,
		scheduleDispatchHandler:   scheduleDispatchHandler,
		assignVehicleHandler:      assignVehicleHandler,
		rescheduleOrderHandler:    rescheduleOrderHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getPendingOrdersHandler:   getPendingOrdersHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.DELETE("/orders/:orderNumber", s.DeleteOrder)
	api.PUT("/orders/:orderNumber/approve", s.ApproveOrder)
	api.PUT("/orders/:orderNumber/reject", s.RejectOrder)
	api.PUT("/orders/:orderNumber/schedule/production", s.ScheduleProduction)
	api.PUT("/orders/:orderNumber/schedule/dispatch", s.ScheduleDispatch)
	api.PUT("/orders/:orderNumber/schedule/vehicle", s.AssignVehicle)
	api.PUT("/orders/:orderNumber/reschedule", s.RescheduleOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - registers a new order and
// returns its generated order number.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var deliveryDate time.Time
	if request.DeliveryDate != nil {
		deliveryDate = *request.DeliveryDate
	}

	number := order.NewNumber()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		number,
		request.Grade,
		request.Quantity,
		request.TotalPrice,
		request.Address,
		deliveryDate,
		request.UserID,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderNumber: number})
}

// GetOrders handles GET /api/v1/orders - retrieves all orders with their
// schedules and assigned resources.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	views, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(views))
}

// GetPendingOrders handles GET /api/v1/orders/pending - retrieves orders
// awaiting approval.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	views, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve pending orders")
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(views))
}

// ApproveOrder handles PUT /api/v1/orders/:orderNumber/approve.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	cmd, err := commands.NewApproveOrderCommand(ctx.Param("orderNumber"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number: " + err.Error(),
		})
	}

	if handleErr := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to approve order")
	}

	return ctx.NoContent(http.StatusOK)
}

// RejectOrder handles PUT /api/v1/orders/:orderNumber/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	cmd, err := commands.NewRejectOrderCommand(ctx.Param("orderNumber"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number: " + err.Error(),
		})
	}

	if handleErr := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to reject order")
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderNumber - removes the order
// together with its assignment.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(ctx.Param("orderNumber"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number: " + err.Error(),
		})
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to delete order")
	}

	return ctx.NoContent(http.StatusOK)
}

// ScheduleProduction handles PUT /api/v1/orders/:orderNumber/schedule/production.
func (s *Server) ScheduleProduction(ctx echo.Context) error {
	var request ScheduleProductionRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewScheduleProductionCommand(
		ctx.Param("orderNumber"),
		request.ProductionDate,
		request.ProductionSlotStart,
		request.ProductionSlotEnd,
		request.PlantAllocation,
		request.PriorityLevel,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid production schedule: " + err.Error(),
		})
	}

	if handleErr := s.scheduleProductionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to schedule production")
	}

	return ctx.NoContent(http.StatusOK)
}

// ScheduleDispatch handles PUT /api/v1/orders/:orderNumber/schedule/dispatch.
func (s *Server) ScheduleDispatch(ctx echo.Context) error {
	var request ScheduleDispatchRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewScheduleDispatchCommand(
		ctx.Param("orderNumber"),
		request.DispatchDateTime,
		request.ExpectedArrivalTime,
		request.TripPlanning,
		request.DeliverySequence,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid dispatch schedule: " + err.Error(),
		})
	}

	if handleErr := s.scheduleDispatchHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to schedule dispatch")
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignVehicle handles PUT /api/v1/orders/:orderNumber/schedule/vehicle -
// books a transit mixer and driver for the order's dispatch window.
func (s *Server) AssignVehicle(ctx echo.Context) error {
	var request AssignVehicleRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAssignVehicleCommand(
		ctx.Param("orderNumber"),
		request.TransitMixerNumber,
		request.DriverName,
		request.DriverShift,
		request.BackupMixerNumber,
		request.BackupDriverName,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid vehicle assignment: " + err.Error(),
		})
	}

	if handleErr := s.assignVehicleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to assign vehicle")
	}

	return ctx.NoContent(http.StatusOK)
}

// RescheduleOrder handles PUT /api/v1/orders/:orderNumber/reschedule -
// applies a partial update to the order's schedule and resources.
func (s *Server) RescheduleOrder(ctx echo.Context) error {
	var request RescheduleRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRescheduleOrderCommand(ctx.Param("orderNumber"), commands.RescheduleOrderParams{
		ProductionDate:      request.ProductionDate,
		ProductionSlotStart: request.ProductionSlotStart,
		ProductionSlotEnd:   request.ProductionSlotEnd,
		DispatchDateTime:    request.DispatchDateTime,
		ExpectedArrivalTime: request.ExpectedArrivalTime,
		TripPlanning:        request.TripPlanning,
		DeliverySequence:    request.DeliverySequence,
		RescheduleReason:    request.RescheduleReason,
		PlantAllocation:     request.PlantAllocation,
		PriorityLevel:       request.PriorityLevel,
		DriverName:          request.DriverName,
		DriverShift:         request.DriverShift,
		MixerNumber:         request.TransitMixerNumber,
		BackupDriverName:    request.BackupDriverName,
		BackupMixerNumber:   request.BackupMixerNumber,
	})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid reschedule request: " + err.Error(),
		})
	}

	if handleErr := s.rescheduleOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to reschedule order")
	}

	return ctx.NoContent(http.StatusOK)
}

// writeError maps use case errors onto HTTP responses. Conflicts carry the
// number of the order already holding the resource so the caller can resolve
// the clash.
func (s *Server) writeError(ctx echo.Context, err error, fallback string) error {
	var conflictErr *errs.ResourceConflictError
	if errors.As(err, &conflictErr) {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:            http.StatusBadRequest,
			Message:         err.Error(),
			ConflictOrderID: conflictErr.ConflictingOrderNumber,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrResourceLockBusy):
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
