package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
)

// Error is the uniform error body returned by every endpoint.
// ConflictOrderID is set only on resource conflicts and names the order
// already holding the requested driver or mixer.
type Error struct {
	Code            int    `json:"code"`
	Message         string `json:"message"`
	ConflictOrderID string `json:"conflictOrderId,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Grade        string     `json:"grade"`
	Quantity     float64    `json:"quantity"`
	TotalPrice   float64    `json:"totalPrice"`
	Address      string     `json:"address"`
	DeliveryDate *time.Time `json:"deliveryDate,omitempty"`
	UserID       string     `json:"userId,omitempty"`
}

// CreateOrderResponse returns the generated client-facing order number.
type CreateOrderResponse struct {
	OrderNumber string `json:"orderNumber"`
}

// ScheduleProductionRequest is the body of the production scheduling endpoint.
type ScheduleProductionRequest struct {
	ProductionDate      time.Time `json:"productionDate"`
	ProductionSlotStart time.Time `json:"productionSlotStart"`
	ProductionSlotEnd   time.Time `json:"productionSlotEnd"`
	PlantAllocation     string    `json:"plantAllocation"`
	PriorityLevel       string    `json:"priorityLevel"`
}

// ScheduleDispatchRequest is the body of the dispatch scheduling endpoint.
type ScheduleDispatchRequest struct {
	DispatchDateTime    time.Time `json:"dispatchDateTime"`
	ExpectedArrivalTime time.Time `json:"expectedArrivalTime"`
	TripPlanning        string    `json:"tripPlanning"`
	DeliverySequence    string    `json:"deliverySequence"`
}

// AssignVehicleRequest is the body of the vehicle assignment endpoint.
type AssignVehicleRequest struct {
	TransitMixerNumber string `json:"transitMixerNumber"`
	DriverName         string `json:"driverName"`
	DriverShift        string `json:"driverShift"`
	BackupMixerNumber  string `json:"backupMixerNumber,omitempty"`
	BackupDriverName   string `json:"backupDriverName,omitempty"`
}

// RescheduleRequest is the body of the reschedule endpoint. Every field is
// optional; omitted fields keep their current values.
type RescheduleRequest struct {
	ProductionDate      *time.Time `json:"productionDate,omitempty"`
	ProductionSlotStart *time.Time `json:"productionSlotStart,omitempty"`
	ProductionSlotEnd   *time.Time `json:"productionSlotEnd,omitempty"`
	DispatchDateTime    *time.Time `json:"dispatchDateTime,omitempty"`
	ExpectedArrivalTime *time.Time `json:"expectedArrivalTime,omitempty"`

	TripPlanning     *string `json:"tripPlanning,omitempty"`
	DeliverySequence *string `json:"deliverySequence,omitempty"`
	RescheduleReason *string `json:"rescheduleReason,omitempty"`

	PlantAllocation *string `json:"plantAllocation,omitempty"`
	PriorityLevel   *string `json:"priorityLevel,omitempty"`

	DriverName         *string `json:"driverName,omitempty"`
	DriverShift        *string `json:"driverShift,omitempty"`
	TransitMixerNumber *string `json:"transitMixerNumber,omitempty"`
	BackupDriverName   *string `json:"backupDriverName,omitempty"`
	BackupMixerNumber  *string `json:"backupMixerNumber,omitempty"`
}

// OrderResponse is one row of the order list: the order's fields flattened
// together with its assignment and resources.
type OrderResponse struct {
	ID          string  `json:"id"`
	OrderNumber string  `json:"orderNumber"`
	UserID      string  `json:"userId,omitempty"`
	Grade       string  `json:"grade"`
	Quantity    float64 `json:"quantity"`
	TotalPrice  float64 `json:"totalPrice"`
	Address     string  `json:"address"`
	Status      string  `json:"status"`

	DeliveryDate *time.Time `json:"deliveryDate,omitempty"`
	ApprovedAt   *time.Time `json:"approvedAt,omitempty"`

	ProductionDate      *time.Time `json:"productionDate,omitempty"`
	ProductionSlotStart *time.Time `json:"productionSlotStart,omitempty"`
	ProductionSlotEnd   *time.Time `json:"productionSlotEnd,omitempty"`

	DispatchDateTime    *time.Time `json:"dispatchDateTime,omitempty"`
	ExpectedArrivalTime *time.Time `json:"expectedArrivalTime,omitempty"`
	DeliverySequence    string     `json:"deliverySequence,omitempty"`
	TripPlanning        string     `json:"tripPlanning,omitempty"`

	RescheduleReason   string     `json:"rescheduleReason,omitempty"`
	LastRescheduledAt  *time.Time `json:"lastRescheduledAt,omitempty"`
	LatestNotification string     `json:"latestNotification,omitempty"`

	PlantAllocation string `json:"plantAllocation,omitempty"`
	PriorityLevel   string `json:"priorityLevel,omitempty"`

	TransitMixerNumber string `json:"transitMixerNumber,omitempty"`
	DriverName         string `json:"driverName,omitempty"`
	DriverShift        string `json:"driverShift,omitempty"`
	BackupMixerNumber  string `json:"backupMixerNumber,omitempty"`
	BackupDriverName   string `json:"backupDriverName,omitempty"`
}

func toOrderResponse(view queries.OrderView) OrderResponse {
	return OrderResponse{
		ID:                  view.ID.String(),
		OrderNumber:         view.Number,
		UserID:              view.UserID,
		Grade:               view.Grade,
		Quantity:            view.Quantity,
		TotalPrice:          view.TotalPrice,
		Address:             view.Address,
		Status:              view.Status,
		DeliveryDate:        view.DeliveryDate,
		ApprovedAt:          view.ApprovedAt,
		ProductionDate:      view.ProductionDate,
		ProductionSlotStart: view.ProductionSlotStart,
		ProductionSlotEnd:   view.ProductionSlotEnd,
		DispatchDateTime:    view.DispatchDateTime,
		ExpectedArrivalTime: view.ExpectedArrivalTime,
		DeliverySequence:    view.DeliverySequence,
		TripPlanning:        view.TripPlanning,
		RescheduleReason:    view.RescheduleReason,
		LastRescheduledAt:   view.LastRescheduledAt,
		LatestNotification:  view.LatestNotification,
		PlantAllocation:     view.PlantAllocation,
		PriorityLevel:       view.PriorityLevel,
		TransitMixerNumber:  view.MixerNumber,
		DriverName:          view.DriverName,
		DriverShift:         view.DriverShift,
		BackupMixerNumber:   view.BackupMixerNumber,
		BackupDriverName:    view.BackupDriverName,
	}
}

func toOrderResponses(views []queries.OrderView) []OrderResponse {
	responses := make([]OrderResponse, len(views))
	for i, view := range views {
		responses[i] = toOrderResponse(view)
	}
	return responses
}
