// Package queries contains the read side of the application: handlers that
// bypass the aggregates and read flattened rows straight from the database.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order with its schedule and allocated
// resources in one flat row per order.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a parameterless query for the full order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderView is one flattened row of the order list: the order's own fields
// joined with its assignment and the natural keys of the allocated resources.
// Pointer fields are nil when the corresponding scheduling step has not
// happened yet.
type OrderView struct {
	ID         kernel.UUID
	Number     string
	UserID     string
	Grade      string
	Quantity   float64
	TotalPrice float64
	Address    string
	Status     string

	DeliveryDate *time.Time
	ApprovedAt   *time.Time

	ProductionDate      *time.Time
	ProductionSlotStart *time.Time
	ProductionSlotEnd   *time.Time

	DispatchDateTime    *time.Time
	ExpectedArrivalTime *time.Time
	DeliverySequence    string
	TripPlanning        string

	RescheduleReason   string
	LastRescheduledAt  *time.Time
	LatestNotification string

	PlantAllocation string
	PriorityLevel   string

	MixerNumber       string
	DriverName        string
	DriverShift       string
	BackupMixerNumber string
	BackupDriverName  string
}
