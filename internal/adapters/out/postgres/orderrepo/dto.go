// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The client-facing number carries a unique index because every external
// operation addresses orders by it; status is indexed for the worklist and
// delivery-completion scans.
type OrderDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number string    `gorm:"uniqueIndex"`
	UserID string

	Grade      string
	Quantity   float64
	TotalPrice float64
	Address    string
	Status     string `gorm:"index"`

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
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		Number:              aggregate.Number(),
		UserID:              aggregate.UserID(),
		Grade:               aggregate.Grade(),
		Quantity:            aggregate.Quantity(),
		TotalPrice:          aggregate.TotalPrice(),
		Address:             aggregate.Address(),
		Status:              aggregate.Status().String(),
		DeliveryDate:        aggregate.DeliveryDate(),
		ApprovedAt:          aggregate.ApprovedAt(),
		ProductionDate:      aggregate.ProductionDate(),
		ProductionSlotStart: aggregate.ProductionSlotStart(),
		ProductionSlotEnd:   aggregate.ProductionSlotEnd(),
		DispatchDateTime:    aggregate.DispatchDateTime(),
		ExpectedArrivalTime: aggregate.ExpectedArrivalTime(),
		DeliverySequence:    aggregate.DeliverySequence(),
		TripPlanning:        aggregate.TripPlanning(),
		RescheduleReason:    aggregate.RescheduleReason(),
		LastRescheduledAt:   aggregate.LastRescheduledAt(),
		LatestNotification:  aggregate.LatestNotification(),
	}
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, bypassing the creation rules.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		dto.Grade,
		dto.Quantity,
		dto.TotalPrice,
		dto.Address,
		status,
		dto.UserID,
		dto.DeliveryDate,
		dto.ApprovedAt,
		dto.ProductionDate,
		dto.ProductionSlotStart,
		dto.ProductionSlotEnd,
		dto.DispatchDateTime,
		dto.ExpectedArrivalTime,
		dto.DeliverySequence,
		dto.TripPlanning,
		dto.RescheduleReason,
		dto.LastRescheduledAt,
		dto.LatestNotification,
	)
}
