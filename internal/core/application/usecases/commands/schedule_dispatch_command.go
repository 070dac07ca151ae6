package commands

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/pkg/guard"
)

var (
	ErrScheduleDispatchCommandIsNotConstructed = errors.New(
		"ScheduleDispatchCommand must be created via NewScheduleDispatchCommand constructor",
	)
	ErrDispatchTimeIsRequired     = errors.New("dispatch time is required")
	ErrArrivalTimeIsRequired      = errors.New("expected arrival time is required")
	ErrTripPlanningIsRequired     = errors.New("trip planning is required")
	ErrDeliverySequenceIsRequired = errors.New("delivery sequence is required")
)

// ScheduleDispatchCommand represents a request to put an order on the road:
// the dispatch window that the conflict resolution runs against, plus the trip
// planning notes for the dispatch team.
type ScheduleDispatchCommand struct { //nolint:recvcheck //using for validation
	orderNumber      string
	dispatchAt       time.Time
	arrivalAt        time.Time
	tripPlanning     string
	deliverySequence string

	guard guard.ConstructorGuard
}

// NewScheduleDispatchCommand creates a command to schedule dispatch.
// All fields are required; the window ordering is enforced by the order
// aggregate.
func NewScheduleDispatchCommand(
	orderNumber string,
	dispatchAt time.Time,
	arrivalAt time.Time,
	tripPlanning string,
	deliverySequence string,
) (ScheduleDispatchCommand, error) {
	cmd := ScheduleDispatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setWindow(dispatchAt, arrivalAt),
		cmd.setTrip(tripPlanning, deliverySequence),
	); err != nil {
		return ScheduleDispatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleDispatchCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDispatchCommandIsNotConstructed)
}

// OrderNumber returns the client-facing number of the order to dispatch.
func (c ScheduleDispatchCommand) OrderNumber() string {
	return c.orderNumber
}

// DispatchAt returns the moment the mixer leaves the plant.
func (c ScheduleDispatchCommand) DispatchAt() time.Time {
	return c.dispatchAt
}

// ArrivalAt returns the expected arrival at the site.
func (c ScheduleDispatchCommand) ArrivalAt() time.Time {
	return c.arrivalAt
}

// TripPlanning returns the trip planning notes.
func (c ScheduleDispatchCommand) TripPlanning() string {
	return c.tripPlanning
}

// DeliverySequence returns the position of this trip in the day's sequence.
func (c ScheduleDispatchCommand) DeliverySequence() string {
	return c.deliverySequence
}

func (c *ScheduleDispatchCommand) setOrderNumber(orderNumber string) error {
	if strings.TrimSpace(orderNumber) == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *ScheduleDispatchCommand) setWindow(dispatchAt, arrivalAt time.Time) error {
	if dispatchAt.IsZero() {
		return ErrDispatchTimeIsRequired
	}
	if arrivalAt.IsZero() {
		return ErrArrivalTimeIsRequired
	}

	c.dispatchAt = dispatchAt
	c.arrivalAt = arrivalAt
	return nil
}

func (c *ScheduleDispatchCommand) setTrip(tripPlanning, deliverySequence string) error {
	if strings.TrimSpace(tripPlanning) == "" {
		return ErrTripPlanningIsRequired
	}
	if strings.TrimSpace(deliverySequence) == "" {
		return ErrDeliverySequenceIsRequired
	}

	c.tripPlanning = tripPlanning
	c.deliverySequence = deliverySequence
	return nil
}
