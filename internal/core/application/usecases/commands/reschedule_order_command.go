package commands

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRescheduleOrderCommandIsNotConstructed = errors.New(
		"RescheduleOrderCommand must be created via NewRescheduleOrderCommand constructor",
	)
	ErrRescheduleIsEmpty = errors.New("reschedule request contains no changes")
)

// RescheduleOrderParams carries the optional field updates of a reschedule
// request. Nil fields are left untouched on the order; blank strings are
// normalized to nil.
type RescheduleOrderParams struct {
	ProductionDate      *time.Time
	ProductionSlotStart *time.Time
	ProductionSlotEnd   *time.Time
	DispatchDateTime    *time.Time
	ExpectedArrivalTime *time.Time

	TripPlanning     *string
	DeliverySequence *string
	RescheduleReason *string

	PlantAllocation *string
	PriorityLevel   *string

	DriverName        *string
	DriverShift       *string
	MixerNumber       *string
	BackupDriverName  *string
	BackupMixerNumber *string
}

// RescheduleOrderCommand represents a partial update of an order's schedule.
// Only the supplied fields change; everything else keeps its current value.
type RescheduleOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	params      RescheduleOrderParams

	guard guard.ConstructorGuard
}

// NewRescheduleOrderCommand creates a command to reschedule the given order.
// The order number must not be blank and at least one field must be supplied.
func NewRescheduleOrderCommand(orderNumber string, params RescheduleOrderParams) (RescheduleOrderCommand, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return RescheduleOrderCommand{}, ErrOrderNumberIsRequired
	}

	params.TripPlanning = normalized(params.TripPlanning)
	params.DeliverySequence = normalized(params.DeliverySequence)
	params.RescheduleReason = normalized(params.RescheduleReason)
	params.PlantAllocation = normalized(params.PlantAllocation)
	params.PriorityLevel = normalized(params.PriorityLevel)
	params.DriverName = normalized(params.DriverName)
	params.DriverShift = normalized(params.DriverShift)
	params.MixerNumber = normalized(params.MixerNumber)
	params.BackupDriverName = normalized(params.BackupDriverName)
	params.BackupMixerNumber = normalized(params.BackupMixerNumber)

	if params == (RescheduleOrderParams{}) {
		return RescheduleOrderCommand{}, ErrRescheduleIsEmpty
	}

	return RescheduleOrderCommand{
		orderNumber: orderNumber,
		params:      params,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RescheduleOrderCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleOrderCommandIsNotConstructed)
}

// OrderNumber returns the client-facing number of the order to reschedule.
func (c RescheduleOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Params returns the normalized field updates.
func (c RescheduleOrderCommand) Params() RescheduleOrderParams {
	return c.params
}

// orderPatch maps the order-level fields of the request onto the aggregate's
// patch type.
func (p RescheduleOrderParams) orderPatch() order.ReschedulePatch {
	return order.ReschedulePatch{
		ProductionDate:      p.ProductionDate,
		ProductionSlotStart: p.ProductionSlotStart,
		ProductionSlotEnd:   p.ProductionSlotEnd,
		DispatchDateTime:    p.DispatchDateTime,
		ExpectedArrivalTime: p.ExpectedArrivalTime,
		TripPlanning:        p.TripPlanning,
		DeliverySequence:    p.DeliverySequence,
		RescheduleReason:    p.RescheduleReason,
	}
}

// touchesAssignment reports whether any supplied field lives on the
// assignment rather than on the order itself.
func (p RescheduleOrderParams) touchesAssignment() bool {
	return p.PlantAllocation != nil ||
		p.PriorityLevel != nil ||
		p.DriverName != nil ||
		p.MixerNumber != nil ||
		p.BackupDriverName != nil ||
		p.BackupMixerNumber != nil
}

// normalized trims a supplied string and drops it entirely when blank, so the
// handler never has to distinguish "absent" from "whitespace".
func normalized(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
