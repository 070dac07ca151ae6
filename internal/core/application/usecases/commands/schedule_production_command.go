package commands

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/pkg/guard"
)

var (
	ErrScheduleProductionCommandIsNotConstructed = errors.New(
		"ScheduleProductionCommand must be created via NewScheduleProductionCommand constructor",
	)
	ErrProductionDateIsRequired  = errors.New("production date is required")
	ErrProductionSlotIsRequired  = errors.New("production slot start and end are required")
	ErrPlantAllocationIsRequired = errors.New("plant allocation is required")
	ErrPriorityLevelIsRequired   = errors.New("priority level is required")
)

// ScheduleProductionCommand represents a request to book a production slot for
// an approved order: the production date, the slot bounds, and the plant that
// will produce the batch.
type ScheduleProductionCommand struct { //nolint:recvcheck //using for validation
	orderNumber     string
	productionDate  time.Time
	slotStart       time.Time
	slotEnd         time.Time
	plantAllocation string
	priorityLevel   string

	guard guard.ConstructorGuard
}

// NewScheduleProductionCommand creates a command to schedule production.
// All fields are required; the slot ordering itself is enforced by the order
// aggregate so that partial reschedules share the same rule.
func NewScheduleProductionCommand(
	orderNumber string,
	productionDate time.Time,
	slotStart time.Time,
	slotEnd time.Time,
	plantAllocation string,
	priorityLevel string,
) (ScheduleProductionCommand, error) {
	cmd := ScheduleProductionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setSlot(productionDate, slotStart, slotEnd),
		cmd.setAllocation(plantAllocation, priorityLevel),
	); err != nil {
		return ScheduleProductionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleProductionCommand) Validate() error {
	return c.guard.Validate(ErrScheduleProductionCommandIsNotConstructed)
}

// OrderNumber returns the client-facing number of the order to schedule.
func (c ScheduleProductionCommand) OrderNumber() string {
	return c.orderNumber
}

// ProductionDate returns the date the batch is produced.
func (c ScheduleProductionCommand) ProductionDate() time.Time {
	return c.productionDate
}

// SlotStart returns the start of the production slot.
func (c ScheduleProductionCommand) SlotStart() time.Time {
	return c.slotStart
}

// SlotEnd returns the end of the production slot.
func (c ScheduleProductionCommand) SlotEnd() time.Time {
	return c.slotEnd
}

// PlantAllocation returns the plant producing the batch.
func (c ScheduleProductionCommand) PlantAllocation() string {
	return c.plantAllocation
}

// PriorityLevel returns the priority label of the order.
func (c ScheduleProductionCommand) PriorityLevel() string {
	return c.priorityLevel
}

func (c *ScheduleProductionCommand) setOrderNumber(orderNumber string) error {
	if strings.TrimSpace(orderNumber) == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *ScheduleProductionCommand) setSlot(productionDate, slotStart, slotEnd time.Time) error {
	if productionDate.IsZero() {
		return ErrProductionDateIsRequired
	}
	if slotStart.IsZero() || slotEnd.IsZero() {
		return ErrProductionSlotIsRequired
	}

	c.productionDate = productionDate
	c.slotStart = slotStart
	c.slotEnd = slotEnd
	return nil
}

func (c *ScheduleProductionCommand) setAllocation(plantAllocation, priorityLevel string) error {
	if strings.TrimSpace(plantAllocation) == "" {
		return ErrPlantAllocationIsRequired
	}
	if strings.TrimSpace(priorityLevel) == "" {
		return ErrPriorityLevelIsRequired
	}

	c.plantAllocation = plantAllocation
	c.priorityLevel = priorityLevel
	return nil
}
