package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrCompleteDeliveriesCommandIsNotConstructed = errors.New(
	"CompleteDeliveriesCommand must be created via NewCompleteDeliveriesCommand constructor",
)

// CompleteDeliveriesCommand represents a sweep over dispatched orders whose
// expected arrival time has passed. It carries no parameters; the background
// job issues one per tick.
type CompleteDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteDeliveriesCommand creates a command to close out finished trips.
func NewCompleteDeliveriesCommand() CompleteDeliveriesCommand {
	return CompleteDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveriesCommandIsNotConstructed)
}
