package commands

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove an order and its
// assignment. The referenced drivers and mixers stay in the registry.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete the order with the given
// number. The number must not be blank.
func NewDeleteOrderCommand(orderNumber string) (DeleteOrderCommand, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return DeleteOrderCommand{}, ErrOrderNumberIsRequired
	}

	return DeleteOrderCommand{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderNumber returns the client-facing number of the order to delete.
func (c DeleteOrderCommand) OrderNumber() string {
	return c.orderNumber
}
