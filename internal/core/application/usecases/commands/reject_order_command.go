package commands

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents an admin decision to decline a pending order.
// Rejection is terminal: no scheduling operation revives a rejected order.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject the order with the given
// number. The number must not be blank.
func NewRejectOrderCommand(orderNumber string) (RejectOrderCommand, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return RejectOrderCommand{}, ErrOrderNumberIsRequired
	}

	return RejectOrderCommand{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderNumber returns the client-facing number of the order to reject.
func (c RejectOrderCommand) OrderNumber() string {
	return c.orderNumber
}
