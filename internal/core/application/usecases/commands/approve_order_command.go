package commands

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand represents an admin decision to accept a pending order.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber string

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates a command to approve the order with the given
// number. The number must not be blank.
func NewApproveOrderCommand(orderNumber string) (ApproveOrderCommand, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return ApproveOrderCommand{}, ErrOrderNumberIsRequired
	}

	return ApproveOrderCommand{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderNumber returns the client-facing number of the order to approve.
func (c ApproveOrderCommand) OrderNumber() string {
	return c.orderNumber
}
