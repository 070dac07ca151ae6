package commands

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
	ErrGradeIsRequired       = errors.New("concrete grade is required")
	ErrAddressIsRequired     = errors.New("delivery address is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
	ErrTotalPriceIsInvalid   = errors.New("total price must not be negative")
)

// CreateOrderCommand represents a request to register a new concrete-delivery
// order. Encapsulates the order details the customer submits: concrete grade,
// quantity, price, delivery address, and an optional requested delivery date.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, order.NewNumber(), "M30", 12.5, 48000, "Plot 14, Ring Road", deliveryDate, "user-42")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	number       string
	grade        string
	quantity     float64
	totalPrice   float64
	address      string
	deliveryDate time.Time
	userID       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the ID is valid, number, grade, and address are not blank,
// quantity is positive, and total price is not negative. The delivery date may
// be zero when the customer has not picked one, and userID may be empty for
// orders entered by the back office.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	number string,
	grade string,
	quantity float64,
	totalPrice float64,
	address string,
	deliveryDate time.Time,
	userID string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setNumber(number),
		orderCommand.setGrade(grade),
		orderCommand.setQuantity(quantity),
		orderCommand.setTotalPrice(totalPrice),
		orderCommand.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.deliveryDate = deliveryDate
	orderCommand.userID = userID

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the internal identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Number returns the client-facing order number.
func (c CreateOrderCommand) Number() string {
	return c.number
}

// Grade returns the requested concrete grade.
func (c CreateOrderCommand) Grade() string {
	return c.grade
}

// Quantity returns the ordered volume in cubic meters.
func (c CreateOrderCommand) Quantity() float64 {
	return c.quantity
}

// TotalPrice returns the quoted total price.
func (c CreateOrderCommand) TotalPrice() float64 {
	return c.totalPrice
}

// Address returns the delivery destination address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// DeliveryDate returns the requested delivery date, zero when not chosen.
func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// UserID returns the identifier of the customer who placed the order.
func (c CreateOrderCommand) UserID() string {
	return c.userID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return ErrOrderNumberIsRequired
	}

	c.number = number
	return nil
}

func (c *CreateOrderCommand) setGrade(grade string) error {
	if strings.TrimSpace(grade) == "" {
		return ErrGradeIsRequired
	}

	c.grade = grade
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return ErrTotalPriceIsInvalid
	}

	c.totalPrice = totalPrice
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
