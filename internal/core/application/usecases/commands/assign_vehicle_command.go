package commands

import (
	"errors"
	"strings"

	"dispatch/internal/pkg/guard"
)

var (
	ErrAssignVehicleCommandIsNotConstructed = errors.New(
		"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
	)
	ErrMixerNumberIsRequired = errors.New("transit mixer number is required")
	ErrDriverNameIsRequired  = errors.New("driver name is required")
	ErrDriverShiftIsRequired = errors.New("driver shift is required")
)

// AssignVehicleCommand represents a request to allocate a transit mixer and a
// driver to an order's dispatch trip. Backup driver and mixer are optional and
// are recorded without conflict checking.
type AssignVehicleCommand struct { //nolint:recvcheck //using for validation
	orderNumber       string
	mixerNumber       string
	driverName        string
	driverShift       string
	backupMixerNumber string
	backupDriverName  string

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand creates a command to allocate delivery resources.
// Mixer number, driver name, and shift must not be blank; backups may be empty.
func NewAssignVehicleCommand(
	orderNumber string,
	mixerNumber string,
	driverName string,
	driverShift string,
	backupMixerNumber string,
	backupDriverName string,
) (AssignVehicleCommand, error) {
	cmd := AssignVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setMixerNumber(mixerNumber),
		cmd.setDriver(driverName, driverShift),
	); err != nil {
		return AssignVehicleCommand{}, err
	}

	cmd.backupMixerNumber = strings.TrimSpace(backupMixerNumber)
	cmd.backupDriverName = strings.TrimSpace(backupDriverName)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

// OrderNumber returns the client-facing number of the order.
func (c AssignVehicleCommand) OrderNumber() string {
	return c.orderNumber
}

// MixerNumber returns the natural key of the primary transit mixer.
func (c AssignVehicleCommand) MixerNumber() string {
	return c.mixerNumber
}

// DriverName returns the natural key of the primary driver.
func (c AssignVehicleCommand) DriverName() string {
	return c.driverName
}

// DriverShift returns the shift label stated for the primary driver.
func (c AssignVehicleCommand) DriverShift() string {
	return c.driverShift
}

// BackupMixerNumber returns the backup mixer's number, empty when none.
func (c AssignVehicleCommand) BackupMixerNumber() string {
	return c.backupMixerNumber
}

// BackupDriverName returns the backup driver's name, empty when none.
func (c AssignVehicleCommand) BackupDriverName() string {
	return c.backupDriverName
}

func (c *AssignVehicleCommand) setOrderNumber(orderNumber string) error {
	if strings.TrimSpace(orderNumber) == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *AssignVehicleCommand) setMixerNumber(mixerNumber string) error {
	if strings.TrimSpace(mixerNumber) == "" {
		return ErrMixerNumberIsRequired
	}

	c.mixerNumber = mixerNumber
	return nil
}

func (c *AssignVehicleCommand) setDriver(driverName, driverShift string) error {
	if strings.TrimSpace(driverName) == "" {
		return ErrDriverNameIsRequired
	}
	if strings.TrimSpace(driverShift) == "" {
		return ErrDriverShiftIsRequired
	}

	c.driverName = driverName
	c.driverShift = driverShift
	return nil
}
