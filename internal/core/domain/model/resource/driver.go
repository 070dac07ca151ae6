// Package resource contains the shared physical resources a schedule allocates:
// drivers and transit mixers. Both are identified by a natural key (driver
// name, mixer number) compared case-insensitively, and both outlive any single
// assignment — many assignments may reference the same resource over time
// across non-overlapping dispatch windows.
package resource

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver was not created through
// NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is a transit-mixer driver. Identity is the name; the shift label is
// overwritten by every upsert that supplies a non-blank value, so the registry
// always reflects the most recently stated shift.
type Driver struct {
	id    kernel.UUID
	name  string
	shift string

	isConstructed bool
}

// NewDriver creates a driver with the given name and shift.
// The name is trimmed and must not be blank; the shift may be empty.
func NewDriver(id kernel.UUID, name, shift string) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("driver name")
	}

	return &Driver{
		id:            id,
		name:          name,
		shift:         shift,
		isConstructed: true,
	}, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(id kernel.UUID, name, shift string) (*Driver, error) {
	return NewDriver(id, name, shift)
}

// Validate ensures the Driver was created via a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() kernel.UUID { return d.id }
func (d *Driver) Name() string    { return d.name }
func (d *Driver) Shift() string   { return d.shift }

// HasName reports whether the driver's natural key matches the given name,
// ignoring case and surrounding whitespace.
func (d *Driver) HasName(name string) bool {
	return strings.EqualFold(d.name, strings.TrimSpace(name))
}

// ChangeShift overwrites the shift label. Blank values are ignored, so an
// upsert that omits the shift keeps the last stated one.
func (d *Driver) ChangeShift(shift string) {
	if strings.TrimSpace(shift) == "" {
		return
	}
	d.shift = shift
}
