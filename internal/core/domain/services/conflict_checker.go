package services

import (
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Resource kind labels carried by conflict errors.
const (
	ResourceTransitMixer = "transit mixer"
	ResourceDriver       = "driver"
)

// Booking is the read view of one existing assignment that the conflict scan
// runs over: the owning order, its dispatch window when one is scheduled, and
// the natural keys of the allocated primary resources. Backup resources are
// not part of the view because they are not cross-checked.
type Booking struct {
	OrderID     kernel.UUID
	OrderNumber string

	// Window is nil when the owning order has no dispatch window yet;
	// such bookings cannot conflict and are skipped.
	Window *kernel.TimeWindow

	// MixerNumber and DriverName are empty when the resource is unassigned.
	MixerNumber string
	DriverName  string
}

// ConflictChecker guarantees that no transit mixer or driver is allocated to
// two different orders with overlapping dispatch windows.
//
// The scan is linear over all existing bookings, which is adequate at the
// expected fleet size. Higher volumes would call for an interval index keyed
// by resource identity.
type ConflictChecker struct{}

// NewConflictChecker creates a new ConflictChecker instance.
func NewConflictChecker() ConflictChecker {
	return ConflictChecker{}
}

// Check scans the bookings for an allocation of the candidate mixer or driver
// that overlaps the candidate window.
//
// Rules:
//   - the candidate order's own booking never conflicts with itself
//   - bookings without a dispatch window are skipped
//   - windows are half-open, so touching endpoints do not overlap
//   - mixer numbers and driver names compare case-insensitively on trimmed input
//   - the mixer is checked before the driver; the first hit is returned
//
// A ResourceConflictError names the resource kind and the conflicting order's
// number. A nil return means the allocation is safe against every booking seen.
func (c ConflictChecker) Check(
	candidateOrderID kernel.UUID,
	window kernel.TimeWindow,
	mixerNumber string,
	driverName string,
	bookings []Booking,
) error {
	if err := candidateOrderID.Validate(); err != nil {
		return err
	}
	if err := window.Validate(); err != nil {
		return err
	}

	mixerNumber = strings.TrimSpace(mixerNumber)
	driverName = strings.TrimSpace(driverName)

	for _, booking := range bookings {
		if booking.OrderID.IsEqual(candidateOrderID) {
			continue
		}
		if booking.Window == nil {
			continue
		}
		if !window.Overlaps(*booking.Window) {
			continue
		}

		if booking.MixerNumber != "" && strings.EqualFold(booking.MixerNumber, mixerNumber) {
			return errs.NewResourceConflictError(ResourceTransitMixer, booking.OrderNumber)
		}
		if booking.DriverName != "" && strings.EqualFold(booking.DriverName, driverName) {
			return errs.NewResourceConflictError(ResourceDriver, booking.OrderNumber)
		}
	}

	return nil
}
