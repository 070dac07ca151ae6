package kernel

import (
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
)

// ErrTimeWindowIsNotConstructed indicates a zero-value TimeWindow that was not
// created via NewTimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"TimeWindow must be created via NewTimeWindow",
)

// TimeWindow is the half-open interval [start, end) during which a resource is
// committed to an order. End is exclusive: a window ending at 12:00 does not
// overlap one starting at 12:00, so back-to-back trips can share a mixer.
//
// TimeWindow is immutable; the zero value is invalid.
type TimeWindow struct {
	start time.Time
	end   time.Time

	isConstructed bool
}

// NewTimeWindow creates a window from start to end.
// End must be strictly after start.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("window start")
	}
	if end.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("window end")
	}
	if !end.After(start) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("window end",
			fmt.Errorf("%s is not after %s", end.Format(time.RFC3339), start.Format(time.RFC3339)))
	}

	return TimeWindow{
		start:         start,
		end:           end,
		isConstructed: true,
	}, nil
}

// Start returns the inclusive start of the window.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the exclusive end of the window.
func (w TimeWindow) End() time.Time {
	return w.end
}

// Overlaps reports whether two half-open windows intersect.
// Touching endpoints do not count as overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && w.end.After(other.start)
}

// Validate returns an error for the zero-value TimeWindow.
func (w TimeWindow) Validate() error {
	if !w.isConstructed {
		return ErrTimeWindowIsNotConstructed
	}
	return nil
}
