package resource

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrTransitMixerIsNotConstructed is returned when a TransitMixer was not
// created through NewTransitMixer or RestoreTransitMixer.
var ErrTransitMixerIsNotConstructed = errors.New(
	"TransitMixer must be created via NewTransitMixer constructor",
)

// TransitMixer is a concrete transit-mixer truck. Identity is the mixer
// number; the record has no other mutable attributes.
type TransitMixer struct {
	id     kernel.UUID
	number string

	isConstructed bool
}

// NewTransitMixer creates a mixer with the given number.
// The number is trimmed and must not be blank.
func NewTransitMixer(id kernel.UUID, number string) (*TransitMixer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	number = strings.TrimSpace(number)
	if number == "" {
		return nil, errs.NewValueIsRequiredError("mixer number")
	}

	return &TransitMixer{
		id:            id,
		number:        number,
		isConstructed: true,
	}, nil
}

// RestoreTransitMixer reconstructs a mixer from persistence.
func RestoreTransitMixer(id kernel.UUID, number string) (*TransitMixer, error) {
	return NewTransitMixer(id, number)
}

// Validate ensures the TransitMixer was created via a constructor.
func (m *TransitMixer) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrTransitMixerIsNotConstructed
	}
	return nil
}

func (m *TransitMixer) ID() kernel.UUID { return m.id }
func (m *TransitMixer) Number() string  { return m.number }

// HasNumber reports whether the mixer's natural key matches the given number,
// ignoring case and surrounding whitespace.
func (m *TransitMixer) HasNumber(number string) bool {
	return strings.EqualFold(m.number, strings.TrimSpace(number))
}
