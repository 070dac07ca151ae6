package ports

import (
	"context"

	"dispatch/internal/core/domain/model/resource"
)

// DriverRepository defines the persistence contract for the driver registry.
// Drivers are looked up by their natural key.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, driver *resource.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, driver *resource.Driver) error

	// GetByName retrieves a driver by name, compared case-insensitively.
	// Returns an ObjectNotFoundError when no such driver exists.
	GetByName(ctx context.Context, name string) (*resource.Driver, error)
}

// MixerRepository defines the persistence contract for the transit-mixer
// registry. Mixers are looked up by their natural key.
type MixerRepository interface {
	// Add persists a new transit mixer.
	Add(ctx context.Context, mixer *resource.TransitMixer) error

	// GetByNumber retrieves a mixer by number, compared case-insensitively.
	// Returns an ObjectNotFoundError when no such mixer exists.
	GetByNumber(ctx context.Context, number string) (*resource.TransitMixer, error)
}
