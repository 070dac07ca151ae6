package commands

import (
	"context"
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// Lock key prefixes keep driver and mixer namespaces apart: a driver named
// "42" must not contend with mixer number "42".
const (
	driverLockPrefix = "driver:"
	mixerLockPrefix  = "mixer:"
)

// driverLockKey returns the mutex key guarding a driver, normalized the same
// way the registry compares names.
func driverLockKey(name string) string {
	return driverLockPrefix + strings.ToLower(strings.TrimSpace(name))
}

// mixerLockKey returns the mutex key guarding a transit mixer.
func mixerLockKey(number string) string {
	return mixerLockPrefix + strings.ToLower(strings.TrimSpace(number))
}

// upsertDriver finds a driver by name or registers a new one. An existing
// driver keeps its identity; a non-blank shift overwrites the stored one,
// last write wins.
func upsertDriver(
	ctx context.Context,
	repo ports.DriverRepository,
	name string,
	shift string,
) (*resource.Driver, error) {
	existing, err := repo.GetByName(ctx, name)
	if err == nil {
		existing.ChangeShift(shift)
		if err = repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := resource.NewDriver(kernel.NewUUID(), name, shift)
	if err != nil {
		return nil, err
	}
	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// upsertMixer finds a transit mixer by number or registers a new one.
func upsertMixer(
	ctx context.Context,
	repo ports.MixerRepository,
	number string,
) (*resource.TransitMixer, error) {
	existing, err := repo.GetByNumber(ctx, number)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := resource.NewTransitMixer(kernel.NewUUID(), number)
	if err != nil {
		return nil, err
	}
	if err = repo.Add(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// getOrCreateAssignment returns the order's assignment, creating an empty one
// on the first scheduling action. The second return value reports whether the
// assignment is new, so the caller knows to Add instead of Update.
func getOrCreateAssignment(
	ctx context.Context,
	repo ports.AssignmentRepository,
	orderID kernel.UUID,
) (*assignment.Assignment, bool, error) {
	existing, err := repo.GetByOrderID(ctx, orderID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	created, err := assignment.NewAssignment(kernel.NewUUID(), orderID)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}
