// Package assignment contains the Assignment aggregate: the record binding one
// order to its allocated plant, priority, and primary/backup driver and mixer.
// Exactly one assignment exists per order; it is created lazily on the first
// scheduling action and deleted together with its order. The referenced
// drivers and mixers are shared resources and survive the assignment.
package assignment

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment was not created
// through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment constructor",
)

// Assignment binds an order to its allocated production and delivery
// resources. Only the primary driver and mixer participate in conflict
// resolution; backups are recorded but not cross-checked.
type Assignment struct {
	id      kernel.UUID
	orderID kernel.UUID

	plantAllocation string
	priorityLevel   string

	driverID       *kernel.UUID
	mixerID        *kernel.UUID
	backupDriverID *kernel.UUID
	backupMixerID  *kernel.UUID

	isConstructed bool
}

// NewAssignment creates an empty assignment for the given order.
func NewAssignment(id, orderID kernel.UUID) (*Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	return &Assignment{
		id:            id,
		orderID:       orderID,
		isConstructed: true,
	}, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id, orderID kernel.UUID,
	plantAllocation, priorityLevel string,
	driverID, mixerID, backupDriverID, backupMixerID *kernel.UUID,
) (*Assignment, error) {
	a, err := NewAssignment(id, orderID)
	if err != nil {
		return nil, err
	}

	a.plantAllocation = plantAllocation
	a.priorityLevel = priorityLevel
	a.driverID = driverID
	a.mixerID = mixerID
	a.backupDriverID = backupDriverID
	a.backupMixerID = backupMixerID
	return a, nil
}

// Validate ensures the Assignment was created via a constructor.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

func (a *Assignment) ID() kernel.UUID              { return a.id }
func (a *Assignment) OrderID() kernel.UUID         { return a.orderID }
func (a *Assignment) PlantAllocation() string      { return a.plantAllocation }
func (a *Assignment) PriorityLevel() string        { return a.priorityLevel }
func (a *Assignment) DriverID() *kernel.UUID       { return a.driverID }
func (a *Assignment) MixerID() *kernel.UUID        { return a.mixerID }
func (a *Assignment) BackupDriverID() *kernel.UUID { return a.backupDriverID }
func (a *Assignment) BackupMixerID() *kernel.UUID  { return a.backupMixerID }

// AllocatePlant records the producing plant and the priority of the order.
func (a *Assignment) AllocatePlant(plantAllocation, priorityLevel string) error {
	if plantAllocation == "" {
		return errs.NewValueIsRequiredError("plantAllocation")
	}
	if priorityLevel == "" {
		return errs.NewValueIsRequiredError("priorityLevel")
	}

	a.plantAllocation = plantAllocation
	a.priorityLevel = priorityLevel
	return nil
}

// SetPlantAllocation overwrites only the plant, used by partial reschedules.
func (a *Assignment) SetPlantAllocation(plantAllocation string) {
	a.plantAllocation = plantAllocation
}

// SetPriorityLevel overwrites only the priority, used by partial reschedules.
func (a *Assignment) SetPriorityLevel(priorityLevel string) {
	a.priorityLevel = priorityLevel
}

// AssignDriver records the primary driver.
func (a *Assignment) AssignDriver(driver *resource.Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}
	id := driver.ID()
	a.driverID = &id
	return nil
}

// AssignMixer records the primary transit mixer.
func (a *Assignment) AssignMixer(mixer *resource.TransitMixer) error {
	if err := mixer.Validate(); err != nil {
		return err
	}
	id := mixer.ID()
	a.mixerID = &id
	return nil
}

// AssignBackupDriver records the backup driver.
func (a *Assignment) AssignBackupDriver(driver *resource.Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}
	id := driver.ID()
	a.backupDriverID = &id
	return nil
}

// AssignBackupMixer records the backup transit mixer.
func (a *Assignment) AssignBackupMixer(mixer *resource.TransitMixer) error {
	if err := mixer.Validate(); err != nil {
		return err
	}
	id := mixer.ID()
	a.backupMixerID = &id
	return nil
}
