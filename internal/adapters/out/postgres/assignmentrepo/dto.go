// Package assignmentrepo persists assignment aggregates and assembles the
// booking view the conflict scan consumes.
package assignmentrepo

import (
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment
// aggregates. Exactly one row exists per order; resource references are
// nullable because an assignment can exist with only a plant allocation.
type AssignmentDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	PlantAllocation string
	PriorityLevel   string

	DriverID       *uuid.UUID `gorm:"type:uuid;index"`
	MixerID        *uuid.UUID `gorm:"type:uuid;index"`
	BackupDriverID *uuid.UUID `gorm:"type:uuid"`
	BackupMixerID  *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

func refFromDomain(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func refToDomain(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// fromDomain converts an assignment aggregate to its database representation.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:              aggregate.ID().Bytes(),
		OrderID:         aggregate.OrderID().Bytes(),
		PlantAllocation: aggregate.PlantAllocation(),
		PriorityLevel:   aggregate.PriorityLevel(),
		DriverID:        refFromDomain(aggregate.DriverID()),
		MixerID:         refFromDomain(aggregate.MixerID()),
		BackupDriverID:  refFromDomain(aggregate.BackupDriverID()),
		BackupMixerID:   refFromDomain(aggregate.BackupMixerID()),
	}
}

// toDomain converts a database DTO back to an assignment aggregate.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := refToDomain(dto.DriverID)
	if err != nil {
		return nil, err
	}
	mixerID, err := refToDomain(dto.MixerID)
	if err != nil {
		return nil, err
	}
	backupDriverID, err := refToDomain(dto.BackupDriverID)
	if err != nil {
		return nil, err
	}
	backupMixerID, err := refToDomain(dto.BackupMixerID)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id,
		orderID,
		dto.PlantAllocation,
		dto.PriorityLevel,
		driverID,
		mixerID,
		backupDriverID,
		backupMixerID,
	)
}
