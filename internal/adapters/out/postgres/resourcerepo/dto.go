// Package resourcerepo persists the shared resource registries: drivers and
// transit mixers, both looked up by case-insensitive natural key.
package resourcerepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting drivers.
type DriverDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"uniqueIndex"`
	Shift string
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// TransitMixerDTO represents the database structure for persisting mixers.
type TransitMixerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number string    `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for transit mixer entities.
func (TransitMixerDTO) TableName() string {
	return "transit_mixers"
}

func driverFromDomain(d *resource.Driver) DriverDTO {
	return DriverDTO{
		ID:    d.ID().Bytes(),
		Name:  d.Name(),
		Shift: d.Shift(),
	}
}

func driverToDomain(dto DriverDTO) (*resource.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return resource.RestoreDriver(id, dto.Name, dto.Shift)
}

func mixerFromDomain(m *resource.TransitMixer) TransitMixerDTO {
	return TransitMixerDTO{
		ID:     m.ID().Bytes(),
		Number: m.Number(),
	}
}

func mixerToDomain(dto TransitMixerDTO) (*resource.TransitMixer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return resource.RestoreTransitMixer(id, dto.Number)
}
