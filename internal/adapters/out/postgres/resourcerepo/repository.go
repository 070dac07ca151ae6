package resourcerepo

import (
	"context"
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, driver *resource.Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(driver)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing driver to the database.
func (r *GormDriverRepository) Update(ctx context.Context, driver *resource.Driver) error {
	if err := driver.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(driver)
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetByName retrieves a driver by name, compared case-insensitively on
// trimmed input.
func (r *GormDriverRepository) GetByName(ctx context.Context, name string) (*resource.Driver, error) {
	name = strings.TrimSpace(name)

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", name)
		}
		return nil, err
	}

	return driverToDomain(dto)
}

// GormMixerRepository implements MixerRepository using GORM.
type GormMixerRepository struct {
	db *gorm.DB
}

// NewGormMixerRepository creates a new GORM transit mixer repository.
func NewGormMixerRepository(db *gorm.DB) *GormMixerRepository {
	return &GormMixerRepository{db: db}
}

// Add saves a new transit mixer to the database.
func (r *GormMixerRepository) Add(ctx context.Context, mixer *resource.TransitMixer) error {
	if err := mixer.Validate(); err != nil {
		return err
	}

	dto := mixerFromDomain(mixer)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByNumber retrieves a mixer by number, compared case-insensitively on
// trimmed input.
func (r *GormMixerRepository) GetByNumber(ctx context.Context, number string) (*resource.TransitMixer, error) {
	number = strings.TrimSpace(number)

	var dto TransitMixerDTO
	if err := r.db.WithContext(ctx).First(&dto, "LOWER(number) = LOWER(?)", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transit mixer", number)
		}
		return nil, err
	}

	return mixerToDomain(dto)
}
