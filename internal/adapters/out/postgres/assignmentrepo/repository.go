package assignmentrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing assignment to the database.
// Uses Select("*") so resource references cleared to nil are written as NULL.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderID retrieves the assignment owned by the given order.
func (r *GormAssignmentRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
) (*assignment.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllBookings returns every assignment joined with its order's dispatch
// window and the natural keys of its primary resources. Orders without a
// window come back with a nil Window; the conflict checker skips them.
func (r *GormAssignmentRepository) GetAllBookings(ctx context.Context) ([]services.Booking, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			a.order_id,
			o.number,
			o.dispatch_date_time,
			o.expected_arrival_time,
			m.number,
			d.name
		FROM assignments a
		JOIN orders o ON o.id = a.order_id
		LEFT JOIN transit_mixers m ON m.id = a.mixer_id
		LEFT JOIN drivers d ON d.id = a.driver_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]services.Booking, 0)

	for rows.Next() {
		var (
			rawOrderID  uuid.UUID
			orderNumber string
			dispatchAt  *time.Time
			arrivalAt   *time.Time
			mixerNumber sql.NullString
			driverName  sql.NullString
		)

		if err = rows.Scan(
			&rawOrderID,
			&orderNumber,
			&dispatchAt,
			&arrivalAt,
			&mixerNumber,
			&driverName,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(rawOrderID[:])
		if idErr != nil {
			return nil, idErr
		}

		booking := services.Booking{
			OrderID:     orderID,
			OrderNumber: orderNumber,
			MixerNumber: mixerNumber.String,
			DriverName:  driverName.String,
		}

		if dispatchAt != nil && arrivalAt != nil {
			window, windowErr := kernel.NewTimeWindow(*dispatchAt, *arrivalAt)
			if windowErr != nil {
				return nil, windowErr
			}
			booking.Window = &window
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// DeleteByOrderID removes the assignment owned by the given order, if any.
func (r *GormAssignmentRepository) DeleteByOrderID(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&AssignmentDTO{}, "order_id = ?", orderID.Bytes()).Error
}
