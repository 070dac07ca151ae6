package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
)

// AssignmentRepository defines the persistence contract for assignment
// aggregates and the booking view the conflict scan consumes.
type AssignmentRepository interface {
	// Add persists a new assignment aggregate.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment aggregate.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// GetByOrderID retrieves the assignment owned by the given order.
	// Returns an ObjectNotFoundError when the order has no assignment yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error)

	// GetAllBookings returns every assignment joined with its order's dispatch
	// window and the natural keys of its primary resources. The conflict
	// checker consumes the sequence exhaustively.
	GetAllBookings(ctx context.Context) ([]services.Booking, error)

	// DeleteByOrderID removes the assignment owned by the given order, if any.
	DeleteByOrderID(ctx context.Context, orderID kernel.UUID) error
}
