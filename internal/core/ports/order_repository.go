// Package ports defines repository and unit-of-work interfaces between the
// domain layer and infrastructure, enabling dependency inversion and
// in-memory test doubles.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its internal identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its client-facing order number.
	// Returns an ObjectNotFoundError when no such order exists.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetAllInDispatchedStatus retrieves all orders currently out for delivery.
	// Used by the delivery completion job to find trips that have ended.
	GetAllInDispatchedStatus(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order. The owning assignment must be removed in the
	// same transaction by the caller.
	Delete(ctx context.Context, id kernel.UUID) error
}
