package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request so that concurrent
// scheduling operations stay isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. A scheduling
// operation reads, checks, and writes within one unit of work so that no
// partial state is ever observable: if the conflict check or any validation
// rejects the request, nothing is committed.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Calling Rollback after a successful Commit is a no-op error.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// AssignmentRepository returns an AssignmentRepository bound to the current transaction.
	AssignmentRepository() AssignmentRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// MixerRepository returns a MixerRepository bound to the current transaction.
	MixerRepository() MixerRepository
}
