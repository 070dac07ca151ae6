// Package commands contains the business operations that modify system state.
// Each operation is a command struct with a validating constructor plus a
// handler that runs the operation inside a unit of work: validation first,
// then the read-check-write sequence, then a single commit. A rejected
// request never leaves partial state behind.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers declare the narrowest composition they need.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// ResourceRepoFactory provides access to the driver and mixer registries
	// within a transaction.
	ResourceRepoFactory interface {
		DriverRepository() ports.DriverRepository
		MixerRepository() ports.MixerRepository
	}

	// OrderUoW manages transactions for order-only operations
	// (create, approve, reject, delivery completion).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SchedulingUoW manages transactions spanning the order and its assignment
	// (production scheduling, order deletion).
	SchedulingUoW interface {
		TxManager
		OrderRepoFactory
		AssignmentRepoFactory
	}

	// SchedulingUoWFactory creates scheduling unit of work instances.
	SchedulingUoWFactory interface {
		Create() SchedulingUoW
	}

	// UoW manages transactions across orders, assignments, and the resource
	// registries (vehicle assignment, reschedule).
	UoW interface {
		TxManager
		OrderRepoFactory
		AssignmentRepoFactory
		ResourceRepoFactory
	}

	// UoWFactory creates unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
