package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/locks"
)

// ErrDispatchWindowIsNotSet is returned when a vehicle assignment is attempted
// before the order has been scheduled for dispatch.
var ErrDispatchWindowIsNotSet = errors.New(
	"order has no dispatch window, schedule dispatch before assigning a vehicle",
)

// AssignVehicleCommandHandler allocates a transit mixer and a driver to an
// order's dispatch trip.
//
// The handler holds the mutexes for every resource named in the command across
// the whole read-check-write sequence. Without them, two requests for the same
// driver could both read the bookings, both pass the overlap check, and both
// commit. With them, the second request observes the first one's booking and
// is rejected with a ResourceConflictError.
type AssignVehicleCommandHandler struct {
	uowFactory      UoWFactory
	resourceLocks   *locks.KeyedMutex
	conflictChecker services.ConflictChecker
}

// NewAssignVehicleCommandHandler creates a handler for vehicle assignment
// operations. The KeyedMutex must be the process-wide instance shared with the
// reschedule handler so both operations contend on the same keys.
func NewAssignVehicleCommandHandler(
	uowFactory UoWFactory,
	resourceLocks *locks.KeyedMutex,
) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		uowFactory:      uowFactory,
		resourceLocks:   resourceLocks,
		conflictChecker: services.NewConflictChecker(),
	}
}

// Handle processes the vehicle assignment command.
//
// Sequence: lock the resource keys, load the order, run the conflict check
// against every existing booking, upsert the named resources, write the
// assignment, commit. A conflict aborts before anything is persisted; a lock
// that cannot be acquired in time surfaces as a retryable ResourceLockBusyError.
func (h AssignVehicleCommandHandler) Handle(ctx context.Context, cmd AssignVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	keys := []string{
		mixerLockKey(cmd.MixerNumber()),
		driverLockKey(cmd.DriverName()),
	}
	if cmd.BackupMixerNumber() != "" {
		keys = append(keys, mixerLockKey(cmd.BackupMixerNumber()))
	}
	if cmd.BackupDriverName() != "" {
		keys = append(keys, driverLockKey(cmd.BackupDriverName()))
	}

	release, err := h.resourceLocks.LockAll(ctx, keys)
	if err != nil {
		return err
	}
	defer release()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	assignedOrder, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	window, ok := assignedOrder.DispatchWindow()
	if !ok {
		return errs.NewValueIsRequiredErrorWithCause("dispatchDateTime", ErrDispatchWindowIsNotSet)
	}

	assignmentRepo := uow.AssignmentRepository()
	bookings, err := assignmentRepo.GetAllBookings(ctx)
	if err != nil {
		return err
	}

	if err = h.conflictChecker.Check(
		assignedOrder.ID(),
		window,
		cmd.MixerNumber(),
		cmd.DriverName(),
		bookings,
	); err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()
	mixerRepo := uow.MixerRepository()

	driver, err := upsertDriver(ctx, driverRepo, cmd.DriverName(), cmd.DriverShift())
	if err != nil {
		return err
	}

	mixer, err := upsertMixer(ctx, mixerRepo, cmd.MixerNumber())
	if err != nil {
		return err
	}

	orderAssignment, isNew, err := getOrCreateAssignment(ctx, assignmentRepo, assignedOrder.ID())
	if err != nil {
		return err
	}

	if err = orderAssignment.AssignDriver(driver); err != nil {
		return err
	}
	if err = orderAssignment.AssignMixer(mixer); err != nil {
		return err
	}

	if cmd.BackupDriverName() != "" {
		backupDriver, upsertErr := upsertDriver(ctx, driverRepo, cmd.BackupDriverName(), "")
		if upsertErr != nil {
			return upsertErr
		}
		if err = orderAssignment.AssignBackupDriver(backupDriver); err != nil {
			return err
		}
	}

	if cmd.BackupMixerNumber() != "" {
		backupMixer, upsertErr := upsertMixer(ctx, mixerRepo, cmd.BackupMixerNumber())
		if upsertErr != nil {
			return upsertErr
		}
		if err = orderAssignment.AssignBackupMixer(backupMixer); err != nil {
			return err
		}
	}

	if isNew {
		err = assignmentRepo.Add(ctx, orderAssignment)
	} else {
		err = assignmentRepo.Update(ctx, orderAssignment)
	}
	if err != nil {
		return err
	}

	assignedOrder.MarkVehicleAssigned()
	if err = orderRepo.Update(ctx, assignedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
