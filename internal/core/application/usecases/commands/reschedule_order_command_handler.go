package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/locks"
)

// RescheduleOrderCommandHandler applies a partial schedule update to an order
// and, when resource fields are supplied, to its assignment.
//
// Unlike AssignVehicle, a reschedule does not re-run the booking conflict
// check, so moving a dispatch window or swapping resources here can produce an
// overlap that AssignVehicle would have rejected.
// TODO: run ConflictChecker when the patch changes the window or the primary
// resources, mirroring the AssignVehicle sequence.
type RescheduleOrderCommandHandler struct {
	uowFactory    UoWFactory
	resourceLocks *locks.KeyedMutex
}

// NewRescheduleOrderCommandHandler creates a handler for reschedule
// operations. The KeyedMutex must be the process-wide instance shared with
// the vehicle assignment handler.
func NewRescheduleOrderCommandHandler(
	uowFactory UoWFactory,
	resourceLocks *locks.KeyedMutex,
) RescheduleOrderCommandHandler {
	return RescheduleOrderCommandHandler{
		uowFactory:    uowFactory,
		resourceLocks: resourceLocks,
	}
}

// Handle processes the reschedule command. Resource keys named in the patch
// are locked for the duration of the write so concurrent upserts of the same
// driver or mixer stay serialized.
func (h RescheduleOrderCommandHandler) Handle(ctx context.Context, cmd RescheduleOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	params := cmd.Params()

	var keys []string
	if params.DriverName != nil {
		keys = append(keys, driverLockKey(*params.DriverName))
	}
	if params.MixerNumber != nil {
		keys = append(keys, mixerLockKey(*params.MixerNumber))
	}
	if params.BackupDriverName != nil {
		keys = append(keys, driverLockKey(*params.BackupDriverName))
	}
	if params.BackupMixerNumber != nil {
		keys = append(keys, mixerLockKey(*params.BackupMixerNumber))
	}

	if len(keys) > 0 {
		release, err := h.resourceLocks.LockAll(ctx, keys)
		if err != nil {
			return err
		}
		defer release()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	rescheduledOrder, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if err = rescheduledOrder.Reschedule(params.orderPatch(), time.Now().UTC()); err != nil {
		return err
	}

	if params.touchesAssignment() {
		if err = patchAssignment(ctx, uow, rescheduledOrder.ID(), params); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, rescheduledOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// patchAssignment applies the assignment-level fields of a reschedule:
// plant and priority overwrites plus resource swaps through the same upsert
// path AssignVehicle uses.
func patchAssignment(ctx context.Context, uow UoW, orderID kernel.UUID, params RescheduleOrderParams) error {
	assignmentRepo := uow.AssignmentRepository()
	orderAssignment, isNew, err := getOrCreateAssignment(ctx, assignmentRepo, orderID)
	if err != nil {
		return err
	}

	if params.PlantAllocation != nil {
		orderAssignment.SetPlantAllocation(*params.PlantAllocation)
	}
	if params.PriorityLevel != nil {
		orderAssignment.SetPriorityLevel(*params.PriorityLevel)
	}

	if params.DriverName != nil {
		shift := ""
		if params.DriverShift != nil {
			shift = *params.DriverShift
		}
		driver, upsertErr := upsertDriver(ctx, uow.DriverRepository(), *params.DriverName, shift)
		if upsertErr != nil {
			return upsertErr
		}
		if err = orderAssignment.AssignDriver(driver); err != nil {
			return err
		}
	}

	if params.MixerNumber != nil {
		mixer, upsertErr := upsertMixer(ctx, uow.MixerRepository(), *params.MixerNumber)
		if upsertErr != nil {
			return upsertErr
		}
		if err = orderAssignment.AssignMixer(mixer); err != nil {
			return err
		}
	}

	if params.BackupDriverName != nil {
		backupDriver, upsertErr := upsertDriver(ctx, uow.DriverRepository(), *params.BackupDriverName, "")
		if upsertErr != nil {
			return upsertErr
		}
		if err = orderAssignment.AssignBackupDriver(backupDriver); err != nil {
			return err
		}
	}

	if params.BackupMixerNumber != nil {
		backupMixer, upsertErr := upsertMixer(ctx, uow.MixerRepository(), *params.BackupMixerNumber)
		if upsertErr != nil {
			return upsertErr
		}
		if err = orderAssignment.AssignBackupMixer(backupMixer); err != nil {
			return err
		}
	}

	if isNew {
		return assignmentRepo.Add(ctx, orderAssignment)
	}
	return assignmentRepo.Update(ctx, orderAssignment)
}
