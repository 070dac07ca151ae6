package commands

import (
	"context"
)

// ScheduleProductionCommandHandler books a production slot for an order and
// records the plant allocation on its assignment. The order moves to
// "IN_PRODUCTION".
type ScheduleProductionCommandHandler struct {
	uowFactory SchedulingUoWFactory
}

// NewScheduleProductionCommandHandler creates a handler for production
// scheduling operations.
func NewScheduleProductionCommandHandler(uowFactory SchedulingUoWFactory) ScheduleProductionCommandHandler {
	return ScheduleProductionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the production scheduling command. The order's slot fields
// and the assignment's plant allocation are written in one transaction.
func (h ScheduleProductionCommandHandler) Handle(ctx context.Context, cmd ScheduleProductionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	scheduledOrder, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if err = scheduledOrder.ScheduleProduction(cmd.ProductionDate(), cmd.SlotStart(), cmd.SlotEnd()); err != nil {
		return err
	}

	assignmentRepo := uow.AssignmentRepository()
	orderAssignment, isNew, err := getOrCreateAssignment(ctx, assignmentRepo, scheduledOrder.ID())
	if err != nil {
		return err
	}

	if err = orderAssignment.AllocatePlant(cmd.PlantAllocation(), cmd.PriorityLevel()); err != nil {
		return err
	}

	if isNew {
		err = assignmentRepo.Add(ctx, orderAssignment)
	} else {
		err = assignmentRepo.Update(ctx, orderAssignment)
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, scheduledOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
