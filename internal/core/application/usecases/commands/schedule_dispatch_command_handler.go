package commands

import (
	"context"
)

// ScheduleDispatchCommandHandler records the dispatch window and trip details
// on an order. The order moves to "DISPATCHED"; the window set here is what
// every later vehicle assignment is conflict-checked against.
type ScheduleDispatchCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewScheduleDispatchCommandHandler creates a handler for dispatch scheduling
// operations.
func NewScheduleDispatchCommandHandler(uowFactory OrderUoWFactory) ScheduleDispatchCommandHandler {
	return ScheduleDispatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch scheduling command.
func (h ScheduleDispatchCommandHandler) Handle(ctx context.Context, cmd ScheduleDispatchCommand) error {
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
	dispatchedOrder, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if err = dispatchedOrder.ScheduleDispatch(
		cmd.DispatchAt(),
		cmd.ArrivalAt(),
		cmd.TripPlanning(),
		cmd.DeliverySequence(),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, dispatchedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
