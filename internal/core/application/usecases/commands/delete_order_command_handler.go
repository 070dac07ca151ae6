package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes an order together with its assignment.
// Both deletes run in one transaction so an order can never survive without
// its assignment being gone too, and vice versa.
type DeleteOrderCommandHandler struct {
	uowFactory SchedulingUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory SchedulingUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command. The assignment is removed first,
// then the order itself.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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
	existingOrder, err := orderRepo.GetByNumber(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if err = uow.AssignmentRepository().DeleteByOrderID(ctx, existingOrder.ID()); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, existingOrder.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
