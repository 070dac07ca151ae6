package commands

import (
	"context"
	"time"
)

// CompleteDeliveriesCommandHandler marks dispatched orders as delivered once
// their expected arrival time has passed. Orders still on the road are left
// alone; the next tick picks them up.
type CompleteDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteDeliveriesCommandHandler creates a handler for the delivery
// completion sweep.
func NewCompleteDeliveriesCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveriesCommandHandler {
	return CompleteDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion sweep. All status changes of one sweep are
// committed together.
func (h CompleteDeliveriesCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveriesCommand) error {
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
	dispatchedOrders, err := orderRepo.GetAllInDispatchedStatus(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, dispatchedOrder := range dispatchedOrders {
		arrivalAt := dispatchedOrder.ExpectedArrivalTime()
		if arrivalAt == nil || arrivalAt.After(now) {
			continue
		}

		dispatchedOrder.MarkDelivered()
		if err = orderRepo.Update(ctx, dispatchedOrder); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
