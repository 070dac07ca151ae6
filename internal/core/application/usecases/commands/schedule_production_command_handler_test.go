package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newScheduleProductionCommand(t *testing.T, orderNumber string) commands.ScheduleProductionCommand {
	t.Helper()

	productionDate := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewScheduleProductionCommand(
		orderNumber,
		productionDate,
		productionDate.Add(6*time.Hour),
		productionDate.Add(8*time.Hour),
		"Plant North",
		"HIGH",
	)
	require.NoError(t, err)
	return cmd
}

func TestScheduleProductionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), "ORD-PROD0001", "M30", 10, 40000, "Plot 14", time.Time{}, "user-1")
	require.NoError(t, err)
	cmd := newScheduleProductionCommand(t, testOrder.Number())

	orderRepo := new(MockOrderRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", ctx, testOrder.Number()).Return(testOrder, nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetByOrderID", ctx, testOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("assignment", testOrder.ID())).
			Once(),
		assignmentRepo.On("Add", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSchedulingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewScheduleProductionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	assert.Equal(t, order.InProduction, testOrder.Status())
	require.NotNil(t, testOrder.ProductionSlotStart())

	addedAssignment := assignmentRepo.Calls[1].Arguments[1].(*assignment.Assignment)
	assert.Equal(t, "Plant North", addedAssignment.PlantAllocation())
	assert.Equal(t, "HIGH", addedAssignment.PriorityLevel())
}

func TestScheduleProductionCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := newScheduleProductionCommand(t, "ORD-MISSING1")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByNumber", ctx, "ORD-MISSING1").
			Return(nil, errs.NewObjectNotFoundError("order", "ORD-MISSING1")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSchedulingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewScheduleProductionCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewScheduleProductionCommand_ValidationErrors(t *testing.T) {
	productionDate := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	slotStart := productionDate.Add(6 * time.Hour)
	slotEnd := productionDate.Add(8 * time.Hour)

	tests := []struct {
		name    string
		mutate  func() (commands.ScheduleProductionCommand, error)
		wantErr error
	}{
		{
			"blank order number",
			func() (commands.ScheduleProductionCommand, error) {
				return commands.NewScheduleProductionCommand(
					"", productionDate, slotStart, slotEnd, "Plant North", "HIGH")
			},
			commands.ErrOrderNumberIsRequired,
		},
		{
			"zero production date",
			func() (commands.ScheduleProductionCommand, error) {
				return commands.NewScheduleProductionCommand(
					"ORD-1", time.Time{}, slotStart, slotEnd, "Plant North", "HIGH")
			},
			commands.ErrProductionDateIsRequired,
		},
		{
			"zero slot end",
			func() (commands.ScheduleProductionCommand, error) {
				return commands.NewScheduleProductionCommand(
					"ORD-1", productionDate, slotStart, time.Time{}, "Plant North", "HIGH")
			},
			commands.ErrProductionSlotIsRequired,
		},
		{
			"blank plant",
			func() (commands.ScheduleProductionCommand, error) {
				return commands.NewScheduleProductionCommand(
					"ORD-1", productionDate, slotStart, slotEnd, "", "HIGH")
			},
			commands.ErrPlantAllocationIsRequired,
		},
		{
			"blank priority",
			func() (commands.ScheduleProductionCommand, error) {
				return commands.NewScheduleProductionCommand(
					"ORD-1", productionDate, slotStart, slotEnd, "Plant North", " ")
			},
			commands.ErrPriorityLevelIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.mutate()

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
