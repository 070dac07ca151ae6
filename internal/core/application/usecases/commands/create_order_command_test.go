package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()
	number := order.NewNumber()
	deliveryDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateOrderCommand(
		orderID, number, "M30", 12.5, 48000, "Plot 14, Ring Road", deliveryDate, "user-42")

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, number, cmd.Number())
	assert.Equal(t, "M30", cmd.Grade())
	assert.InDelta(t, 12.5, cmd.Quantity(), 0.0001)
	assert.InDelta(t, 48000.0, cmd.TotalPrice(), 0.0001)
	assert.Equal(t, "Plot 14, Ring Road", cmd.Address())
	assert.Equal(t, deliveryDate, cmd.DeliveryDate())
	assert.Equal(t, "user-42", cmd.UserID())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_OptionalFields(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.NewNumber(), "M20", 6, 20000, "Sector 8", time.Time{}, "")

	require.NoError(t, err)
	assert.True(t, cmd.DeliveryDate().IsZero())
	assert.Empty(t, cmd.UserID())
}

func TestNewCreateOrderCommand_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		number     string
		grade      string
		quantity   float64
		totalPrice float64
		address    string
		wantErr    error
	}{
		{"blank number", "  ", "M30", 10, 100, "addr", commands.ErrOrderNumberIsRequired},
		{"blank grade", "ORD-1", "", 10, 100, "addr", commands.ErrGradeIsRequired},
		{"zero quantity", "ORD-1", "M30", 0, 100, "addr", commands.ErrQuantityIsInvalid},
		{"negative quantity", "ORD-1", "M30", -3, 100, "addr", commands.ErrQuantityIsInvalid},
		{"negative price", "ORD-1", "M30", 10, -1, "addr", commands.ErrTotalPriceIsInvalid},
		{"blank address", "ORD-1", "M30", 10, 100, " ", commands.ErrAddressIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(
				kernel.NewUUID(), tt.number, tt.grade, tt.quantity, tt.totalPrice, tt.address,
				time.Time{}, "")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateOrderCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
