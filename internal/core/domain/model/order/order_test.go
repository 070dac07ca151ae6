package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour int) time.Time {
	return time.Date(2025, time.March, 10, hour, 0, 0, 0, time.UTC)
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), order.NewNumber(),
		"M25", 12.5, 56250, "Plot 14, Industrial Estate", at(9), "user-7",
	)
	require.NoError(t, err)
	return o
}

func TestNewNumber(t *testing.T) {
	t.Run("generates_prefixed_distinct_numbers", func(t *testing.T) {
		first := order.NewNumber()
		second := order.NewNumber()

		assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, first)
		assert.NotEqual(t, first, second)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order_with_all_valid_parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, "ORD-1A2B3C4D", "M25", 12.5, 56250, "Plot 14", at(9), "user-7")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "ORD-1A2B3C4D", o.Number())
		assert.Equal(t, order.PendingApproval, o.Status())
		assert.Equal(t, "user-7", o.UserID())
		require.NotNil(t, o.DeliveryDate())
		assert.Equal(t, at(9), *o.DeliveryDate())
		_, ok := o.DispatchWindow()
		assert.False(t, ok)
	})

	t.Run("accepts_zero_delivery_date", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-1", "M25", 1, 0, "Plot 14", time.Time{}, "")

		require.NoError(t, err)
		assert.Nil(t, o.DeliveryDate())
	})

	t.Run("fails_with_invalid_id", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "ORD-1", "M25", 1, 0, "Plot 14", at(9), "")

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("fails_with_blank_number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "  ", "M25", 1, 0, "Plot 14", at(9), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails_with_zero_quantity", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1", "M25", 0, 0, "Plot 14", at(9), "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("fails_with_negative_price", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1", "M25", 1, -1, "Plot 14", at(9), "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("collects_all_violations", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", "", 0, -1, "", at(9), "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "grade")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "address")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ScheduleProduction(t *testing.T) {
	t.Run("records_slot_and_moves_to_in_production", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ScheduleProduction(at(8), at(8), at(10))

		require.NoError(t, err)
		assert.Equal(t, order.InProduction, o.Status())
		assert.Equal(t, at(8), *o.ProductionSlotStart())
		assert.Equal(t, at(10), *o.ProductionSlotEnd())
		assert.NotEmpty(t, o.LatestNotification())
	})

	t.Run("rejects_missing_production_date", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ScheduleProduction(time.Time{}, at(8), at(10))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.PendingApproval, o.Status())
	})

	t.Run("rejects_slot_end_equal_to_start", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ScheduleProduction(at(8), at(10), at(10))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o.ProductionSlotStart())
	})

	t.Run("rejects_slot_end_before_start", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ScheduleProduction(at(8), at(12), at(10))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ScheduleDispatch(t *testing.T) {
	t.Run("records_window_and_moves_to_dispatched", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ScheduleDispatch(at(10), at(12), "Route 4 via bypass", "1")

		require.NoError(t, err)
		assert.Equal(t, order.Dispatched, o.Status())
		w, ok := o.DispatchWindow()
		require.True(t, ok)
		assert.Equal(t, at(10), w.Start())
		assert.Equal(t, at(12), w.End())
	})

	t.Run("rejects_blank_trip_planning", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ScheduleDispatch(at(10), at(12), "  ", "1")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_eta_equal_to_dispatch", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ScheduleDispatch(at(10), at(10), "Route 4", "1")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		_, ok := o.DispatchWindow()
		assert.False(t, ok)
	})
}

func TestOrder_AdminActions(t *testing.T) {
	t.Run("approve_stamps_time", func(t *testing.T) {
		o := newTestOrder(t)

		o.Approve(at(11))

		assert.Equal(t, order.Approved, o.Status())
		require.NotNil(t, o.ApprovedAt())
		assert.Equal(t, at(11), *o.ApprovedAt())
	})

	t.Run("reject_is_permissive_from_any_status", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ScheduleProduction(at(8), at(8), at(10)))

		o.Reject()

		assert.Equal(t, order.Rejected, o.Status())
	})

	t.Run("mark_delivered", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ScheduleDispatch(at(10), at(12), "Route 4", "1"))

		o.MarkDelivered()

		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_Reschedule(t *testing.T) {
	t.Run("applies_only_supplied_fields", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ScheduleDispatch(at(10), at(12), "Route 4", "1"))

		newDispatch := at(13)
		newArrival := at(15)
		reason := "pump breakdown at site"
		err := o.Reschedule(order.ReschedulePatch{
			DispatchDateTime:    &newDispatch,
			ExpectedArrivalTime: &newArrival,
			RescheduleReason:    &reason,
		}, at(12))

		require.NoError(t, err)
		assert.Equal(t, at(13), *o.DispatchDateTime())
		assert.Equal(t, at(15), *o.ExpectedArrivalTime())
		assert.Equal(t, "Route 4", o.TripPlanning())
		assert.Equal(t, reason, o.RescheduleReason())
		require.NotNil(t, o.LastRescheduledAt())
		assert.Equal(t, at(12), *o.LastRescheduledAt())
	})

	t.Run("validates_resulting_window_not_just_supplied_values", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ScheduleDispatch(at(10), at(12), "Route 4", "1"))

		// Moving only the dispatch time past the stored arrival must fail.
		newDispatch := at(14)
		err := o.Reschedule(order.ReschedulePatch{DispatchDateTime: &newDispatch}, at(12))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, at(10), *o.DispatchDateTime())
		assert.Nil(t, o.LastRescheduledAt())
	})

	t.Run("validates_resulting_production_slot", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ScheduleProduction(at(8), at(8), at(10)))

		newStart := at(11)
		err := o.Reschedule(order.ReschedulePatch{ProductionSlotStart: &newStart}, at(12))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, at(8), *o.ProductionSlotStart())
	})

	t.Run("empty_patch_still_stamps_reschedule_time", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Reschedule(order.ReschedulePatch{}, at(12))

		require.NoError(t, err)
		require.NotNil(t, o.LastRescheduledAt())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round_trips_aggregate_state", func(t *testing.T) {
		original := newTestOrder(t)
		require.NoError(t, original.ScheduleDispatch(at(10), at(12), "Route 4", "2"))

		restored, err := order.RestoreOrder(
			original.ID(), original.Number(), original.Grade(), original.Quantity(),
			original.TotalPrice(), original.Address(), original.Status(), original.UserID(),
			original.DeliveryDate(), original.ApprovedAt(),
			original.ProductionDate(), original.ProductionSlotStart(), original.ProductionSlotEnd(),
			original.DispatchDateTime(), original.ExpectedArrivalTime(),
			original.DeliverySequence(), original.TripPlanning(),
			original.RescheduleReason(), original.LastRescheduledAt(), original.LatestNotification(),
		)

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, original.Status(), restored.Status())
		w, ok := restored.DispatchWindow()
		require.True(t, ok)
		assert.Equal(t, at(10), w.Start())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-1", "M25", 1, 0, "Plot 14", order.Unknown, "",
			nil, nil, nil, nil, nil, nil, nil, "", "", "", nil, "",
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus(t *testing.T) {
	t.Run("string_round_trip", func(t *testing.T) {
		for _, s := range []order.Status{
			order.PendingApproval, order.Approved, order.InProduction,
			order.Dispatched, order.Delivered, order.Rejected,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("unknown_is_invalid", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		assert.Equal(t, "UNKNOWN", order.Unknown.String())
	})

	t.Run("parse_rejects_unrecognized_value", func(t *testing.T) {
		_, err := order.StatusFromString("SHIPPED")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
