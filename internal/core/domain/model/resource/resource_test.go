package resource_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("creates_driver_and_trims_name", func(t *testing.T) {
		d, err := resource.NewDriver(kernel.NewUUID(), "  Ravi ", "Night")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "Ravi", d.Name())
		assert.Equal(t, "Night", d.Shift())
	})

	t.Run("allows_empty_shift", func(t *testing.T) {
		d, err := resource.NewDriver(kernel.NewUUID(), "Ravi", "")

		require.NoError(t, err)
		assert.Empty(t, d.Shift())
	})

	t.Run("rejects_blank_name", func(t *testing.T) {
		_, err := resource.NewDriver(kernel.NewUUID(), "   ", "Night")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_invalid_id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := resource.NewDriver(invalidID, "Ravi", "Night")

		require.Error(t, err)
	})
}

func TestDriver_HasName(t *testing.T) {
	t.Run("matches_case_insensitively", func(t *testing.T) {
		d, err := resource.NewDriver(kernel.NewUUID(), "Ravi", "Night")
		require.NoError(t, err)

		assert.True(t, d.HasName("ravi"))
		assert.True(t, d.HasName("RAVI"))
		assert.True(t, d.HasName("  Ravi "))
		assert.False(t, d.HasName("Raviraj"))
	})
}

func TestDriver_ChangeShift(t *testing.T) {
	t.Run("overwrites_with_non_blank_value", func(t *testing.T) {
		d, err := resource.NewDriver(kernel.NewUUID(), "Ravi", "Night")
		require.NoError(t, err)

		d.ChangeShift("Day")

		assert.Equal(t, "Day", d.Shift())
	})

	t.Run("keeps_last_shift_when_blank", func(t *testing.T) {
		d, err := resource.NewDriver(kernel.NewUUID(), "Ravi", "Night")
		require.NoError(t, err)

		d.ChangeShift("  ")

		assert.Equal(t, "Night", d.Shift())
	})
}

func TestDriver_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var d resource.Driver

		require.ErrorIs(t, d.Validate(), resource.ErrDriverIsNotConstructed)
	})
}

func TestNewTransitMixer(t *testing.T) {
	t.Run("creates_mixer_and_trims_number", func(t *testing.T) {
		m, err := resource.NewTransitMixer(kernel.NewUUID(), " TM-01 ")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "TM-01", m.Number())
	})

	t.Run("rejects_blank_number", func(t *testing.T) {
		_, err := resource.NewTransitMixer(kernel.NewUUID(), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestTransitMixer_HasNumber(t *testing.T) {
	t.Run("matches_case_insensitively", func(t *testing.T) {
		m, err := resource.NewTransitMixer(kernel.NewUUID(), "TM-01")
		require.NoError(t, err)

		assert.True(t, m.HasNumber("tm-01"))
		assert.True(t, m.HasNumber(" TM-01 "))
		assert.False(t, m.HasNumber("TM-02"))
	})
}

func TestTransitMixer_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var m resource.TransitMixer

		require.ErrorIs(t, m.Validate(), resource.ErrTransitMixerIsNotConstructed)
	})
}
