package commands

import (
	"context"
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/resource"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubDriverRepo struct{ mock.Mock }

func (m *stubDriverRepo) Add(ctx context.Context, d *resource.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *stubDriverRepo) Update(ctx context.Context, d *resource.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *stubDriverRepo) GetByName(ctx context.Context, name string) (*resource.Driver, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.Driver), args.Error(1)
}

type stubMixerRepo struct{ mock.Mock }

func (m *stubMixerRepo) Add(ctx context.Context, tm *resource.TransitMixer) error {
	args := m.Called(ctx, tm)
	return args.Error(0)
}

func (m *stubMixerRepo) GetByNumber(ctx context.Context, number string) (*resource.TransitMixer, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.TransitMixer), args.Error(1)
}

func TestUpsertDriver_ExistingDriverKeepsIdentityAndTakesNewShift(t *testing.T) {
	ctx := context.Background()
	existing, err := resource.NewDriver(kernel.NewUUID(), "Ravi Kumar", "NIGHT")
	require.NoError(t, err)

	repo := &stubDriverRepo{}
	repo.On("GetByName", ctx, "RAVI KUMAR").Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	got, err := upsertDriver(ctx, repo, "RAVI KUMAR", "MORNING")

	require.NoError(t, err)
	assert.Equal(t, existing.ID(), got.ID())
	assert.Equal(t, "Ravi Kumar", got.Name())
	assert.Equal(t, "MORNING", got.Shift())
	repo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestUpsertDriver_BlankShiftKeepsStoredShift(t *testing.T) {
	ctx := context.Background()
	existing, err := resource.NewDriver(kernel.NewUUID(), "Ravi Kumar", "NIGHT")
	require.NoError(t, err)

	repo := &stubDriverRepo{}
	repo.On("GetByName", ctx, "Ravi Kumar").Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	got, err := upsertDriver(ctx, repo, "Ravi Kumar", "  ")

	require.NoError(t, err)
	assert.Equal(t, "NIGHT", got.Shift())
}

func TestUpsertDriver_UnknownDriverIsRegistered(t *testing.T) {
	ctx := context.Background()

	repo := &stubDriverRepo{}
	repo.On("GetByName", ctx, "Sunil Yadav").
		Return(nil, errs.NewObjectNotFoundError("driver", "Sunil Yadav"))
	repo.On("Add", ctx, mock.AnythingOfType("*resource.Driver")).Return(nil)

	got, err := upsertDriver(ctx, repo, "Sunil Yadav", "MORNING")

	require.NoError(t, err)
	assert.Equal(t, "Sunil Yadav", got.Name())
	assert.Equal(t, "MORNING", got.Shift())
	repo.AssertExpectations(t)
}

func TestUpsertMixer_ExistingMixerIsReused(t *testing.T) {
	ctx := context.Background()
	existing, err := resource.NewTransitMixer(kernel.NewUUID(), "TM-01")
	require.NoError(t, err)

	repo := &stubMixerRepo{}
	repo.On("GetByNumber", ctx, "tm-01").Return(existing, nil)

	got, err := upsertMixer(ctx, repo, "tm-01")

	require.NoError(t, err)
	assert.Equal(t, existing.ID(), got.ID())
	repo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestUpsertMixer_UnknownMixerIsRegistered(t *testing.T) {
	ctx := context.Background()

	repo := &stubMixerRepo{}
	repo.On("GetByNumber", ctx, "TM-09").
		Return(nil, errs.NewObjectNotFoundError("transit mixer", "TM-09"))
	repo.On("Add", ctx, mock.AnythingOfType("*resource.TransitMixer")).Return(nil)

	got, err := upsertMixer(ctx, repo, "TM-09")

	require.NoError(t, err)
	assert.Equal(t, "TM-09", got.Number())
	repo.AssertExpectations(t)
}

func TestLockKeys_NormalizeCaseAndWhitespace(t *testing.T) {
	assert.Equal(t, "driver:ravi kumar", driverLockKey("  Ravi Kumar "))
	assert.Equal(t, "mixer:tm-01", mixerLockKey("TM-01"))
	assert.NotEqual(t, driverLockKey("42"), mixerLockKey("42"))
}
