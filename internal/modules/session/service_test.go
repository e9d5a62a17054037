package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tatvaops/internal/domain"
)

type mockFlagRepo struct {
	mock.Mock
}

func (m *mockFlagRepo) Get(ctx context.Context, userID int64, key string) (string, error) {
	args := m.Called(ctx, userID, key)
	return args.String(0), args.Error(1)
}

func (m *mockFlagRepo) GetAll(ctx context.Context, userID int64) (map[string]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *mockFlagRepo) Set(ctx context.Context, userID int64, key, value string) error {
	args := m.Called(ctx, userID, key, value)
	return args.Error(0)
}

func (m *mockFlagRepo) Delete(ctx context.Context, userID int64, key string) error {
	args := m.Called(ctx, userID, key)
	return args.Error(0)
}

func TestService_Snapshot_Defaults(t *testing.T) {
	repo := new(mockFlagRepo)
	repo.On("GetAll", mock.Anything, int64(1)).Return(map[string]string{}, nil)

	svc := NewService(repo)
	flags, err := svc.Snapshot(context.Background(), 1)
	require.NoError(t, err)

	// A brand new user starts on the customer side with nothing selected.
	assert.Equal(t, domain.RoleCustomer, flags.CurrentRole)
	assert.Nil(t, flags.SelectedVendorID)
	assert.False(t, flags.InspectionStatus.Completed)
	assert.False(t, flags.MilestonesGenerated)
}

func TestService_WriteThrough(t *testing.T) {
	repo := new(mockFlagRepo)
	repo.On("GetAll", mock.Anything, int64(1)).Return(map[string]string{}, nil)
	repo.On("Set", mock.Anything, int64(1), domain.FlagSelectedVendor, "3").Return(nil)
	repo.On("Set", mock.Anything, int64(1), domain.FlagMilestonesGenerated, "true").Return(nil)
	repo.On("Set", mock.Anything, int64(1), domain.FlagCurrentRole, `"vendor"`).Return(nil)

	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SetSelectedVendor(ctx, 1, 3))
	require.NoError(t, svc.SetMilestonesGenerated(ctx, 1, true))
	require.NoError(t, svc.SetCurrentRole(ctx, 1, domain.RoleVendor))

	flags, err := svc.Snapshot(ctx, 1)
	require.NoError(t, err)

	require.NotNil(t, flags.SelectedVendorID)
	assert.Equal(t, int64(3), *flags.SelectedVendorID)
	assert.True(t, flags.MilestonesGenerated)
	assert.Equal(t, domain.RoleVendor, flags.CurrentRole)
	repo.AssertExpectations(t)
}

func TestService_SetCurrentRole_RejectsUnknownRole(t *testing.T) {
	repo := new(mockFlagRepo)
	svc := NewService(repo)

	err := svc.SetCurrentRole(context.Background(), 1, "admin")
	assert.ErrorIs(t, err, ErrInvalidRole)
	repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Snapshot_ReadsPersistedFlags(t *testing.T) {
	// Simulates a process restart: nothing cached, everything comes from
	// the repository.
	repo := new(mockFlagRepo)
	repo.On("GetAll", mock.Anything, int64(2)).Return(map[string]string{
		domain.FlagCurrentRole:         `"vendor"`,
		domain.FlagSelectedVendor:      "7",
		domain.FlagInspectionStatus:    `{"completed":true,"completion_date":"2026-01-10T00:00:00Z"}`,
		domain.FlagMilestonesGenerated: "true",
	}, nil)

	svc := NewService(repo)
	flags, err := svc.Snapshot(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, domain.RoleVendor, flags.CurrentRole)
	require.NotNil(t, flags.SelectedVendorID)
	assert.Equal(t, int64(7), *flags.SelectedVendorID)
	assert.True(t, flags.InspectionStatus.Completed)
	require.NotNil(t, flags.InspectionStatus.CompletionDate)
	assert.True(t, flags.MilestonesGenerated)

	// The second snapshot is served from cache.
	_, err = svc.Snapshot(context.Background(), 2)
	require.NoError(t, err)
	repo.AssertNumberOfCalls(t, "GetAll", 1)
}

func TestService_MarkInspectionCompleted(t *testing.T) {
	repo := new(mockFlagRepo)
	repo.On("GetAll", mock.Anything, int64(1)).Return(map[string]string{}, nil)
	repo.On("Set", mock.Anything, int64(1), domain.FlagInspectionStatus, mock.Anything).Return(nil)

	svc := NewService(repo)
	when := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.MarkInspectionCompleted(context.Background(), 1, &when))

	status, err := svc.InspectionStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, status.Completed)
	require.NotNil(t, status.CompletionDate)
	assert.Equal(t, when, status.CompletionDate.UTC())
}

func TestService_ClearSelectedVendor(t *testing.T) {
	repo := new(mockFlagRepo)
	repo.On("GetAll", mock.Anything, int64(1)).Return(map[string]string{
		domain.FlagSelectedVendor: "4",
	}, nil)
	repo.On("Delete", mock.Anything, int64(1), domain.FlagSelectedVendor).Return(nil)

	svc := NewService(repo)
	ctx := context.Background()

	id, err := svc.SelectedVendorID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, id)

	require.NoError(t, svc.ClearSelectedVendor(ctx, 1))

	id, err = svc.SelectedVendorID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, id)
	repo.AssertExpectations(t)
}
