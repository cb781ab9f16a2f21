package appsettings

import (
	"context"
	"testing"

	"caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/settings"
	"caseflow-service/internal/store/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(memory.New(nil).Settings(), zap.NewNop())
}

func TestGetMaterializesDefaults(t *testing.T) {
	s := newService(t)

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.GlobalID, got.ID)
	assert.True(t, got.Notifications.EmailEnabled)
	assert.False(t, got.AutoStatus.Enabled)
	assert.Equal(t, 14, got.Notifications.InactivityThresholdDays)

	// The materialized document is persisted, not rebuilt per read.
	again, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, got.Notifications, again.Notifications)
}

func TestUpdateReplacesOnlyGivenSections(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	updated, err := s.Update(ctx, &settings.UpdateSettingsRequest{
		AutoStatus: &settings.AutoStatusRules{
			Enabled:        true,
			InactivityDays: 7,
			TargetStatus:   cases.StatusClosed,
		},
	})
	require.NoError(t, err)

	assert.True(t, updated.AutoStatus.Enabled)
	assert.Equal(t, 7, updated.AutoStatus.InactivityDays)
	// Untouched sections keep their defaults.
	assert.True(t, updated.Notifications.EmailEnabled)
	assert.Equal(t, "csv", updated.Exports.Format)
}

func TestResetRestoresDefaults(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.Update(ctx, &settings.UpdateSettingsRequest{
		Notifications: &settings.NotificationSettings{EmailEnabled: false, SMSEnabled: false, InactivityThresholdDays: 1},
	})
	require.NoError(t, err)

	got, err := s.Reset(ctx)
	require.NoError(t, err)
	assert.True(t, got.Notifications.EmailEnabled)
	assert.Equal(t, 14, got.Notifications.InactivityThresholdDays)
}
