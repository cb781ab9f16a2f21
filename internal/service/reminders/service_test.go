package reminders

import (
	"context"
	"testing"

	"caseflow-service/internal/domain/admin"
	"caseflow-service/internal/domain/reminder"
	"caseflow-service/internal/pkg/actor"
	xerrors "caseflow-service/internal/pkg/errors"
	"caseflow-service/internal/service/appsettings"
	"caseflow-service/internal/store/memory"
	"caseflow-service/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	store    *memory.Store
	service  *Service
	assigner actor.Actor
	assignee actor.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := memory.New(nil)
	logger := zap.NewNop()
	ctx := context.Background()

	boss := &admin.Admin{Username: "boss", Email: "boss@example.com", DisplayName: "Boss", Role: admin.RoleSuperAdmin}
	require.NoError(t, st.Admins().Create(ctx, boss))
	tech := &admin.Admin{Username: "tech", Email: "tech@example.com", DisplayName: "Tech", Role: admin.RoleSubAdmin}
	require.NoError(t, st.Admins().Create(ctx, tech))

	settings := appsettings.NewService(st.Settings(), logger)
	svc := NewService(st.Reminders(), st.Admins(), settings, ws.NewHub(logger), logger)

	return &fixture{
		store:    st,
		service:  svc,
		assigner: actor.Actor{ID: boss.ID, Name: boss.DisplayName, Role: string(boss.Role)},
		assignee: actor.Actor{ID: tech.ID, Name: tech.DisplayName, Role: string(tech.Role)},
	}
}

func (f *fixture) create(t *testing.T) *reminder.Reminder {
	t.Helper()
	r, err := f.service.Create(context.Background(), f.assigner, &reminder.CreateReminderRequest{
		Title:      "Call the parts supplier",
		AssignedTo: []string{f.assignee.ID},
	})
	require.NoError(t, err)
	return r
}

func TestCreateDenormalizesNamesAndDefaults(t *testing.T) {
	f := newFixture(t)
	r := f.create(t)

	assert.Equal(t, []string{"Tech"}, r.AssignedToNames)
	assert.Equal(t, "Boss", r.AssignedByName)
	assert.Equal(t, reminder.StatusPending, r.Status)
	assert.Equal(t, reminder.PriorityMedium, r.Priority)
	require.NotNil(t, r.DueDate)
}

func TestCreateRejectsUnknownAssignee(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Create(context.Background(), f.assigner, &reminder.CreateReminderRequest{
		Title:      "Misaddressed",
		AssignedTo: []string{"ghost"},
	})
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
}

func TestOnlyAssigneeChangesStatus(t *testing.T) {
	f := newFixture(t)
	r := f.create(t)
	ctx := context.Background()

	_, err := f.service.UpdateStatus(ctx, f.assigner, r.ID, reminder.StatusCompleted)
	assert.ErrorIs(t, err, xerrors.ErrForbidden)

	updated, err := f.service.UpdateStatus(ctx, f.assignee, r.ID, reminder.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, reminder.StatusCompleted, updated.Status)
	assert.True(t, updated.HasUpdate, "assigner must be flagged about the change")
}

func TestAssignerReadClearsUpdateFlag(t *testing.T) {
	f := newFixture(t)
	r := f.create(t)
	ctx := context.Background()

	_, err := f.service.UpdateStatus(ctx, f.assignee, r.ID, reminder.StatusInProgress)
	require.NoError(t, err)

	read, err := f.service.MarkRead(ctx, f.assigner, r.ID)
	require.NoError(t, err)
	assert.False(t, read.HasUpdate)
}

func TestAssigneeReadIsTracked(t *testing.T) {
	f := newFixture(t)
	r := f.create(t)

	read, err := f.service.MarkRead(context.Background(), f.assignee, r.ID)
	require.NoError(t, err)
	assert.Contains(t, read.ReadBy, f.assignee.ID)
}

func TestOnlyAssignerDeletes(t *testing.T) {
	f := newFixture(t)
	r := f.create(t)
	ctx := context.Background()

	err := f.service.Delete(ctx, f.assignee, r.ID)
	assert.ErrorIs(t, err, xerrors.ErrForbidden)

	require.NoError(t, f.service.Delete(ctx, f.assigner, r.ID))

	_, err = f.service.Get(ctx, r.ID)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}
