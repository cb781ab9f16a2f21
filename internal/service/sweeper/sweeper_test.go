package sweeper

import (
	"context"
	"testing"
	"time"

	casedomain "caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/customer"
	"caseflow-service/internal/domain/history"
	"caseflow-service/internal/domain/settings"
	"caseflow-service/internal/service/appsettings"
	"caseflow-service/internal/service/audit"
	caseservice "caseflow-service/internal/service/cases"
	"caseflow-service/internal/service/notify"
	"caseflow-service/internal/store/memory"
	"caseflow-service/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nullEmail struct{}

func (nullEmail) Configured() bool                                      { return false }
func (nullEmail) Send(ctx context.Context, to, subject, b string) error { return nil }

type nullSMS struct{}

func (nullSMS) Configured() bool                             { return false }
func (nullSMS) Send(ctx context.Context, to, b string) error { return nil }

type fixture struct {
	store    *memory.Store
	ledger   *audit.Ledger
	settings *appsettings.Service
	sweeper  *Sweeper
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := memory.New(nil)
	logger := zap.NewNop()
	ledger := audit.NewLedger(st.History(), logger)
	settingsSvc := appsettings.NewService(st.Settings(), logger)
	notifier := notify.NewDispatcher(settingsSvc, nullEmail{}, nullSMS{}, "Acme Repairs", logger)
	caseSvc := caseservice.NewService(st.Cases(), st.Customers(), ledger, notifier, logger)
	hub := ws.NewHub(logger)
	return &fixture{
		store:    st,
		ledger:   ledger,
		settings: settingsSvc,
		sweeper:  New(settingsSvc, caseSvc, st.Cases(), st.Customers(), hub, logger, 0, 0),
	}
}

func (f *fixture) enableAutoStatus(t *testing.T, days int, target casedomain.Status) {
	t.Helper()
	_, err := f.settings.Update(context.Background(), &settings.UpdateSettingsRequest{
		AutoStatus: &settings.AutoStatusRules{
			Enabled:        true,
			InactivityDays: days,
			TargetStatus:   target,
		},
	})
	require.NoError(t, err)
}

// backdatedCase creates a case and pushes its UpdatedAt into the past.
func (f *fixture) backdatedCase(t *testing.T, serial string, status casedomain.Status, daysOld int) *casedomain.Case {
	t.Helper()
	ctx := context.Background()

	cust := &customer.Customer{Name: "A. Lee", Phone: "555-" + serial}
	require.NoError(t, f.store.Customers().Create(ctx, cust))

	c := &casedomain.Case{CustomerID: cust.ID, Model: "TV", Serial: serial, Status: status}
	require.NoError(t, f.store.Cases().Create(ctx, c))

	c.UpdatedAt = time.Now().UTC().AddDate(0, 0, -daysOld)
	require.NoError(t, f.store.Cases().Update(ctx, c))
	return c
}

func TestSweepTransitionsStaleOpenCases(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	target := casedomain.Status("Pending Follow-Up")
	f.enableAutoStatus(t, 7, target)

	stale := f.backdatedCase(t, "sn-stale", casedomain.StatusInProgress, 10)
	fresh := f.backdatedCase(t, "sn-fresh", casedomain.StatusInProgress, 1)
	closed := f.backdatedCase(t, "sn-closed", casedomain.StatusClosed, 30)
	shipped := f.backdatedCase(t, "sn-shipped", casedomain.StatusShipped, 30)

	n, err := f.sweeper.SweepOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := f.store.Cases().FindByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, target, got.Status)

	for _, untouched := range []*casedomain.Case{fresh, closed, shipped} {
		got, err := f.store.Cases().FindByID(ctx, untouched.ID)
		require.NoError(t, err)
		assert.Equal(t, untouched.Status, got.Status)
	}
}

func TestSweepRefreshesUpdatedAt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.enableAutoStatus(t, 7, casedomain.StatusClosed)

	stale := f.backdatedCase(t, "sn-stale", casedomain.StatusInProgress, 10)

	_, err := f.sweeper.SweepOnce(ctx)
	require.NoError(t, err)

	got, err := f.store.Cases().FindByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), got.UpdatedAt, time.Minute)
}

func TestSweepWritesAuditEntryUnderSystemActor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.enableAutoStatus(t, 7, casedomain.StatusClosed)

	stale := f.backdatedCase(t, "sn-stale", casedomain.StatusInProgress, 10)

	_, err := f.sweeper.SweepOnce(ctx)
	require.NoError(t, err)

	entries, err := f.ledger.ForCase(ctx, stale.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, history.TypeStatusChanged, entries[0].Type)
	assert.Equal(t, "system", entries[0].Actor.ID)
	assert.Equal(t, string(casedomain.StatusInProgress), entries[0].Metadata["old_status"])
	assert.Equal(t, string(casedomain.StatusClosed), entries[0].Metadata["new_status"])
}

func TestSweepDisabledIsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stale := f.backdatedCase(t, "sn-stale", casedomain.StatusInProgress, 100)

	n, err := f.sweeper.SweepOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := f.store.Cases().FindByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, casedomain.StatusInProgress, got.Status)
}

func TestScanCountsStaleCasesWithoutMutating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stale := f.backdatedCase(t, "sn-stale", casedomain.StatusAwaitingParts, 20)
	f.backdatedCase(t, "sn-fresh", casedomain.StatusInProgress, 1)

	n, err := f.sweeper.ScanOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := f.store.Cases().FindByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, casedomain.StatusAwaitingParts, got.Status)
}
