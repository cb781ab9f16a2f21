package cases

import (
	"context"
	"testing"

	casedomain "caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/customer"
	"caseflow-service/internal/domain/history"
	"caseflow-service/internal/pkg/actor"
	xerrors "caseflow-service/internal/pkg/errors"
	"caseflow-service/internal/service/appsettings"
	"caseflow-service/internal/service/audit"
	"caseflow-service/internal/service/notify"
	"caseflow-service/internal/store/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nullEmail struct{}

func (nullEmail) Configured() bool                                     { return false }
func (nullEmail) Send(ctx context.Context, to, subject, b string) error { return nil }

type nullSMS struct{}

func (nullSMS) Configured() bool                            { return false }
func (nullSMS) Send(ctx context.Context, to, b string) error { return nil }

type fixture struct {
	store   *memory.Store
	ledger  *audit.Ledger
	service *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := memory.New(nil)
	logger := zap.NewNop()
	ledger := audit.NewLedger(st.History(), logger)
	settings := appsettings.NewService(st.Settings(), logger)
	notifier := notify.NewDispatcher(settings, nullEmail{}, nullSMS{}, "Acme Repairs", logger)
	return &fixture{
		store:   st,
		ledger:  ledger,
		service: NewService(st.Cases(), st.Customers(), ledger, notifier, logger),
	}
}

func (f *fixture) customer(t *testing.T) *customer.Customer {
	t.Helper()
	c := &customer.Customer{Name: "A. Lee", Phone: "5551230000", Email: "a@x.com"}
	require.NoError(t, f.store.Customers().Create(context.Background(), c))
	return c
}

var tech = actor.Actor{ID: "adm-1", Name: "Tech One", Role: "subadmin"}

func TestCreateWritesOneCreatedEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cust := f.customer(t)

	c, _, err := f.service.Create(ctx, tech, &casedomain.CreateCaseRequest{
		CustomerID: cust.ID,
		Model:      "TV X100",
		Serial:     "sn-1",
	})
	require.NoError(t, err)
	assert.Equal(t, casedomain.StatusNew, c.Status)
	assert.Equal(t, casedomain.PaymentPending, c.PaymentStatus)

	entries, err := f.ledger.ForCase(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, history.TypeCreated, entries[0].Type)
	assert.Equal(t, tech.ID, entries[0].Actor.ID)
	assert.Equal(t, tech.Name, entries[0].Actor.Name)
}

func TestCreateRejectsMissingCustomer(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.service.Create(context.Background(), tech, &casedomain.CreateCaseRequest{
		CustomerID: "ghost",
		Model:      "TV",
		Serial:     "sn-1",
	})
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestStatusChangeWritesExactlyOneEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cust := f.customer(t)

	c, _, err := f.service.Create(ctx, tech, &casedomain.CreateCaseRequest{
		CustomerID: cust.ID, Model: "TV", Serial: "sn-1",
	})
	require.NoError(t, err)

	closed := casedomain.StatusClosed
	updated, _, err := f.service.Update(ctx, tech, c.ID, &casedomain.UpdateCaseRequest{Status: &closed})
	require.NoError(t, err)
	assert.Equal(t, casedomain.StatusClosed, updated.Status)

	entries, err := f.ledger.ForCase(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	latest := entries[0]
	assert.Equal(t, history.TypeStatusChanged, latest.Type)
	assert.Equal(t, string(casedomain.StatusNew), latest.Metadata["old_status"])
	assert.Equal(t, string(casedomain.StatusClosed), latest.Metadata["new_status"])
	assert.NotEqual(t, latest.Metadata["old_status"], latest.Metadata["new_status"])
}

func TestNonStatusUpdateNeverWritesStatusChanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cust := f.customer(t)

	c, _, err := f.service.Create(ctx, tech, &casedomain.CreateCaseRequest{
		CustomerID: cust.ID, Model: "TV", Serial: "sn-1",
	})
	require.NoError(t, err)

	details := "replaced the power board"
	_, _, err = f.service.Update(ctx, tech, c.ID, &casedomain.UpdateCaseRequest{RepairDetails: &details})
	require.NoError(t, err)

	entries, err := f.ledger.ForCase(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, history.TypeUpdated, entries[0].Type)
	for _, e := range entries {
		assert.NotEqual(t, history.TypeStatusChanged, e.Type)
	}
}

func TestClosedCaseLeavesOpenQuery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cust := f.customer(t)

	c, _, err := f.service.Create(ctx, tech, &casedomain.CreateCaseRequest{
		CustomerID: cust.ID, Model: "TV", Serial: "sn-1",
	})
	require.NoError(t, err)

	closed := casedomain.StatusClosed
	_, _, err = f.service.Update(ctx, tech, c.ID, &casedomain.UpdateCaseRequest{Status: &closed})
	require.NoError(t, err)

	open, err := f.service.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestDeleteRecordsLedgerEntryFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cust := f.customer(t)

	c, _, err := f.service.Create(ctx, tech, &casedomain.CreateCaseRequest{
		CustomerID: cust.ID, Model: "TV", Serial: "sn-1",
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, tech, c.ID))

	_, err = f.service.Get(ctx, c.ID)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)

	entries, err := f.ledger.ForCase(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, history.TypeDeleted, entries[0].Type)
}
