package customers

import (
	"context"
	"regexp"
	"testing"

	casedomain "caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/customer"
	"caseflow-service/internal/domain/history"
	"caseflow-service/internal/pkg/actor"
	xerrors "caseflow-service/internal/pkg/errors"
	"caseflow-service/internal/service/audit"
	"caseflow-service/internal/store/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var tech = actor.Actor{ID: "adm-1", Name: "Tech One", Role: "subadmin"}

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
	return &fixture{
		store:   st,
		ledger:  ledger,
		service: NewService(st.Customers(), st.Cases(), ledger, logger),
	}
}

func TestCreateAssignsNumberAndAudits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.service.Create(ctx, tech, &customer.CreateCustomerRequest{
		Name:    "A. Lee",
		Phone:   "5551230000",
		Email:   "a@x.com",
		Address: "1 Main St",
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^CUST-\d{4}$`), c.Number)
	assert.True(t, c.Prefs.Email)
	assert.True(t, c.Prefs.SMS)
	assert.Equal(t, tech.ID, c.CreatedBy)

	entries, err := f.ledger.ForCustomer(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, history.TypeCreated, entries[0].Type)
	assert.Equal(t, tech.ID, entries[0].Actor.ID)
}

func TestCreateHonorsPreferenceFlags(t *testing.T) {
	f := newFixture(t)
	off := false

	c, err := f.service.Create(context.Background(), tech, &customer.CreateCustomerRequest{
		Name:               "B. Ray",
		Phone:              "5559870000",
		SMSNotifications:   &off,
		EmailNotifications: &off,
	})
	require.NoError(t, err)
	assert.False(t, c.Prefs.Email)
	assert.False(t, c.Prefs.SMS)
}

func TestUpdateWritesOneEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.service.Create(ctx, tech, &customer.CreateCustomerRequest{Name: "A. Lee", Phone: "5551230000"})
	require.NoError(t, err)

	addr := "2 Oak Ave"
	updated, err := f.service.Update(ctx, tech, c.ID, &customer.UpdateCustomerRequest{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, addr, updated.Address)

	entries, err := f.ledger.ForCustomer(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, history.TypeUpdated, entries[0].Type)
}

func TestDeleteCascadesToCases(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.service.Create(ctx, tech, &customer.CreateCustomerRequest{Name: "A. Lee", Phone: "5551230000"})
	require.NoError(t, err)

	for _, sn := range []string{"sn-1", "sn-2"} {
		require.NoError(t, f.store.Cases().Create(ctx, &casedomain.Case{
			CustomerID: c.ID, Model: "TV", Serial: sn, Status: casedomain.StatusNew,
		}))
	}

	require.NoError(t, f.service.Delete(ctx, tech, c.ID))

	_, err = f.store.Customers().FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)

	orphans, err := f.store.Cases().FindByCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, orphans, "no orphaned cases may remain")

	// The timeline outlives the record.
	entries, err := f.ledger.ForCustomer(ctx, c.ID)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, history.TypeDeleted, entries[0].Type)
}
