package quickcase

import (
	"context"
	"testing"

	casedomain "caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/customer"
	qc "caseflow-service/internal/domain/quickcase"
	"caseflow-service/internal/pkg/actor"
	xerrors "caseflow-service/internal/pkg/errors"
	"caseflow-service/internal/service/appsettings"
	"caseflow-service/internal/service/audit"
	caseservice "caseflow-service/internal/service/cases"
	customerservice "caseflow-service/internal/service/customers"
	"caseflow-service/internal/service/notify"
	"caseflow-service/internal/store/memory"

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

var tech = actor.Actor{ID: "adm-1", Name: "Tech One", Role: "subadmin"}

type fixture struct {
	store   *memory.Store
	service *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := memory.New(nil)
	logger := zap.NewNop()
	ledger := audit.NewLedger(st.History(), logger)
	settings := appsettings.NewService(st.Settings(), logger)
	notifier := notify.NewDispatcher(settings, nullEmail{}, nullSMS{}, "Acme Repairs", logger)
	caseSvc := caseservice.NewService(st.Cases(), st.Customers(), ledger, notifier, logger)
	custSvc := customerservice.NewService(st.Customers(), st.Cases(), ledger, logger)
	return &fixture{
		store:   st,
		service: NewService(st.QuickCases(), custSvc, caseSvc, logger),
	}
}

func TestCreateDenormalizesActorName(t *testing.T) {
	f := newFixture(t)

	q, err := f.service.Create(context.Background(), tech, &qc.CreateQuickCaseRequest{
		Phone: "5551230000",
		Notes: "TV won't turn on",
	})
	require.NoError(t, err)
	assert.Equal(t, qc.StatusIncomplete, q.Status)
	assert.Equal(t, tech.ID, q.CreatedBy)
	assert.Equal(t, tech.Name, q.CreatedByName)
}

func TestPromoteCreatesCustomerAndCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	q, err := f.service.Create(ctx, tech, &qc.CreateQuickCaseRequest{Phone: "5551230000"})
	require.NoError(t, err)

	before, err := f.service.Get(ctx, q.ID)
	require.NoError(t, err)
	require.Equal(t, qc.StatusIncomplete, before.Status)

	res, err := f.service.Promote(ctx, tech, q.ID,
		&customer.CreateCustomerRequest{Name: "A. Lee", Phone: "ignored", Email: "a@x.com"},
		&casedomain.CreateCaseRequest{Model: "TV X100", Serial: "sn-1"},
	)
	require.NoError(t, err)

	after, err := f.service.Get(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, qc.StatusCompleted, after.Status)

	// The lead's phone is authoritative, whatever the payload said.
	assert.Equal(t, "5551230000", res.Customer.Phone)

	caseList, err := f.store.Cases().FindByCustomer(ctx, res.Customer.ID)
	require.NoError(t, err)
	require.Len(t, caseList, 1)
	assert.Equal(t, res.Case.ID, caseList[0].ID)
}

func TestPromoteTwiceConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	q, err := f.service.Create(ctx, tech, &qc.CreateQuickCaseRequest{Phone: "5551230000"})
	require.NoError(t, err)

	_, err = f.service.Promote(ctx, tech, q.ID,
		&customer.CreateCustomerRequest{Name: "A. Lee", Phone: "5551230000"},
		&casedomain.CreateCaseRequest{Model: "TV", Serial: "sn-1"},
	)
	require.NoError(t, err)

	_, err = f.service.Promote(ctx, tech, q.ID,
		&customer.CreateCustomerRequest{Name: "A. Lee", Phone: "5551230000"},
		&casedomain.CreateCaseRequest{Model: "TV", Serial: "sn-2"},
	)
	assert.ErrorIs(t, err, xerrors.ErrConflict)
}

func TestDeleteOnlyIncompleteLeads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	q, err := f.service.Create(ctx, tech, &qc.CreateQuickCaseRequest{Phone: "5551230000"})
	require.NoError(t, err)
	require.NoError(t, f.service.Delete(ctx, q.ID))

	q2, err := f.service.Create(ctx, tech, &qc.CreateQuickCaseRequest{Phone: "5559990000"})
	require.NoError(t, err)
	_, err = f.service.Promote(ctx, tech, q2.ID,
		&customer.CreateCustomerRequest{Name: "B. Ray", Phone: "5559990000"},
		&casedomain.CreateCaseRequest{Model: "Radio", Serial: "sn-9"},
	)
	require.NoError(t, err)

	err = f.service.Delete(ctx, q2.ID)
	assert.ErrorIs(t, err, xerrors.ErrConflict)
}
