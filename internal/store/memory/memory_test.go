package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"caseflow-service/internal/domain/admin"
	"caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/customer"
	"caseflow-service/internal/domain/history"
	xerrors "caseflow-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAdmin() *admin.Admin {
	return &admin.Admin{
		Username:     "root",
		Email:        "root@example.com",
		PasswordHash: "hash",
		DisplayName:  "Root",
		Role:         admin.RoleSuperAdmin,
	}
}

func TestNewSeedsBootstrapAdmin(t *testing.T) {
	s := New(seedAdmin())

	found, err := s.Admins().FindByUsername(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, admin.RoleSuperAdmin, found.Role)
	assert.NotEmpty(t, found.ID)
}

func TestCustomerNumbersAreSequential(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		c := &customer.Customer{Name: fmt.Sprintf("c%d", i), Phone: fmt.Sprintf("555%d", i)}
		require.NoError(t, s.Customers().Create(ctx, c))
		assert.Equal(t, fmt.Sprintf("CUST-%04d", i), c.Number)
	}
}

func TestFindByIDMissingReturnsNotFound(t *testing.T) {
	s := New(nil)

	_, err := s.Customers().FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, xerrors.ErrNotFound)

	_, err = s.Cases().FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestHistoryIsNewestFirst(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.History().Append(ctx, &history.Entry{
			CaseID:  "case-1",
			Type:    history.TypeUpdated,
			Message: fmt.Sprintf("entry %d", i),
		}))
	}

	entries, err := s.History().FindByCase(ctx, "case-1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "entry 3", entries[0].Message)
	assert.Equal(t, "entry 1", entries[2].Message)
}

func TestDeleteByCustomerRemovesAllCases(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, s.Cases().Create(ctx, &cases.Case{
			CustomerID: "cust-1",
			Model:      "TV",
			Serial:     fmt.Sprintf("sn-%d", i),
			Status:     cases.StatusNew,
		}))
	}
	require.NoError(t, s.Cases().Create(ctx, &cases.Case{
		CustomerID: "cust-2", Model: "Radio", Serial: "sn-other", Status: cases.StatusNew,
	}))

	require.NoError(t, s.Cases().DeleteByCustomer(ctx, "cust-1"))

	gone, err := s.Cases().FindByCustomer(ctx, "cust-1")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := s.Cases().FindByCustomer(ctx, "cust-2")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestFindOpenUpdatedBefore(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	mk := func(serial string, status cases.Status, age time.Duration) *cases.Case {
		c := &cases.Case{CustomerID: "cust-1", Model: "TV", Serial: serial, Status: status}
		require.NoError(t, s.Cases().Create(ctx, c))
		c.UpdatedAt = time.Now().UTC().Add(-age)
		require.NoError(t, s.Cases().Update(ctx, c))
		return c
	}

	stale := mk("stale", cases.StatusInProgress, 10*24*time.Hour)
	mk("fresh", cases.StatusInProgress, time.Hour)
	mk("closed", cases.StatusClosed, 10*24*time.Hour)
	mk("shipped", cases.StatusShipped, 10*24*time.Hour)

	cutoff := time.Now().UTC().AddDate(0, 0, -7)
	found, err := s.Cases().FindOpenUpdatedBefore(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, stale.ID, found[0].ID)
}

func TestSettingsGetBeforeSave(t *testing.T) {
	s := New(nil)

	_, err := s.Settings().Get(context.Background())
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}

func TestAdminCreateRejectsDuplicateUsername(t *testing.T) {
	s := New(seedAdmin())

	err := s.Admins().Create(context.Background(), &admin.Admin{
		Username: "root", Email: "other@example.com", DisplayName: "Other", Role: admin.RoleSubAdmin,
	})
	assert.ErrorIs(t, err, xerrors.ErrConflict)
}
