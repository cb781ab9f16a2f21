package auth

import (
	"context"
	"testing"

	"caseflow-service/internal/domain/admin"
	"caseflow-service/internal/pkg/actor"
	xerrors "caseflow-service/internal/pkg/errors"
	"caseflow-service/internal/store/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	st := memory.New(&admin.Admin{
		Username:     "root",
		Email:        "root@example.com",
		PasswordHash: string(hash),
		DisplayName:  "Root",
		Role:         admin.RoleSuperAdmin,
	})
	return NewService(st.Admins(), "test-secret", zap.NewNop()), st
}

func superActor(t *testing.T, st *memory.Store) actor.Actor {
	t.Helper()
	a, err := st.Admins().FindByUsername(context.Background(), "root")
	require.NoError(t, err)
	return actor.Actor{ID: a.ID, Name: a.DisplayName, Role: string(a.Role)}
}

func TestLoginAndVerifyToken(t *testing.T) {
	s, _ := newService(t)

	res, err := s.Login(context.Background(), &admin.LoginRequest{Username: "root", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	act, err := s.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Admin.ID, act.ID)
	assert.Equal(t, "Root", act.Name)
	assert.Equal(t, string(admin.RoleSuperAdmin), act.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	s, _ := newService(t)

	_, err := s.Login(context.Background(), &admin.LoginRequest{Username: "root", Password: "wrong"})
	assert.ErrorIs(t, err, xerrors.ErrUnauthorized)
}

func TestLoginUnknownUser(t *testing.T) {
	s, _ := newService(t)

	_, err := s.Login(context.Background(), &admin.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, xerrors.ErrUnauthorized)
}

func TestVerifyTokenGarbage(t *testing.T) {
	s, _ := newService(t)

	_, err := s.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, xerrors.ErrUnauthorized)
}

func TestCreateSubAdmin(t *testing.T) {
	s, st := newService(t)
	ctx := context.Background()

	created, err := s.CreateSubAdmin(ctx, superActor(t, st), &admin.CreateAdminRequest{
		Username:    "tech1",
		Email:       "tech1@example.com",
		Password:    "another-pass",
		DisplayName: "Tech One",
	})
	require.NoError(t, err)
	assert.Equal(t, admin.RoleSubAdmin, created.Role)

	// The new account can sign in.
	_, err = s.Login(ctx, &admin.LoginRequest{Username: "tech1", Password: "another-pass"})
	assert.NoError(t, err)
}

func TestSubAdminCannotCreateAdmins(t *testing.T) {
	s, _ := newService(t)

	_, err := s.CreateSubAdmin(context.Background(), actor.Actor{ID: "x", Role: string(admin.RoleSubAdmin)}, &admin.CreateAdminRequest{
		Username: "tech2", Email: "t2@example.com", Password: "pass-word", DisplayName: "Tech Two",
	})
	assert.ErrorIs(t, err, xerrors.ErrForbidden)
}

func TestSuperAdminCannotBeDeleted(t *testing.T) {
	s, st := newService(t)
	sup := superActor(t, st)

	err := s.DeleteAdmin(context.Background(), sup, sup.ID)
	assert.ErrorIs(t, err, xerrors.ErrForbidden)
}

func TestDeleteSubAdmin(t *testing.T) {
	s, st := newService(t)
	ctx := context.Background()
	sup := superActor(t, st)

	created, err := s.CreateSubAdmin(ctx, sup, &admin.CreateAdminRequest{
		Username: "tech3", Email: "t3@example.com", Password: "pass-word", DisplayName: "Tech Three",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteAdmin(ctx, sup, created.ID))

	_, err = st.Admins().FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, xerrors.ErrNotFound)
}
