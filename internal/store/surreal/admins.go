package surreal

import (
	"context"
	"fmt"
	"time"

	"caseflow-service/internal/domain/admin"
	xerrors "caseflow-service/internal/pkg/errors"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

type adminDoc struct {
	ID           *models.RecordID      `json:"id,omitempty"`
	Username     string                `json:"username"`
	Email        string                `json:"email"`
	PasswordHash string                `json:"password_hash"`
	DisplayName  string                `json:"display_name"`
	Role         string                `json:"role"`
	Avatar       string                `json:"avatar,omitempty"`
	CreatedAt    models.CustomDateTime `json:"created_at"`
	UpdatedAt    models.CustomDateTime `json:"updated_at"`
}

func toAdminDoc(a *admin.Admin) *adminDoc {
	rid := models.NewRecordID(tableAdmin, a.ID)
	return &adminDoc{
		ID:           &rid,
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		DisplayName:  a.DisplayName,
		Role:         string(a.Role),
		Avatar:       a.Avatar,
		CreatedAt:    toDT(a.CreatedAt),
		UpdatedAt:    toDT(a.UpdatedAt),
	}
}

func (d *adminDoc) toEntity() *admin.Admin {
	return &admin.Admin{
		ID:           ridString(d.ID),
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		DisplayName:  d.DisplayName,
		Role:         admin.Role(d.Role),
		Avatar:       d.Avatar,
		CreatedAt:    d.CreatedAt.Time,
		UpdatedAt:    d.UpdatedAt.Time,
	}
}

type adminStore struct{ s *Store }

func (as adminStore) Create(ctx context.Context, a *admin.Admin) error {
	taken, err := queryRows[adminDoc](ctx, as.s.db,
		"SELECT * FROM admin WHERE username = $username OR email = $email",
		map[string]any{"username": a.Username, "email": a.Email})
	if err != nil {
		return fmt.Errorf("check admin uniqueness: %w", err)
	}
	if len(taken) > 0 {
		return xerrors.ErrConflict
	}

	if a.ID == "" {
		a.ID = newID()
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	if _, err := surrealdb.Create[adminDoc](ctx, as.s.db, models.NewRecordID(tableAdmin, a.ID), toAdminDoc(a)); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

func (as adminStore) FindByID(ctx context.Context, id string) (*admin.Admin, error) {
	doc, err := surrealdb.Select[adminDoc](ctx, as.s.db, models.NewRecordID(tableAdmin, id))
	if err != nil {
		if isNotFound(err) {
			return nil, xerrors.ErrNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if doc == nil || doc.ID == nil {
		return nil, xerrors.ErrNotFound
	}
	return doc.toEntity(), nil
}

func (as adminStore) FindByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	rows, err := queryRows[adminDoc](ctx, as.s.db,
		"SELECT * FROM admin WHERE username = $username LIMIT 1",
		map[string]any{"username": username})
	if err != nil {
		return nil, fmt.Errorf("find admin by username: %w", err)
	}
	if len(rows) == 0 {
		return nil, xerrors.ErrNotFound
	}
	return rows[0].toEntity(), nil
}

func (as adminStore) FindAll(ctx context.Context) ([]*admin.Admin, error) {
	docs, err := surrealdb.Select[[]adminDoc](ctx, as.s.db, tableAdmin)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	out := make([]*admin.Admin, 0, len(*docs))
	for i := range *docs {
		out = append(out, (*docs)[i].toEntity())
	}
	return out, nil
}

func (as adminStore) Update(ctx context.Context, a *admin.Admin) error {
	if _, err := as.FindByID(ctx, a.ID); err != nil {
		return err
	}
	a.UpdatedAt = time.Now().UTC()
	if _, err := surrealdb.Update[adminDoc](ctx, as.s.db, models.NewRecordID(tableAdmin, a.ID), toAdminDoc(a)); err != nil {
		return fmt.Errorf("update admin: %w", err)
	}
	return nil
}

func (as adminStore) Delete(ctx context.Context, id string) error {
	if _, err := as.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := surrealdb.Delete[adminDoc](ctx, as.s.db, models.NewRecordID(tableAdmin, id)); err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	return nil
}
