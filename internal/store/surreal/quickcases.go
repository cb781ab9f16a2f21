package surreal

import (
	"context"
	"fmt"
	"time"

	"caseflow-service/internal/domain/quickcase"
	xerrors "caseflow-service/internal/pkg/errors"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

type quickCaseDoc struct {
	ID            *models.RecordID      `json:"id,omitempty"`
	Phone         string                `json:"phone"`
	Notes         string                `json:"notes,omitempty"`
	Status        string                `json:"status"`
	CreatedBy     string                `json:"created_by"`
	CreatedByName string                `json:"created_by_name"`
	CreatedAt     models.CustomDateTime `json:"created_at"`
	UpdatedAt     models.CustomDateTime `json:"updated_at"`
}

func toQuickCaseDoc(q *quickcase.QuickCase) *quickCaseDoc {
	rid := models.NewRecordID(tableQuickCase, q.ID)
	return &quickCaseDoc{
		ID:            &rid,
		Phone:         q.Phone,
		Notes:         q.Notes,
		Status:        string(q.Status),
		CreatedBy:     q.CreatedBy,
		CreatedByName: q.CreatedByName,
		CreatedAt:     toDT(q.CreatedAt),
		UpdatedAt:     toDT(q.UpdatedAt),
	}
}

func (d *quickCaseDoc) toEntity() *quickcase.QuickCase {
	return &quickcase.QuickCase{
		ID:            ridString(d.ID),
		Phone:         d.Phone,
		Notes:         d.Notes,
		Status:        quickcase.Status(d.Status),
		CreatedBy:     d.CreatedBy,
		CreatedByName: d.CreatedByName,
		CreatedAt:     d.CreatedAt.Time,
		UpdatedAt:     d.UpdatedAt.Time,
	}
}

type quickCaseStore struct{ s *Store }

func (qs quickCaseStore) Create(ctx context.Context, q *quickcase.QuickCase) error {
	if q.ID == "" {
		q.ID = newID()
	}
	now := time.Now().UTC()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	q.UpdatedAt = now

	if _, err := surrealdb.Create[quickCaseDoc](ctx, qs.s.db, models.NewRecordID(tableQuickCase, q.ID), toQuickCaseDoc(q)); err != nil {
		return fmt.Errorf("create quick case: %w", err)
	}
	return nil
}

func (qs quickCaseStore) FindByID(ctx context.Context, id string) (*quickcase.QuickCase, error) {
	doc, err := surrealdb.Select[quickCaseDoc](ctx, qs.s.db, models.NewRecordID(tableQuickCase, id))
	if err != nil {
		if isNotFound(err) {
			return nil, xerrors.ErrNotFound
		}
		return nil, fmt.Errorf("find quick case: %w", err)
	}
	if doc == nil || doc.ID == nil {
		return nil, xerrors.ErrNotFound
	}
	return doc.toEntity(), nil
}

func (qs quickCaseStore) FindByStatus(ctx context.Context, status quickcase.Status) ([]*quickcase.QuickCase, error) {
	rows, err := queryRows[quickCaseDoc](ctx, qs.s.db,
		"SELECT * FROM quick_case WHERE status = $status ORDER BY created_at DESC",
		map[string]any{"status": string(status)})
	if err != nil {
		return nil, fmt.Errorf("list quick cases: %w", err)
	}
	out := make([]*quickcase.QuickCase, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

func (qs quickCaseStore) Update(ctx context.Context, q *quickcase.QuickCase) error {
	if _, err := qs.FindByID(ctx, q.ID); err != nil {
		return err
	}
	q.UpdatedAt = time.Now().UTC()
	if _, err := surrealdb.Update[quickCaseDoc](ctx, qs.s.db, models.NewRecordID(tableQuickCase, q.ID), toQuickCaseDoc(q)); err != nil {
		return fmt.Errorf("update quick case: %w", err)
	}
	return nil
}

func (qs quickCaseStore) Delete(ctx context.Context, id string) error {
	if _, err := qs.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := surrealdb.Delete[quickCaseDoc](ctx, qs.s.db, models.NewRecordID(tableQuickCase, id)); err != nil {
		return fmt.Errorf("delete quick case: %w", err)
	}
	return nil
}
