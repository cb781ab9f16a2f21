package surreal

import (
	"context"
	"fmt"
	"time"

	"caseflow-service/internal/domain/history"
	"caseflow-service/internal/pkg/actor"
	xerrors "caseflow-service/internal/pkg/errors"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

type actorDoc struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

type historyDoc struct {
	ID         *models.RecordID      `json:"id,omitempty"`
	CaseID     string                `json:"case_id,omitempty"`
	CustomerID string                `json:"customer_id,omitempty"`
	Type       string                `json:"type"`
	Message    string                `json:"message"`
	Actor      actorDoc              `json:"actor"`
	Metadata   map[string]string     `json:"metadata,omitempty"`
	CreatedAt  models.CustomDateTime `json:"created_at"`
}

func toHistoryDoc(e *history.Entry) *historyDoc {
	rid := models.NewRecordID(tableHistory, e.ID)
	return &historyDoc{
		ID:         &rid,
		CaseID:     e.CaseID,
		CustomerID: e.CustomerID,
		Type:       string(e.Type),
		Message:    e.Message,
		Actor: actorDoc{
			ID:     e.Actor.ID,
			Name:   e.Actor.Name,
			Role:   e.Actor.Role,
			Avatar: e.Actor.Avatar,
		},
		Metadata:  e.Metadata,
		CreatedAt: toDT(e.CreatedAt),
	}
}

func (d *historyDoc) toEntity() *history.Entry {
	return &history.Entry{
		ID:         ridString(d.ID),
		CaseID:     d.CaseID,
		CustomerID: d.CustomerID,
		Type:       history.EntryType(d.Type),
		Message:    d.Message,
		Actor: actor.Actor{
			ID:     d.Actor.ID,
			Name:   d.Actor.Name,
			Role:   d.Actor.Role,
			Avatar: d.Actor.Avatar,
		},
		Metadata:  d.Metadata,
		CreatedAt: d.CreatedAt.Time,
	}
}

type historyStore struct{ s *Store }

func (hs historyStore) Append(ctx context.Context, e *history.Entry) error {
	if e.CaseID == "" && e.CustomerID == "" {
		return xerrors.ErrInvalidInput
	}
	if e.ID == "" {
		e.ID = newID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	if _, err := surrealdb.Create[historyDoc](ctx, hs.s.db, models.NewRecordID(tableHistory, e.ID), toHistoryDoc(e)); err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}
	return nil
}

func (hs historyStore) FindByCase(ctx context.Context, caseID string) ([]*history.Entry, error) {
	rows, err := queryRows[historyDoc](ctx, hs.s.db,
		"SELECT * FROM interaction_history WHERE case_id = $case ORDER BY created_at DESC",
		map[string]any{"case": caseID})
	if err != nil {
		return nil, fmt.Errorf("history for case: %w", err)
	}
	return docsToEntries(rows), nil
}

func (hs historyStore) FindByCustomer(ctx context.Context, customerID string) ([]*history.Entry, error) {
	rows, err := queryRows[historyDoc](ctx, hs.s.db,
		"SELECT * FROM interaction_history WHERE customer_id = $customer ORDER BY created_at DESC",
		map[string]any{"customer": customerID})
	if err != nil {
		return nil, fmt.Errorf("history for customer: %w", err)
	}
	return docsToEntries(rows), nil
}

func docsToEntries(rows []historyDoc) []*history.Entry {
	out := make([]*history.Entry, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out
}
