package surreal

import (
	"context"
	"fmt"
	"time"

	"caseflow-service/internal/domain/reminder"
	xerrors "caseflow-service/internal/pkg/errors"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

type reminderDoc struct {
	ID          *models.RecordID `json:"id,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Priority    string           `json:"priority"`
	Status      string           `json:"status"`

	AssignedTo      []string `json:"assigned_to"`
	AssignedToNames []string `json:"assigned_to_names"`
	AssignedBy      string   `json:"assigned_by"`
	AssignedByName  string   `json:"assigned_by_name"`

	DueDate *models.CustomDateTime `json:"due_date,omitempty"`

	ReadBy    []string `json:"read_by"`
	HasUpdate bool     `json:"has_update"`

	CreatedAt models.CustomDateTime `json:"created_at"`
	UpdatedAt models.CustomDateTime `json:"updated_at"`
}

func toReminderDoc(r *reminder.Reminder) *reminderDoc {
	rid := models.NewRecordID(tableReminder, r.ID)
	return &reminderDoc{
		ID:              &rid,
		Title:           r.Title,
		Description:     r.Description,
		Priority:        string(r.Priority),
		Status:          string(r.Status),
		AssignedTo:      r.AssignedTo,
		AssignedToNames: r.AssignedToNames,
		AssignedBy:      r.AssignedBy,
		AssignedByName:  r.AssignedByName,
		DueDate:         toDTPtr(r.DueDate),
		ReadBy:          r.ReadBy,
		HasUpdate:       r.HasUpdate,
		CreatedAt:       toDT(r.CreatedAt),
		UpdatedAt:       toDT(r.UpdatedAt),
	}
}

func (d *reminderDoc) toEntity() *reminder.Reminder {
	return &reminder.Reminder{
		ID:              ridString(d.ID),
		Title:           d.Title,
		Description:     d.Description,
		Priority:        reminder.Priority(d.Priority),
		Status:          reminder.Status(d.Status),
		AssignedTo:      d.AssignedTo,
		AssignedToNames: d.AssignedToNames,
		AssignedBy:      d.AssignedBy,
		AssignedByName:  d.AssignedByName,
		DueDate:         fromDTPtr(d.DueDate),
		ReadBy:          d.ReadBy,
		HasUpdate:       d.HasUpdate,
		CreatedAt:       d.CreatedAt.Time,
		UpdatedAt:       d.UpdatedAt.Time,
	}
}

type reminderStore struct{ s *Store }

func (rs reminderStore) Create(ctx context.Context, r *reminder.Reminder) error {
	if r.ID == "" {
		r.ID = newID()
	}
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	if _, err := surrealdb.Create[reminderDoc](ctx, rs.s.db, models.NewRecordID(tableReminder, r.ID), toReminderDoc(r)); err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}
	return nil
}

func (rs reminderStore) FindByID(ctx context.Context, id string) (*reminder.Reminder, error) {
	doc, err := surrealdb.Select[reminderDoc](ctx, rs.s.db, models.NewRecordID(tableReminder, id))
	if err != nil {
		if isNotFound(err) {
			return nil, xerrors.ErrNotFound
		}
		return nil, fmt.Errorf("find reminder: %w", err)
	}
	if doc == nil || doc.ID == nil {
		return nil, xerrors.ErrNotFound
	}
	return doc.toEntity(), nil
}

func (rs reminderStore) FindForAdmin(ctx context.Context, adminID string) ([]*reminder.Reminder, error) {
	rows, err := queryRows[reminderDoc](ctx, rs.s.db,
		"SELECT * FROM reminder WHERE assigned_by = $admin OR $admin IN assigned_to ORDER BY created_at DESC",
		map[string]any{"admin": adminID})
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	out := make([]*reminder.Reminder, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

func (rs reminderStore) Update(ctx context.Context, r *reminder.Reminder) error {
	if _, err := rs.FindByID(ctx, r.ID); err != nil {
		return err
	}
	r.UpdatedAt = time.Now().UTC()
	if _, err := surrealdb.Update[reminderDoc](ctx, rs.s.db, models.NewRecordID(tableReminder, r.ID), toReminderDoc(r)); err != nil {
		return fmt.Errorf("update reminder: %w", err)
	}
	return nil
}

func (rs reminderStore) Delete(ctx context.Context, id string) error {
	if _, err := rs.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := surrealdb.Delete[reminderDoc](ctx, rs.s.db, models.NewRecordID(tableReminder, id)); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}
