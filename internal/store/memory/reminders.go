package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"caseflow-service/internal/domain/reminder"
	xerrors "caseflow-service/internal/pkg/errors"
)

type reminderStore struct{ s *Store }

func cloneReminder(r *reminder.Reminder) *reminder.Reminder {
	cp := *r
	cp.AssignedTo = slices.Clone(r.AssignedTo)
	cp.AssignedToNames = slices.Clone(r.AssignedToNames)
	cp.ReadBy = slices.Clone(r.ReadBy)
	return &cp
}

func (rs reminderStore) Create(ctx context.Context, r *reminder.Reminder) error {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()

	if r.ID == "" {
		r.ID = newID()
	}
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	rs.s.reminders[r.ID] = cloneReminder(r)
	return nil
}

func (rs reminderStore) FindByID(ctx context.Context, id string) (*reminder.Reminder, error) {
	rs.s.mu.RLock()
	defer rs.s.mu.RUnlock()

	r, ok := rs.s.reminders[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return cloneReminder(r), nil
}

// FindForAdmin returns reminders the admin is assigned to or assigned out.
func (rs reminderStore) FindForAdmin(ctx context.Context, adminID string) ([]*reminder.Reminder, error) {
	rs.s.mu.RLock()
	defer rs.s.mu.RUnlock()

	var out []*reminder.Reminder
	for _, r := range rs.s.reminders {
		if r.AssignedBy == adminID || slices.Contains(r.AssignedTo, adminID) {
			out = append(out, cloneReminder(r))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (rs reminderStore) Update(ctx context.Context, r *reminder.Reminder) error {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()

	if _, ok := rs.s.reminders[r.ID]; !ok {
		return xerrors.ErrNotFound
	}
	r.UpdatedAt = time.Now().UTC()
	rs.s.reminders[r.ID] = cloneReminder(r)
	return nil
}

func (rs reminderStore) Delete(ctx context.Context, id string) error {
	rs.s.mu.Lock()
	defer rs.s.mu.Unlock()

	if _, ok := rs.s.reminders[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(rs.s.reminders, id)
	return nil
}
