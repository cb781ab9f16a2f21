// internal/service/reminders/service.go
package reminders

import (
	"context"
	"fmt"
	"slices"
	"time"

	"caseflow-service/internal/domain/reminder"
	"caseflow-service/internal/pkg/actor"
	xerrors "caseflow-service/internal/pkg/errors"
	"caseflow-service/internal/service/appsettings"
	"caseflow-service/internal/store"
	"caseflow-service/internal/ws"

	"go.uber.org/zap"
)

type Service struct {
	reminders store.ReminderStore
	admins    store.AdminStore
	settings  *appsettings.Service
	hub       *ws.Hub
	logger    *zap.Logger
}

func NewService(reminders store.ReminderStore, admins store.AdminStore, settings *appsettings.Service, hub *ws.Hub, logger *zap.Logger) *Service {
	return &Service{
		reminders: reminders,
		admins:    admins,
		settings:  settings,
		hub:       hub,
		logger:    logger,
	}
}

// Create assigns a reminder to one or more admins, denormalizing their
// display names so lists render even if an admin is later deleted.
// Priority and due date fall back to the configured defaults.
func (s *Service) Create(ctx context.Context, act actor.Actor, req *reminder.CreateReminderRequest) (*reminder.Reminder, error) {
	names := make([]string, 0, len(req.AssignedTo))
	for _, id := range req.AssignedTo {
		a, err := s.admins.FindByID(ctx, id)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.ErrInvalidInput, fmt.Sprintf("assignee %s not found", id))
		}
		names = append(names, a.DisplayName)
	}

	r := &reminder.Reminder{
		Title:           req.Title,
		Description:     req.Description,
		Priority:        req.Priority,
		Status:          reminder.StatusPending,
		AssignedTo:      req.AssignedTo,
		AssignedToNames: names,
		AssignedBy:      act.ID,
		AssignedByName:  act.Name,
		DueDate:         req.DueDate,
		ReadBy:          []string{},
	}

	cfg, err := s.settings.Get(ctx)
	if err == nil {
		if r.Priority == "" {
			r.Priority = reminder.Priority(cfg.Reminders.DefaultPriority)
		}
		if r.DueDate == nil && cfg.Reminders.DefaultDueDays > 0 {
			due := time.Now().UTC().AddDate(0, 0, cfg.Reminders.DefaultDueDays)
			r.DueDate = &due
		}
	}
	if r.Priority == "" {
		r.Priority = reminder.PriorityMedium
	}

	if err := s.reminders.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}

	s.hub.Broadcast(ws.EventReminderUpdate, r)
	s.logger.Info("reminder created",
		zap.String("reminder_id", r.ID),
		zap.String("assigned_by", act.ID),
		zap.Strings("assigned_to", r.AssignedTo),
	)
	return r, nil
}

// ListFor returns reminders the admin either assigned or was assigned.
func (s *Service) ListFor(ctx context.Context, adminID string) ([]*reminder.Reminder, error) {
	return s.reminders.FindForAdmin(ctx, adminID)
}

func (s *Service) Get(ctx context.Context, id string) (*reminder.Reminder, error) {
	return s.reminders.FindByID(ctx, id)
}

// UpdateStatus lets an assignee move their reminder through the status
// enum. The change raises the assigner's unseen-update flag.
func (s *Service) UpdateStatus(ctx context.Context, act actor.Actor, id string, status reminder.Status) (*reminder.Reminder, error) {
	r, err := s.reminders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(r.AssignedTo, act.ID) {
		return nil, xerrors.Wrap(xerrors.ErrForbidden, "only an assignee may change reminder status")
	}

	r.Status = status
	r.HasUpdate = true
	r.UpdatedAt = time.Now().UTC()
	if err := s.reminders.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}

	s.hub.Broadcast(ws.EventReminderUpdate, r)
	return r, nil
}

// MarkRead records that the actor has seen the reminder. When the
// assigner reads it, the unseen-update flag clears.
func (s *Service) MarkRead(ctx context.Context, act actor.Actor, id string) (*reminder.Reminder, error) {
	r, err := s.reminders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if slices.Contains(r.AssignedTo, act.ID) && !slices.Contains(r.ReadBy, act.ID) {
		r.ReadBy = append(r.ReadBy, act.ID)
		changed = true
	}
	if r.AssignedBy == act.ID && r.HasUpdate {
		r.HasUpdate = false
		changed = true
	}
	if !changed {
		return r, nil
	}

	if err := s.reminders.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("mark reminder read: %w", err)
	}
	return r, nil
}

// Delete is restricted to the admin who created the reminder.
func (s *Service) Delete(ctx context.Context, act actor.Actor, id string) error {
	r, err := s.reminders.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if r.AssignedBy != act.ID {
		return xerrors.Wrap(xerrors.ErrForbidden, "only the assigner may delete a reminder")
	}
	if err := s.reminders.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	s.logger.Info("reminder deleted",
		zap.String("reminder_id", id),
		zap.String("deleted_by", act.ID),
	)
	return nil
}
