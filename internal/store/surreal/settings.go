package surreal

import (
	"context"
	"fmt"
	"time"

	"caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/settings"
	xerrors "caseflow-service/internal/pkg/errors"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

type settingsDoc struct {
	ID *models.RecordID `json:"id,omitempty"`

	EmailEnabled            bool `json:"email_enabled"`
	SMSEnabled              bool `json:"sms_enabled"`
	InactivityThresholdDays int  `json:"inactivity_threshold_days"`

	ReminderDefaultPriority string `json:"reminder_default_priority"`
	ReminderDefaultDueDays  int    `json:"reminder_default_due_days"`

	ExportFormat         string `json:"export_format"`
	ExportIncludeHistory bool   `json:"export_include_history"`

	ViewCaseStatusFilter string `json:"view_case_status_filter"`
	ViewPageSize         int    `json:"view_page_size"`

	AutoStatusEnabled        bool   `json:"auto_status_enabled"`
	AutoStatusInactivityDays int    `json:"auto_status_inactivity_days"`
	AutoStatusTarget         string `json:"auto_status_target"`

	UpdatedAt models.CustomDateTime `json:"updated_at"`
}

func toSettingsDoc(s *settings.Settings) *settingsDoc {
	rid := models.NewRecordID(tableSettings, settings.GlobalID)
	return &settingsDoc{
		ID:                       &rid,
		EmailEnabled:             s.Notifications.EmailEnabled,
		SMSEnabled:               s.Notifications.SMSEnabled,
		InactivityThresholdDays:  s.Notifications.InactivityThresholdDays,
		ReminderDefaultPriority:  s.Reminders.DefaultPriority,
		ReminderDefaultDueDays:   s.Reminders.DefaultDueDays,
		ExportFormat:             s.Exports.Format,
		ExportIncludeHistory:     s.Exports.IncludeHistory,
		ViewCaseStatusFilter:     s.Views.CaseStatusFilter,
		ViewPageSize:             s.Views.PageSize,
		AutoStatusEnabled:        s.AutoStatus.Enabled,
		AutoStatusInactivityDays: s.AutoStatus.InactivityDays,
		AutoStatusTarget:         string(s.AutoStatus.TargetStatus),
		UpdatedAt:                toDT(s.UpdatedAt),
	}
}

func (d *settingsDoc) toEntity() *settings.Settings {
	return &settings.Settings{
		ID: settings.GlobalID,
		Notifications: settings.NotificationSettings{
			EmailEnabled:            d.EmailEnabled,
			SMSEnabled:              d.SMSEnabled,
			InactivityThresholdDays: d.InactivityThresholdDays,
		},
		Reminders: settings.ReminderDefaults{
			DefaultPriority: d.ReminderDefaultPriority,
			DefaultDueDays:  d.ReminderDefaultDueDays,
		},
		Exports: settings.ExportDefaults{
			Format:         d.ExportFormat,
			IncludeHistory: d.ExportIncludeHistory,
		},
		Views: settings.ViewDefaults{
			CaseStatusFilter: d.ViewCaseStatusFilter,
			PageSize:         d.ViewPageSize,
		},
		AutoStatus: settings.AutoStatusRules{
			Enabled:        d.AutoStatusEnabled,
			InactivityDays: d.AutoStatusInactivityDays,
			TargetStatus:   cases.Status(d.AutoStatusTarget),
		},
		UpdatedAt: d.UpdatedAt.Time,
	}
}

type settingsStore struct{ s *Store }

func (ss settingsStore) Get(ctx context.Context) (*settings.Settings, error) {
	doc, err := surrealdb.Select[settingsDoc](ctx, ss.s.db, models.NewRecordID(tableSettings, settings.GlobalID))
	if err != nil {
		if isNotFound(err) {
			return nil, xerrors.ErrNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if doc == nil || doc.ID == nil {
		return nil, xerrors.ErrNotFound
	}
	return doc.toEntity(), nil
}

func (ss settingsStore) Save(ctx context.Context, st *settings.Settings) error {
	st.ID = settings.GlobalID
	st.UpdatedAt = time.Now().UTC()
	if _, err := surrealdb.Upsert[settingsDoc](ctx, ss.s.db, models.NewRecordID(tableSettings, settings.GlobalID), toSettingsDoc(st)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
