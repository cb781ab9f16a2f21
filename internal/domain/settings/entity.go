// internal/domain/settings/entity.go
package settings

import (
	"time"

	"caseflow-service/internal/domain/cases"
)

// GlobalID is the record id of the single settings document. There is no
// owning user.
const GlobalID = "global"

type NotificationSettings struct {
	EmailEnabled bool `json:"email_enabled"`
	SMSEnabled   bool `json:"sms_enabled"`

	// InactivityThresholdDays drives the alert-only stale-case scan.
	InactivityThresholdDays int `json:"inactivity_threshold_days"`
}

type ReminderDefaults struct {
	DefaultPriority string `json:"default_priority"`
	DefaultDueDays  int    `json:"default_due_days"`
}

type ExportDefaults struct {
	Format         string `json:"format"`
	IncludeHistory bool   `json:"include_history"`
}

type ViewDefaults struct {
	CaseStatusFilter string `json:"case_status_filter"`
	PageSize         int    `json:"page_size"`
}

// AutoStatusRules configures the daily forced-transition sweep.
type AutoStatusRules struct {
	Enabled        bool         `json:"enabled"`
	InactivityDays int          `json:"inactivity_days"`
	TargetStatus   cases.Status `json:"target_status"`
}

type Settings struct {
	ID            string               `json:"id"`
	Notifications NotificationSettings `json:"notifications"`
	Reminders     ReminderDefaults     `json:"reminders"`
	Exports       ExportDefaults       `json:"exports"`
	Views         ViewDefaults         `json:"views"`
	AutoStatus    AutoStatusRules      `json:"auto_status_rules"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// Defaults returns the settings document materialized on first read.
func Defaults() *Settings {
	return &Settings{
		ID: GlobalID,
		Notifications: NotificationSettings{
			EmailEnabled:            true,
			SMSEnabled:              true,
			InactivityThresholdDays: 14,
		},
		Reminders: ReminderDefaults{
			DefaultPriority: "medium",
			DefaultDueDays:  3,
		},
		Exports: ExportDefaults{
			Format:         "csv",
			IncludeHistory: false,
		},
		Views: ViewDefaults{
			CaseStatusFilter: "open",
			PageSize:         25,
		},
		AutoStatus: AutoStatusRules{
			Enabled:        false,
			InactivityDays: 30,
			TargetStatus:   cases.StatusClosed,
		},
	}
}

// UpdateSettingsRequest replaces whole top-level sections; sections left
// nil are kept as-is.
type UpdateSettingsRequest struct {
	Notifications *NotificationSettings `json:"notifications"`
	Reminders     *ReminderDefaults     `json:"reminders"`
	Exports       *ExportDefaults       `json:"exports"`
	Views         *ViewDefaults         `json:"views"`
	AutoStatus    *AutoStatusRules      `json:"auto_status_rules"`
}
