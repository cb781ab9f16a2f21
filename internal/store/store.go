// Package store defines the entity store contract. Everything above this
// layer depends only on these interfaces, never on a concrete backend.
package store

import (
	"context"
	"time"

	"caseflow-service/internal/domain/admin"
	"caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/customer"
	"caseflow-service/internal/domain/history"
	"caseflow-service/internal/domain/quickcase"
	"caseflow-service/internal/domain/reminder"
	"caseflow-service/internal/domain/settings"
)

// Store aggregates the per-entity capability sets. The concrete backend is
// chosen once at process start by Select and injected everywhere.
type Store interface {
	Admins() AdminStore
	Customers() CustomerStore
	Cases() CaseStore
	QuickCases() QuickCaseStore
	History() HistoryStore
	Reminders() ReminderStore
	Settings() SettingsStore

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type AdminStore interface {
	Create(ctx context.Context, a *admin.Admin) error
	FindByID(ctx context.Context, id string) (*admin.Admin, error)
	FindByUsername(ctx context.Context, username string) (*admin.Admin, error)
	FindAll(ctx context.Context) ([]*admin.Admin, error)
	Update(ctx context.Context, a *admin.Admin) error
	Delete(ctx context.Context, id string) error
}

type CustomerStore interface {
	// Create assigns the sequential human-readable customer number.
	Create(ctx context.Context, c *customer.Customer) error
	FindByID(ctx context.Context, id string) (*customer.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*customer.Customer, error)
	FindAll(ctx context.Context) ([]*customer.Customer, error)
	Update(ctx context.Context, c *customer.Customer) error
	Delete(ctx context.Context, id string) error
}

type CaseStore interface {
	Create(ctx context.Context, c *cases.Case) error
	FindByID(ctx context.Context, id string) (*cases.Case, error)
	// FindBySerial backs the advisory uniqueness lookup performed by the
	// calling layer. The store itself enforces nothing.
	FindBySerial(ctx context.Context, serial string) (*cases.Case, error)
	FindAll(ctx context.Context) ([]*cases.Case, error)
	FindByCustomer(ctx context.Context, customerID string) ([]*cases.Case, error)
	// FindOpenUpdatedBefore returns open cases whose UpdatedAt is older
	// than cutoff. Closed and shipped cases are never returned.
	FindOpenUpdatedBefore(ctx context.Context, cutoff time.Time) ([]*cases.Case, error)
	Update(ctx context.Context, c *cases.Case) error
	Delete(ctx context.Context, id string) error
	// DeleteByCustomer backs the customer cascade.
	DeleteByCustomer(ctx context.Context, customerID string) error
}

type QuickCaseStore interface {
	Create(ctx context.Context, q *quickcase.QuickCase) error
	FindByID(ctx context.Context, id string) (*quickcase.QuickCase, error)
	FindByStatus(ctx context.Context, status quickcase.Status) ([]*quickcase.QuickCase, error)
	Update(ctx context.Context, q *quickcase.QuickCase) error
	Delete(ctx context.Context, id string) error
}

// HistoryStore is append-only: the application never updates or deletes
// ledger entries.
type HistoryStore interface {
	Append(ctx context.Context, e *history.Entry) error
	// FindByCase and FindByCustomer return entries newest-first.
	FindByCase(ctx context.Context, caseID string) ([]*history.Entry, error)
	FindByCustomer(ctx context.Context, customerID string) ([]*history.Entry, error)
}

type ReminderStore interface {
	Create(ctx context.Context, r *reminder.Reminder) error
	FindByID(ctx context.Context, id string) (*reminder.Reminder, error)
	FindForAdmin(ctx context.Context, adminID string) ([]*reminder.Reminder, error)
	Update(ctx context.Context, r *reminder.Reminder) error
	Delete(ctx context.Context, id string) error
}

type SettingsStore interface {
	Get(ctx context.Context) (*settings.Settings, error)
	Save(ctx context.Context, s *settings.Settings) error
}
