// Package memory is the volatile in-process backend. It is selected when
// the durable store is unreachable at boot; all data is lost on restart.
package memory

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"caseflow-service/internal/domain/admin"
	"caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/customer"
	"caseflow-service/internal/domain/history"
	"caseflow-service/internal/domain/quickcase"
	"caseflow-service/internal/domain/reminder"
	"caseflow-service/internal/domain/settings"
	"caseflow-service/internal/store"

	"github.com/oklog/ulid/v2"
)

var _ store.Store = (*Store)(nil)

type Store struct {
	mu sync.RWMutex

	admins     map[string]*admin.Admin
	customers  map[string]*customer.Customer
	cases      map[string]*cases.Case
	quickCases map[string]*quickcase.QuickCase
	entries    []*history.Entry
	reminders  map[string]*reminder.Reminder
	settings   *settings.Settings

	customerSeq int64
}

// New builds an empty store seeded with the bootstrap superadmin, so a
// degraded process still has an account to sign in with.
func New(bootstrap *admin.Admin) *Store {
	s := &Store{
		admins:     make(map[string]*admin.Admin),
		customers:  make(map[string]*customer.Customer),
		cases:      make(map[string]*cases.Case),
		quickCases: make(map[string]*quickcase.QuickCase),
		reminders:  make(map[string]*reminder.Reminder),
	}
	if bootstrap != nil {
		seed := *bootstrap
		if seed.ID == "" {
			seed.ID = newID()
		}
		if seed.CreatedAt.IsZero() {
			seed.CreatedAt = time.Now().UTC()
			seed.UpdatedAt = seed.CreatedAt
		}
		s.admins[seed.ID] = &seed
	}
	return s
}

func (s *Store) Admins() store.AdminStore         { return adminStore{s} }
func (s *Store) Customers() store.CustomerStore   { return customerStore{s} }
func (s *Store) Cases() store.CaseStore           { return caseStore{s} }
func (s *Store) QuickCases() store.QuickCaseStore { return quickCaseStore{s} }
func (s *Store) History() store.HistoryStore      { return historyStore{s} }
func (s *Store) Reminders() store.ReminderStore   { return reminderStore{s} }
func (s *Store) Settings() store.SettingsStore    { return settingsStore{s} }

func (s *Store) Ping(ctx context.Context) error  { return nil }
func (s *Store) Close(ctx context.Context) error { return nil }

func newID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
