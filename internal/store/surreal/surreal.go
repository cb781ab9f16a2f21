// Package surreal is the durable document backend. One table per entity
// kind; records are keyed by the same ULIDs the rest of the system uses.
package surreal

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"caseflow-service/internal/domain/admin"
	"caseflow-service/internal/store"

	"github.com/oklog/ulid/v2"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

const (
	tableAdmin     = "admin"
	tableCustomer  = "customer"
	tableCase      = "product_case"
	tableQuickCase = "quick_case"
	tableHistory   = "interaction_history"
	tableReminder  = "reminder"
	tableSettings  = "settings"
)

type Config struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

type Store struct {
	db *surrealdb.DB
}

var _ store.Store = (*Store)(nil)

// Open connects, authenticates and selects the namespace/database. The
// caller bounds the attempt with a context deadline; a failure here is what
// degrades the process to the ephemeral backend.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to surrealdb: %w", err)
	}
	if cfg.Username != "" {
		if _, err := db.SignIn(ctx, surrealdb.Auth{
			Username: cfg.Username,
			Password: cfg.Password,
		}); err != nil {
			return nil, fmt.Errorf("authenticate: %w", err)
		}
	}
	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		return nil, fmt.Errorf("use %s/%s: %w", cfg.Namespace, cfg.Database, err)
	}

	s := &Store{db: db}
	if err := s.Ping(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Admins() store.AdminStore         { return adminStore{s} }
func (s *Store) Customers() store.CustomerStore   { return customerStore{s} }
func (s *Store) Cases() store.CaseStore           { return caseStore{s} }
func (s *Store) QuickCases() store.QuickCaseStore { return quickCaseStore{s} }
func (s *Store) History() store.HistoryStore      { return historyStore{s} }
func (s *Store) Reminders() store.ReminderStore   { return reminderStore{s} }
func (s *Store) Settings() store.SettingsStore    { return settingsStore{s} }

func (s *Store) Ping(ctx context.Context) error {
	_, err := surrealdb.Query[any](ctx, s.db, "RETURN 1", nil)
	return err
}

func (s *Store) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}

// EnsureSuperAdmin creates the bootstrap superadmin on first boot against a
// fresh database. Subsequent boots find the existing document and do
// nothing.
func (s *Store) EnsureSuperAdmin(ctx context.Context, seed *admin.Admin) error {
	rows, err := queryRows[adminDoc](ctx, s.db,
		"SELECT * FROM admin WHERE role = $role",
		map[string]any{"role": string(admin.RoleSuperAdmin)})
	if err != nil {
		return fmt.Errorf("look up superadmin: %w", err)
	}
	if len(rows) > 0 {
		return nil
	}
	cp := *seed
	return s.Admins().Create(ctx, &cp)
}

func newID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// queryRows runs a SurrealQL statement and returns the first result set.
func queryRows[T any](ctx context.Context, db *surrealdb.DB, sql string, vars map[string]any) ([]T, error) {
	res, err := surrealdb.Query[[]T](ctx, db, sql, vars)
	if err != nil {
		return nil, err
	}
	if res == nil || len(*res) == 0 {
		return nil, nil
	}
	return (*res)[0].Result, nil
}

// isNotFound matches the driver's not-found unmarshaling failures, which
// differ between CBOR implementations.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Expected a single or multiple results but got 0") ||
		strings.Contains(msg, "cannot unmarshal array into Go value")
}

func ridString(rid *models.RecordID) string {
	if rid == nil {
		return ""
	}
	return fmt.Sprint(rid.ID)
}

func toDT(t time.Time) models.CustomDateTime {
	return models.CustomDateTime{Time: t}
}

func toDTPtr(t *time.Time) *models.CustomDateTime {
	if t == nil {
		return nil
	}
	return &models.CustomDateTime{Time: *t}
}

func fromDTPtr(dt *models.CustomDateTime) *time.Time {
	if dt == nil {
		return nil
	}
	t := dt.Time
	return &t
}
