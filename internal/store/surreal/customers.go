package surreal

import (
	"context"
	"fmt"
	"time"

	"caseflow-service/internal/domain/customer"
	xerrors "caseflow-service/internal/pkg/errors"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

type customerDoc struct {
	ID       *models.RecordID      `json:"id,omitempty"`
	Number   string                `json:"customer_number"`
	Name     string                `json:"name"`
	Phone    string                `json:"phone"`
	Address  string                `json:"address,omitempty"`
	Email    string                `json:"email,omitempty"`
	EmailOK  bool                  `json:"pref_email"`
	SMSOK    bool                  `json:"pref_sms"`
	Creator  string                `json:"created_by"`
	Created  models.CustomDateTime `json:"created_at"`
	Updated  models.CustomDateTime `json:"updated_at"`
}

func toCustomerDoc(c *customer.Customer) *customerDoc {
	rid := models.NewRecordID(tableCustomer, c.ID)
	return &customerDoc{
		ID:      &rid,
		Number:  c.Number,
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
		Email:   c.Email,
		EmailOK: c.Prefs.Email,
		SMSOK:   c.Prefs.SMS,
		Creator: c.CreatedBy,
		Created: toDT(c.CreatedAt),
		Updated: toDT(c.UpdatedAt),
	}
}

func (d *customerDoc) toEntity() *customer.Customer {
	return &customer.Customer{
		ID:      ridString(d.ID),
		Number:  d.Number,
		Name:    d.Name,
		Phone:   d.Phone,
		Address: d.Address,
		Email:   d.Email,
		Prefs: customer.NotificationPrefs{
			Email: d.EmailOK,
			SMS:   d.SMSOK,
		},
		CreatedBy: d.Creator,
		CreatedAt: d.Created.Time,
		UpdatedAt: d.Updated.Time,
	}
}

type counterDoc struct {
	Value int64 `json:"value"`
}

type customerStore struct{ s *Store }

// nextNumber bumps the per-database counter record. The sequence is
// monotonic for this backend only; it is not shared with the ephemeral one.
func (cs customerStore) nextNumber(ctx context.Context) (string, error) {
	rows, err := queryRows[counterDoc](ctx, cs.s.db,
		"UPSERT counter:customer SET value += 1 RETURN AFTER", nil)
	if err != nil {
		return "", fmt.Errorf("bump customer counter: %w", err)
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("bump customer counter: empty result")
	}
	return fmt.Sprintf("CUST-%04d", rows[0].Value), nil
}

func (cs customerStore) Create(ctx context.Context, c *customer.Customer) error {
	number, err := cs.nextNumber(ctx)
	if err != nil {
		return err
	}
	c.Number = number

	if c.ID == "" {
		c.ID = newID()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	if _, err := surrealdb.Create[customerDoc](ctx, cs.s.db, models.NewRecordID(tableCustomer, c.ID), toCustomerDoc(c)); err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

func (cs customerStore) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	doc, err := surrealdb.Select[customerDoc](ctx, cs.s.db, models.NewRecordID(tableCustomer, id))
	if err != nil {
		if isNotFound(err) {
			return nil, xerrors.ErrNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if doc == nil || doc.ID == nil {
		return nil, xerrors.ErrNotFound
	}
	return doc.toEntity(), nil
}

func (cs customerStore) FindByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	rows, err := queryRows[customerDoc](ctx, cs.s.db,
		"SELECT * FROM customer WHERE phone = $phone LIMIT 1",
		map[string]any{"phone": phone})
	if err != nil {
		return nil, fmt.Errorf("find customer by phone: %w", err)
	}
	if len(rows) == 0 {
		return nil, xerrors.ErrNotFound
	}
	return rows[0].toEntity(), nil
}

func (cs customerStore) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	rows, err := queryRows[customerDoc](ctx, cs.s.db,
		"SELECT * FROM customer ORDER BY created_at DESC", nil)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	out := make([]*customer.Customer, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out, nil
}

func (cs customerStore) Update(ctx context.Context, c *customer.Customer) error {
	if _, err := cs.FindByID(ctx, c.ID); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	if _, err := surrealdb.Update[customerDoc](ctx, cs.s.db, models.NewRecordID(tableCustomer, c.ID), toCustomerDoc(c)); err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func (cs customerStore) Delete(ctx context.Context, id string) error {
	if _, err := cs.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := surrealdb.Delete[customerDoc](ctx, cs.s.db, models.NewRecordID(tableCustomer, id)); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
