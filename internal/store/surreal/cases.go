package surreal

import (
	"context"
	"fmt"
	"time"

	"caseflow-service/internal/domain/cases"
	xerrors "caseflow-service/internal/pkg/errors"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

type caseDoc struct {
	ID         *models.RecordID `json:"id,omitempty"`
	CustomerID string           `json:"customer_id"`

	Model  string `json:"model"`
	Serial string `json:"serial"`

	PurchasePlace string                 `json:"purchase_place,omitempty"`
	PurchaseDate  *models.CustomDateTime `json:"purchase_date,omitempty"`
	Receipt       string                 `json:"receipt,omitempty"`

	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	RepairDetails string `json:"repair_details,omitempty"`

	ShippingCost   float64                `json:"shipping_cost"`
	ShippedAt      *models.CustomDateTime `json:"shipped_at,omitempty"`
	ReceivedAt     *models.CustomDateTime `json:"received_at,omitempty"`
	Carrier        string                 `json:"carrier,omitempty"`
	TrackingNumber string                 `json:"tracking_number,omitempty"`

	CreatedBy string                `json:"created_by"`
	CreatedAt models.CustomDateTime `json:"created_at"`
	UpdatedAt models.CustomDateTime `json:"updated_at"`
}

func toCaseDoc(c *cases.Case) *caseDoc {
	rid := models.NewRecordID(tableCase, c.ID)
	return &caseDoc{
		ID:             &rid,
		CustomerID:     c.CustomerID,
		Model:          c.Model,
		Serial:         c.Serial,
		PurchasePlace:  c.PurchasePlace,
		PurchaseDate:   toDTPtr(c.PurchaseDate),
		Receipt:        c.Receipt,
		Status:         string(c.Status),
		PaymentStatus:  string(c.PaymentStatus),
		RepairDetails:  c.RepairDetails,
		ShippingCost:   c.ShippingCost,
		ShippedAt:      toDTPtr(c.ShippedAt),
		ReceivedAt:     toDTPtr(c.ReceivedAt),
		Carrier:        c.Carrier,
		TrackingNumber: c.TrackingNumber,
		CreatedBy:      c.CreatedBy,
		CreatedAt:      toDT(c.CreatedAt),
		UpdatedAt:      toDT(c.UpdatedAt),
	}
}

func (d *caseDoc) toEntity() *cases.Case {
	return &cases.Case{
		ID:             ridString(d.ID),
		CustomerID:     d.CustomerID,
		Model:          d.Model,
		Serial:         d.Serial,
		PurchasePlace:  d.PurchasePlace,
		PurchaseDate:   fromDTPtr(d.PurchaseDate),
		Receipt:        d.Receipt,
		Status:         cases.Status(d.Status),
		PaymentStatus:  cases.PaymentStatus(d.PaymentStatus),
		RepairDetails:  d.RepairDetails,
		ShippingCost:   d.ShippingCost,
		ShippedAt:      fromDTPtr(d.ShippedAt),
		ReceivedAt:     fromDTPtr(d.ReceivedAt),
		Carrier:        d.Carrier,
		TrackingNumber: d.TrackingNumber,
		CreatedBy:      d.CreatedBy,
		CreatedAt:      d.CreatedAt.Time,
		UpdatedAt:      d.UpdatedAt.Time,
	}
}

type caseStore struct{ s *Store }

func (cs caseStore) Create(ctx context.Context, c *cases.Case) error {
	if c.ID == "" {
		c.ID = newID()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	if _, err := surrealdb.Create[caseDoc](ctx, cs.s.db, models.NewRecordID(tableCase, c.ID), toCaseDoc(c)); err != nil {
		return fmt.Errorf("create case: %w", err)
	}
	return nil
}

func (cs caseStore) FindByID(ctx context.Context, id string) (*cases.Case, error) {
	doc, err := surrealdb.Select[caseDoc](ctx, cs.s.db, models.NewRecordID(tableCase, id))
	if err != nil {
		if isNotFound(err) {
			return nil, xerrors.ErrNotFound
		}
		return nil, fmt.Errorf("find case: %w", err)
	}
	if doc == nil || doc.ID == nil {
		return nil, xerrors.ErrNotFound
	}
	return doc.toEntity(), nil
}

func (cs caseStore) FindBySerial(ctx context.Context, serial string) (*cases.Case, error) {
	rows, err := queryRows[caseDoc](ctx, cs.s.db,
		"SELECT * FROM product_case WHERE serial = $serial LIMIT 1",
		map[string]any{"serial": serial})
	if err != nil {
		return nil, fmt.Errorf("find case by serial: %w", err)
	}
	if len(rows) == 0 {
		return nil, xerrors.ErrNotFound
	}
	return rows[0].toEntity(), nil
}

func (cs caseStore) FindAll(ctx context.Context) ([]*cases.Case, error) {
	rows, err := queryRows[caseDoc](ctx, cs.s.db,
		"SELECT * FROM product_case ORDER BY created_at DESC", nil)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return docsToCases(rows), nil
}

func (cs caseStore) FindByCustomer(ctx context.Context, customerID string) ([]*cases.Case, error) {
	rows, err := queryRows[caseDoc](ctx, cs.s.db,
		"SELECT * FROM product_case WHERE customer_id = $customer ORDER BY created_at DESC",
		map[string]any{"customer": customerID})
	if err != nil {
		return nil, fmt.Errorf("list cases for customer: %w", err)
	}
	return docsToCases(rows), nil
}

func (cs caseStore) FindOpenUpdatedBefore(ctx context.Context, cutoff time.Time) ([]*cases.Case, error) {
	rows, err := queryRows[caseDoc](ctx, cs.s.db,
		"SELECT * FROM product_case WHERE status NOT IN $terminal AND updated_at < $cutoff",
		map[string]any{
			"terminal": []string{string(cases.StatusClosed), string(cases.StatusShipped)},
			"cutoff":   toDT(cutoff),
		})
	if err != nil {
		return nil, fmt.Errorf("list stale open cases: %w", err)
	}
	return docsToCases(rows), nil
}

func (cs caseStore) Update(ctx context.Context, c *cases.Case) error {
	if _, err := cs.FindByID(ctx, c.ID); err != nil {
		return err
	}
	if _, err := surrealdb.Update[caseDoc](ctx, cs.s.db, models.NewRecordID(tableCase, c.ID), toCaseDoc(c)); err != nil {
		return fmt.Errorf("update case: %w", err)
	}
	return nil
}

func (cs caseStore) Delete(ctx context.Context, id string) error {
	if _, err := cs.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := surrealdb.Delete[caseDoc](ctx, cs.s.db, models.NewRecordID(tableCase, id)); err != nil {
		return fmt.Errorf("delete case: %w", err)
	}
	return nil
}

func (cs caseStore) DeleteByCustomer(ctx context.Context, customerID string) error {
	if _, err := surrealdb.Query[any](ctx, cs.s.db,
		"DELETE product_case WHERE customer_id = $customer",
		map[string]any{"customer": customerID}); err != nil {
		return fmt.Errorf("delete cases for customer: %w", err)
	}
	return nil
}

func docsToCases(rows []caseDoc) []*cases.Case {
	out := make([]*cases.Case, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toEntity())
	}
	return out
}
