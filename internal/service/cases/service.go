// internal/service/cases/service.go
package cases

import (
	"context"
	"fmt"
	"time"

	casedomain "caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/customer"
	"caseflow-service/internal/domain/history"
	"caseflow-service/internal/pkg/actor"
	"caseflow-service/internal/service/audit"
	"caseflow-service/internal/service/notify"
	"caseflow-service/internal/store"

	"go.uber.org/zap"
)

// Detail is the full read model for a single case.
type Detail struct {
	Case     *casedomain.Case   `json:"case"`
	Customer *customer.Customer `json:"customer"`
	History  []*history.Entry   `json:"history"`
}

// Service owns the case lifecycle: every mutation lands exactly one ledger
// entry, and status-affecting mutations dispatch a best-effort customer
// notification after the write and the audit both succeed.
type Service struct {
	cases     store.CaseStore
	customers store.CustomerStore
	ledger    *audit.Ledger
	notifier  *notify.Dispatcher
	logger    *zap.Logger
}

func NewService(caseStore store.CaseStore, customerStore store.CustomerStore, ledger *audit.Ledger, notifier *notify.Dispatcher, logger *zap.Logger) *Service {
	return &Service{
		cases:     caseStore,
		customers: customerStore,
		ledger:    ledger,
		notifier:  notifier,
		logger:    logger,
	}
}

// Create persists a new case and appends its `created` audit entry. Serial
// uniqueness is an advisory lookup the caller performs beforehand; it is
// deliberately not enforced here.
func (s *Service) Create(ctx context.Context, act actor.Actor, req *casedomain.CreateCaseRequest) (*casedomain.Case, notify.Result, error) {
	cust, err := s.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, notify.Result{}, fmt.Errorf("case customer %s: %w", req.CustomerID, err)
	}

	c := &casedomain.Case{
		CustomerID:    cust.ID,
		Model:         req.Model,
		Serial:        req.Serial,
		PurchasePlace: req.PurchasePlace,
		PurchaseDate:  req.PurchaseDate,
		Receipt:       req.Receipt,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		RepairDetails: req.RepairDetails,
		ShippingCost:  req.ShippingCost,
		CreatedBy:     act.ID,
	}
	if c.Status == "" {
		c.Status = casedomain.StatusNew
	}
	if c.PaymentStatus == "" {
		c.PaymentStatus = casedomain.PaymentPending
	}

	if err := s.cases.Create(ctx, c); err != nil {
		return nil, notify.Result{}, fmt.Errorf("create case: %w", err)
	}

	msg := fmt.Sprintf("Case opened for %s (SN %s) with status %q", c.Model, c.Serial, c.Status)
	if _, err := s.ledger.Record(ctx, history.TypeCreated, c.ID, c.CustomerID, msg, act, nil); err != nil {
		s.logger.Error("case created but ledger append failed",
			zap.String("case_id", c.ID),
			zap.Error(err),
		)
	}

	res := s.notifier.CaseCreated(ctx, cust, c)
	return c, res, nil
}

// Get returns the case together with its customer and audit timeline.
func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	c, err := s.cases.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cust, err := s.customers.FindByID(ctx, c.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("customer for case %s: %w", id, err)
	}
	entries, err := s.ledger.ForCase(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("history for case %s: %w", id, err)
	}
	return &Detail{Case: c, Customer: cust, History: entries}, nil
}

// List returns all cases, optionally narrowed to open ones.
func (s *Service) List(ctx context.Context, openOnly bool) ([]*casedomain.Case, error) {
	all, err := s.cases.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if !openOnly {
		return all, nil
	}
	open := all[:0]
	for _, c := range all {
		if c.Status.IsOpen() {
			open = append(open, c)
		}
	}
	return open, nil
}

// FindBySerial is the advisory uniqueness lookup for the calling layer.
func (s *Service) FindBySerial(ctx context.Context, serial string) (*casedomain.Case, error) {
	return s.cases.FindBySerial(ctx, serial)
}

// Update reads the record first to capture the prior status, applies the
// partial, then appends exactly one ledger entry: status_changed when the
// status moved, a generic updated entry otherwise.
func (s *Service) Update(ctx context.Context, act actor.Actor, id string, req *casedomain.UpdateCaseRequest) (*casedomain.Case, notify.Result, error) {
	c, err := s.cases.FindByID(ctx, id)
	if err != nil {
		return nil, notify.Result{}, err
	}
	oldStatus := c.Status

	applyUpdate(c, req)
	c.UpdatedAt = time.Now().UTC()

	if err := s.cases.Update(ctx, c); err != nil {
		return nil, notify.Result{}, fmt.Errorf("update case: %w", err)
	}

	statusChanged := c.Status != oldStatus
	if statusChanged {
		msg := fmt.Sprintf("Status changed from %q to %q", oldStatus, c.Status)
		meta := map[string]string{
			"old_status": string(oldStatus),
			"new_status": string(c.Status),
		}
		if _, err := s.ledger.Record(ctx, history.TypeStatusChanged, c.ID, c.CustomerID, msg, act, meta); err != nil {
			s.logger.Error("case updated but ledger append failed",
				zap.String("case_id", c.ID),
				zap.Error(err),
			)
		}
	} else {
		msg := fmt.Sprintf("Case details updated for %s (SN %s)", c.Model, c.Serial)
		if _, err := s.ledger.Record(ctx, history.TypeUpdated, c.ID, c.CustomerID, msg, act, nil); err != nil {
			s.logger.Error("case updated but ledger append failed",
				zap.String("case_id", c.ID),
				zap.Error(err),
			)
		}
	}

	var res notify.Result
	if statusChanged {
		if cust, err := s.customers.FindByID(ctx, c.CustomerID); err == nil {
			res = s.notifier.CaseStatusChanged(ctx, cust, c, oldStatus, c.Status)
		} else {
			s.logger.Warn("skipping notification, customer lookup failed",
				zap.String("case_id", c.ID),
				zap.Error(err),
			)
		}
	}
	return c, res, nil
}

// Delete appends the `deleted` ledger entry before removing the record. A
// crash between the two leaves a ledger entry referencing a gone case; a
// bounded, rare inconsistency we accept.
func (s *Service) Delete(ctx context.Context, act actor.Actor, id string) error {
	c, err := s.cases.FindByID(ctx, id)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Case deleted for %s (SN %s)", c.Model, c.Serial)
	if _, err := s.ledger.Record(ctx, history.TypeDeleted, c.ID, c.CustomerID, msg, act, nil); err != nil {
		return fmt.Errorf("record case deletion: %w", err)
	}
	if err := s.cases.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete case: %w", err)
	}
	return nil
}

func applyUpdate(c *casedomain.Case, req *casedomain.UpdateCaseRequest) {
	if req.Model != nil {
		c.Model = *req.Model
	}
	if req.Serial != nil {
		c.Serial = *req.Serial
	}
	if req.PurchasePlace != nil {
		c.PurchasePlace = *req.PurchasePlace
	}
	if req.PurchaseDate != nil {
		c.PurchaseDate = req.PurchaseDate
	}
	if req.Receipt != nil {
		c.Receipt = *req.Receipt
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.PaymentStatus != nil {
		c.PaymentStatus = *req.PaymentStatus
	}
	if req.RepairDetails != nil {
		c.RepairDetails = *req.RepairDetails
	}
	if req.ShippingCost != nil {
		c.ShippingCost = *req.ShippingCost
	}
	if req.ShippedAt != nil {
		c.ShippedAt = req.ShippedAt
	}
	if req.ReceivedAt != nil {
		c.ReceivedAt = req.ReceivedAt
	}
	if req.Carrier != nil {
		c.Carrier = *req.Carrier
	}
	if req.TrackingNumber != nil {
		c.TrackingNumber = *req.TrackingNumber
	}
}
