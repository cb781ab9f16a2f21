// internal/service/customers/service.go
package customers

import (
	"context"
	"errors"
	"fmt"

	casedomain "caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/customer"
	"caseflow-service/internal/domain/history"
	"caseflow-service/internal/pkg/actor"
	xerrors "caseflow-service/internal/pkg/errors"
	"caseflow-service/internal/service/audit"
	"caseflow-service/internal/store"

	"go.uber.org/zap"
)

// Detail is the customer read model: the record plus all of its cases.
type Detail struct {
	Customer *customer.Customer `json:"customer"`
	Cases    []*casedomain.Case `json:"cases"`
}

type Service struct {
	customers store.CustomerStore
	cases     store.CaseStore
	ledger    *audit.Ledger
	logger    *zap.Logger
}

func NewService(customerStore store.CustomerStore, caseStore store.CaseStore, ledger *audit.Ledger, logger *zap.Logger) *Service {
	return &Service{
		customers: customerStore,
		cases:     caseStore,
		ledger:    ledger,
		logger:    logger,
	}
}

// Create persists the customer (the backend assigns the CUST-NNNN number)
// and appends the `created` ledger entry.
func (s *Service) Create(ctx context.Context, act actor.Actor, req *customer.CreateCustomerRequest) (*customer.Customer, error) {
	c := &customer.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Email:   req.Email,
		Prefs: customer.NotificationPrefs{
			Email: req.EmailNotifications == nil || *req.EmailNotifications,
			SMS:   req.SMSNotifications == nil || *req.SMSNotifications,
		},
		CreatedBy: act.ID,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	msg := fmt.Sprintf("Customer %s (%s) registered", c.Name, c.Number)
	if _, err := s.ledger.Record(ctx, history.TypeCreated, "", c.ID, msg, act, nil); err != nil {
		s.logger.Error("customer created but ledger append failed",
			zap.String("customer_id", c.ID),
			zap.Error(err),
		)
	}

	s.logger.Info("customer created",
		zap.String("customer_id", c.ID),
		zap.String("customer_number", c.Number),
		zap.String("created_by", act.ID),
	)
	return c, nil
}

// Get returns the customer together with all of its cases.
func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cc, err := s.cases.FindByCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cases for customer %s: %w", id, err)
	}
	return &Detail{Customer: c, Cases: cc}, nil
}

func (s *Service) List(ctx context.Context) ([]*customer.Customer, error) {
	return s.customers.FindAll(ctx)
}

// FindByPhone is the advisory duplicate-phone lookup for the calling
// layer; nil error means a customer with that phone exists.
func (s *Service) FindByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	return s.customers.FindByPhone(ctx, phone)
}

// Update applies the partial and appends one `updated` ledger entry.
func (s *Service) Update(ctx context.Context, act actor.Actor, id string, req *customer.UpdateCustomerRequest) (*customer.Customer, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.EmailNotifications != nil {
		c.Prefs.Email = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		c.Prefs.SMS = *req.SMSNotifications
	}

	if err := s.customers.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	msg := fmt.Sprintf("Customer %s (%s) details updated", c.Name, c.Number)
	if _, err := s.ledger.Record(ctx, history.TypeUpdated, "", c.ID, msg, act, nil); err != nil {
		s.logger.Error("customer updated but ledger append failed",
			zap.String("customer_id", c.ID),
			zap.Error(err),
		)
	}
	return c, nil
}

// Delete removes the customer and cascades to all of its cases, so no
// orphaned case remains. The ledger entry is written first.
func (s *Service) Delete(ctx context.Context, act actor.Actor, id string) error {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Customer %s (%s) deleted with all cases", c.Name, c.Number)
	if _, err := s.ledger.Record(ctx, history.TypeDeleted, "", c.ID, msg, act, nil); err != nil {
		return fmt.Errorf("record customer deletion: %w", err)
	}

	if err := s.cases.DeleteByCustomer(ctx, id); err != nil && !errors.Is(err, xerrors.ErrNotFound) {
		return fmt.Errorf("cascade case deletion: %w", err)
	}
	if err := s.customers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	s.logger.Info("customer deleted",
		zap.String("customer_id", id),
		zap.String("deleted_by", act.ID),
	)
	return nil
}
