// internal/service/quickcase/service.go
package quickcase

import (
	"context"
	"fmt"
	"time"

	casedomain "caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/customer"
	qc "caseflow-service/internal/domain/quickcase"
	"caseflow-service/internal/pkg/actor"
	xerrors "caseflow-service/internal/pkg/errors"
	caseservice "caseflow-service/internal/service/cases"
	customerservice "caseflow-service/internal/service/customers"
	"caseflow-service/internal/store"

	"go.uber.org/zap"
)

// PromotionResult reports what the multi-step promotion produced.
type PromotionResult struct {
	QuickCase *qc.QuickCase      `json:"quick_case"`
	Customer  *customer.Customer `json:"customer"`
	Case      *casedomain.Case   `json:"case"`
}

type Service struct {
	quickCases store.QuickCaseStore
	customers  *customerservice.Service
	cases      *caseservice.Service
	logger     *zap.Logger
}

func NewService(quickCases store.QuickCaseStore, customers *customerservice.Service, cases *caseservice.Service, logger *zap.Logger) *Service {
	return &Service{
		quickCases: quickCases,
		customers:  customers,
		cases:      cases,
		logger:     logger,
	}
}

// Create stores a phone-only lead, denormalizing the creating admin's
// display name so lists render without an admin lookup.
func (s *Service) Create(ctx context.Context, act actor.Actor, req *qc.CreateQuickCaseRequest) (*qc.QuickCase, error) {
	q := &qc.QuickCase{
		Phone:         req.Phone,
		Notes:         req.Notes,
		Status:        qc.StatusIncomplete,
		CreatedBy:     act.ID,
		CreatedByName: act.Name,
	}
	if err := s.quickCases.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("create quick case: %w", err)
	}
	s.logger.Info("quick case created",
		zap.String("quick_case_id", q.ID),
		zap.String("created_by", act.ID),
	)
	return q, nil
}

func (s *Service) Get(ctx context.Context, id string) (*qc.QuickCase, error) {
	return s.quickCases.FindByID(ctx, id)
}

// List returns quick cases for one status; the working queue of
// unpromoted leads is the default view.
func (s *Service) List(ctx context.Context, status qc.Status) ([]*qc.QuickCase, error) {
	if status == "" {
		status = qc.StatusIncomplete
	}
	return s.quickCases.FindByStatus(ctx, status)
}

// Promote converts an incomplete lead into a full Customer + Case pair.
//
// The sequence is: create the customer (phone forced to the lead's phone),
// create the case under it, then mark the lead completed. There is no
// cross-entity transaction: a failure after the first step leaves the
// earlier writes in place and is surfaced as ErrPartialWorkflow so the
// caller can tell a clean failure from an interrupted one.
func (s *Service) Promote(ctx context.Context, act actor.Actor, id string, custReq *customer.CreateCustomerRequest, caseReq *casedomain.CreateCaseRequest) (*PromotionResult, error) {
	q, err := s.quickCases.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.Status == qc.StatusCompleted {
		return nil, xerrors.Wrap(xerrors.ErrConflict, fmt.Sprintf("quick case %s already promoted", id))
	}

	// The lead's phone is authoritative across the promotion.
	custReq.Phone = q.Phone

	cust, err := s.customers.Create(ctx, act, custReq)
	if err != nil {
		return nil, fmt.Errorf("promote quick case %s: %w", id, err)
	}

	caseReq.CustomerID = cust.ID
	pc, _, err := s.cases.Create(ctx, act, caseReq)
	if err != nil {
		s.logger.Error("promotion interrupted after customer creation",
			zap.String("quick_case_id", id),
			zap.String("customer_id", cust.ID),
			zap.Error(err),
		)
		return nil, xerrors.Wrap(xerrors.ErrPartialWorkflow,
			fmt.Sprintf("customer %s created but case creation failed: %v", cust.ID, err))
	}

	q.Status = qc.StatusCompleted
	q.UpdatedAt = time.Now().UTC()
	if err := s.quickCases.Update(ctx, q); err != nil {
		s.logger.Error("promotion interrupted before completion marker",
			zap.String("quick_case_id", id),
			zap.String("customer_id", cust.ID),
			zap.String("case_id", pc.ID),
			zap.Error(err),
		)
		return nil, xerrors.Wrap(xerrors.ErrPartialWorkflow,
			fmt.Sprintf("customer %s and case %s created but quick case %s not marked completed: %v", cust.ID, pc.ID, id, err))
	}

	s.logger.Info("quick case promoted",
		zap.String("quick_case_id", id),
		zap.String("customer_id", cust.ID),
		zap.String("case_id", pc.ID),
	)
	return &PromotionResult{QuickCase: q, Customer: cust, Case: pc}, nil
}

// Delete removes an unpromoted lead. Completed leads are kept as the
// record of where their customer came from.
func (s *Service) Delete(ctx context.Context, id string) error {
	q, err := s.quickCases.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if q.Status == qc.StatusCompleted {
		return xerrors.Wrap(xerrors.ErrConflict, "completed quick cases cannot be deleted")
	}
	return s.quickCases.Delete(ctx, id)
}
