// internal/service/audit/ledger.go
package audit

import (
	"context"
	"fmt"

	"caseflow-service/internal/domain/history"
	"caseflow-service/internal/pkg/actor"
	xerrors "caseflow-service/internal/pkg/errors"
	"caseflow-service/internal/store"

	"go.uber.org/zap"
)

// Ledger is the append-only interaction trail. One entry per successful
// case/customer mutation; entries are never updated or deleted.
type Ledger struct {
	entries store.HistoryStore
	logger  *zap.Logger
}

func NewLedger(entries store.HistoryStore, logger *zap.Logger) *Ledger {
	return &Ledger{entries: entries, logger: logger}
}

// Record appends one entry. The actor snapshot is copied in full at write
// time so the timeline survives admin deletion.
func (l *Ledger) Record(ctx context.Context, typ history.EntryType, caseID, customerID, message string, act actor.Actor, metadata map[string]string) (*history.Entry, error) {
	if caseID == "" && customerID == "" {
		return nil, fmt.Errorf("%w: ledger entry needs a case or customer reference", xerrors.ErrInvalidInput)
	}

	e := &history.Entry{
		CaseID:     caseID,
		CustomerID: customerID,
		Type:       typ,
		Message:    message,
		Actor:      act,
		Metadata:   metadata,
	}
	if err := l.entries.Append(ctx, e); err != nil {
		return nil, fmt.Errorf("append ledger entry: %w", err)
	}

	l.logger.Debug("ledger entry recorded",
		zap.String("type", string(typ)),
		zap.String("case_id", caseID),
		zap.String("customer_id", customerID),
		zap.String("actor_id", act.ID),
	)
	return e, nil
}

// ForCase returns the per-case timeline, newest first.
func (l *Ledger) ForCase(ctx context.Context, caseID string) ([]*history.Entry, error) {
	return l.entries.FindByCase(ctx, caseID)
}

// ForCustomer returns the per-customer timeline, newest first.
func (l *Ledger) ForCustomer(ctx context.Context, customerID string) ([]*history.Entry, error) {
	return l.entries.FindByCustomer(ctx, customerID)
}
