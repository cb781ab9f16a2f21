package memory

import (
	"context"
	"time"

	"caseflow-service/internal/domain/history"
	xerrors "caseflow-service/internal/pkg/errors"
)

type historyStore struct{ s *Store }

func (hs historyStore) Append(ctx context.Context, e *history.Entry) error {
	if e.CaseID == "" && e.CustomerID == "" {
		return xerrors.ErrInvalidInput
	}

	hs.s.mu.Lock()
	defer hs.s.mu.Unlock()

	if e.ID == "" {
		e.ID = newID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	cp := *e
	if e.Metadata != nil {
		cp.Metadata = make(map[string]string, len(e.Metadata))
		for k, v := range e.Metadata {
			cp.Metadata[k] = v
		}
	}
	hs.s.entries = append(hs.s.entries, &cp)
	return nil
}

// FindByCase returns entries newest-first; insertion order breaks timestamp
// ties.
func (hs historyStore) FindByCase(ctx context.Context, caseID string) ([]*history.Entry, error) {
	hs.s.mu.RLock()
	defer hs.s.mu.RUnlock()

	var out []*history.Entry
	for i := len(hs.s.entries) - 1; i >= 0; i-- {
		if hs.s.entries[i].CaseID == caseID {
			cp := *hs.s.entries[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (hs historyStore) FindByCustomer(ctx context.Context, customerID string) ([]*history.Entry, error) {
	hs.s.mu.RLock()
	defer hs.s.mu.RUnlock()

	var out []*history.Entry
	for i := len(hs.s.entries) - 1; i >= 0; i-- {
		if hs.s.entries[i].CustomerID == customerID {
			cp := *hs.s.entries[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}
