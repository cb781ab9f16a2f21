package memory

import (
	"context"
	"sort"
	"time"

	"caseflow-service/internal/domain/quickcase"
	xerrors "caseflow-service/internal/pkg/errors"
)

type quickCaseStore struct{ s *Store }

func (qs quickCaseStore) Create(ctx context.Context, q *quickcase.QuickCase) error {
	qs.s.mu.Lock()
	defer qs.s.mu.Unlock()

	if q.ID == "" {
		q.ID = newID()
	}
	now := time.Now().UTC()
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	q.UpdatedAt = now

	cp := *q
	qs.s.quickCases[q.ID] = &cp
	return nil
}

func (qs quickCaseStore) FindByID(ctx context.Context, id string) (*quickcase.QuickCase, error) {
	qs.s.mu.RLock()
	defer qs.s.mu.RUnlock()

	q, ok := qs.s.quickCases[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (qs quickCaseStore) FindByStatus(ctx context.Context, status quickcase.Status) ([]*quickcase.QuickCase, error) {
	qs.s.mu.RLock()
	defer qs.s.mu.RUnlock()

	var out []*quickcase.QuickCase
	for _, q := range qs.s.quickCases {
		if q.Status == status {
			cp := *q
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (qs quickCaseStore) Update(ctx context.Context, q *quickcase.QuickCase) error {
	qs.s.mu.Lock()
	defer qs.s.mu.Unlock()

	if _, ok := qs.s.quickCases[q.ID]; !ok {
		return xerrors.ErrNotFound
	}
	q.UpdatedAt = time.Now().UTC()
	cp := *q
	qs.s.quickCases[q.ID] = &cp
	return nil
}

func (qs quickCaseStore) Delete(ctx context.Context, id string) error {
	qs.s.mu.Lock()
	defer qs.s.mu.Unlock()

	if _, ok := qs.s.quickCases[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(qs.s.quickCases, id)
	return nil
}
