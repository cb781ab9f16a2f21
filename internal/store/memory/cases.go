package memory

import (
	"context"
	"sort"
	"time"

	"caseflow-service/internal/domain/cases"
	xerrors "caseflow-service/internal/pkg/errors"
)

type caseStore struct{ s *Store }

func (cs caseStore) Create(ctx context.Context, c *cases.Case) error {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

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

	cp := *c
	cs.s.cases[c.ID] = &cp
	return nil
}

func (cs caseStore) FindByID(ctx context.Context, id string) (*cases.Case, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	c, ok := cs.s.cases[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (cs caseStore) FindBySerial(ctx context.Context, serial string) (*cases.Case, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	for _, c := range cs.s.cases {
		if c.Serial == serial {
			cp := *c
			return &cp, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (cs caseStore) FindAll(ctx context.Context) ([]*cases.Case, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	out := make([]*cases.Case, 0, len(cs.s.cases))
	for _, c := range cs.s.cases {
		cp := *c
		out = append(out, &cp)
	}
	sortNewestFirst(out)
	return out, nil
}

func (cs caseStore) FindByCustomer(ctx context.Context, customerID string) ([]*cases.Case, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	var out []*cases.Case
	for _, c := range cs.s.cases {
		if c.CustomerID == customerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (cs caseStore) FindOpenUpdatedBefore(ctx context.Context, cutoff time.Time) ([]*cases.Case, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	var out []*cases.Case
	for _, c := range cs.s.cases {
		if c.Status.IsOpen() && c.UpdatedAt.Before(cutoff) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (cs caseStore) Update(ctx context.Context, c *cases.Case) error {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	if _, ok := cs.s.cases[c.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *c
	cs.s.cases[c.ID] = &cp
	return nil
}

func (cs caseStore) Delete(ctx context.Context, id string) error {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	if _, ok := cs.s.cases[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(cs.s.cases, id)
	return nil
}

func (cs caseStore) DeleteByCustomer(ctx context.Context, customerID string) error {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	for id, c := range cs.s.cases {
		if c.CustomerID == customerID {
			delete(cs.s.cases, id)
		}
	}
	return nil
}

func sortNewestFirst(cc []*cases.Case) {
	sort.Slice(cc, func(i, j int) bool {
		return cc[i].CreatedAt.After(cc[j].CreatedAt)
	})
}
