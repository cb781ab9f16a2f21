package memory

import (
	"context"
	"fmt"
	"time"

	"caseflow-service/internal/domain/customer"
	xerrors "caseflow-service/internal/pkg/errors"
)

type customerStore struct{ s *Store }

func (cs customerStore) Create(ctx context.Context, c *customer.Customer) error {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	if c.ID == "" {
		c.ID = newID()
	}
	cs.s.customerSeq++
	c.Number = fmt.Sprintf("CUST-%04d", cs.s.customerSeq)

	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	cp := *c
	cs.s.customers[c.ID] = &cp
	return nil
}

func (cs customerStore) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	c, ok := cs.s.customers[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (cs customerStore) FindByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	for _, c := range cs.s.customers {
		if c.Phone == phone {
			cp := *c
			return &cp, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (cs customerStore) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	out := make([]*customer.Customer, 0, len(cs.s.customers))
	for _, c := range cs.s.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (cs customerStore) Update(ctx context.Context, c *customer.Customer) error {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	if _, ok := cs.s.customers[c.ID]; !ok {
		return xerrors.ErrNotFound
	}
	c.UpdatedAt = time.Now().UTC()
	cp := *c
	cs.s.customers[c.ID] = &cp
	return nil
}

func (cs customerStore) Delete(ctx context.Context, id string) error {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	if _, ok := cs.s.customers[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(cs.s.customers, id)
	return nil
}
