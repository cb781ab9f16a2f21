package memory

import (
	"context"
	"time"

	"caseflow-service/internal/domain/admin"
	xerrors "caseflow-service/internal/pkg/errors"
)

type adminStore struct{ s *Store }

func (as adminStore) Create(ctx context.Context, a *admin.Admin) error {
	as.s.mu.Lock()
	defer as.s.mu.Unlock()

	for _, existing := range as.s.admins {
		if existing.Username == a.Username || existing.Email == a.Email {
			return xerrors.ErrConflict
		}
	}
	if a.ID == "" {
		a.ID = newID()
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	cp := *a
	as.s.admins[a.ID] = &cp
	return nil
}

func (as adminStore) FindByID(ctx context.Context, id string) (*admin.Admin, error) {
	as.s.mu.RLock()
	defer as.s.mu.RUnlock()

	a, ok := as.s.admins[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (as adminStore) FindByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	as.s.mu.RLock()
	defer as.s.mu.RUnlock()

	for _, a := range as.s.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (as adminStore) FindAll(ctx context.Context) ([]*admin.Admin, error) {
	as.s.mu.RLock()
	defer as.s.mu.RUnlock()

	out := make([]*admin.Admin, 0, len(as.s.admins))
	for _, a := range as.s.admins {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (as adminStore) Update(ctx context.Context, a *admin.Admin) error {
	as.s.mu.Lock()
	defer as.s.mu.Unlock()

	if _, ok := as.s.admins[a.ID]; !ok {
		return xerrors.ErrNotFound
	}
	a.UpdatedAt = time.Now().UTC()
	cp := *a
	as.s.admins[a.ID] = &cp
	return nil
}

func (as adminStore) Delete(ctx context.Context, id string) error {
	as.s.mu.Lock()
	defer as.s.mu.Unlock()

	if _, ok := as.s.admins[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(as.s.admins, id)
	return nil
}
