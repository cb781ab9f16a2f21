package memory

import (
	"context"
	"time"

	"caseflow-service/internal/domain/settings"
	xerrors "caseflow-service/internal/pkg/errors"
)

type settingsStore struct{ s *Store }

func (ss settingsStore) Get(ctx context.Context) (*settings.Settings, error) {
	ss.s.mu.RLock()
	defer ss.s.mu.RUnlock()

	if ss.s.settings == nil {
		return nil, xerrors.ErrNotFound
	}
	cp := *ss.s.settings
	return &cp, nil
}

func (ss settingsStore) Save(ctx context.Context, st *settings.Settings) error {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	st.ID = settings.GlobalID
	st.UpdatedAt = time.Now().UTC()
	cp := *st
	ss.s.settings = &cp
	return nil
}
