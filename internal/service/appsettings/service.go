// internal/service/appsettings/service.go
package appsettings

import (
	"context"
	"errors"
	"fmt"

	"caseflow-service/internal/domain/settings"
	xerrors "caseflow-service/internal/pkg/errors"
	"caseflow-service/internal/store"

	"go.uber.org/zap"
)

// Service manages the single global settings document.
type Service struct {
	settings store.SettingsStore
	logger   *zap.Logger
}

func NewService(settingsStore store.SettingsStore, logger *zap.Logger) *Service {
	return &Service{settings: settingsStore, logger: logger}
}

// Get returns the global settings, materializing defaults on first read so
// callers never see a missing document.
func (s *Service) Get(ctx context.Context) (*settings.Settings, error) {
	st, err := s.settings.Get(ctx)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, xerrors.ErrNotFound) {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	st = settings.Defaults()
	if err := s.settings.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("persist default settings: %w", err)
	}
	s.logger.Info("default settings materialized")
	return st, nil
}

// Update merges the request into the current document one top-level
// section at a time; sections left nil are untouched.
func (s *Service) Update(ctx context.Context, req *settings.UpdateSettingsRequest) (*settings.Settings, error) {
	st, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.Notifications != nil {
		st.Notifications = *req.Notifications
	}
	if req.Reminders != nil {
		st.Reminders = *req.Reminders
	}
	if req.Exports != nil {
		st.Exports = *req.Exports
	}
	if req.Views != nil {
		st.Views = *req.Views
	}
	if req.AutoStatus != nil {
		st.AutoStatus = *req.AutoStatus
	}

	if err := s.settings.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return st, nil
}

// Reset restores the defaults.
func (s *Service) Reset(ctx context.Context) (*settings.Settings, error) {
	st := settings.Defaults()
	if err := s.settings.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("reset settings: %w", err)
	}
	s.logger.Info("settings reset to defaults")
	return st, nil
}
