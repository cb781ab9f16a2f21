// internal/service/sweeper/sweeper.go
package sweeper

import (
	"context"
	"fmt"
	"time"

	casedomain "caseflow-service/internal/domain/cases"
	"caseflow-service/internal/pkg/actor"
	"caseflow-service/internal/service/appsettings"
	caseservice "caseflow-service/internal/service/cases"
	"caseflow-service/internal/store"
	"caseflow-service/internal/ws"

	"go.uber.org/zap"
)

// Sweeper runs the two timed background passes over open cases: the
// daily auto-status transition and the more frequent attention scan.
// Both read global settings fresh on every tick so configuration
// changes apply without a restart.
type Sweeper struct {
	settings  *appsettings.Service
	cases     *caseservice.Service
	caseStore store.CaseStore
	customers store.CustomerStore
	hub       *ws.Hub
	logger    *zap.Logger

	sweepInterval time.Duration
	scanInterval  time.Duration
}

func New(settings *appsettings.Service, cases *caseservice.Service, caseStore store.CaseStore, customers store.CustomerStore, hub *ws.Hub, logger *zap.Logger, sweepInterval, scanInterval time.Duration) *Sweeper {
	if sweepInterval <= 0 {
		sweepInterval = 24 * time.Hour
	}
	if scanInterval <= 0 {
		scanInterval = 4 * time.Hour
	}
	return &Sweeper{
		settings:      settings,
		cases:         cases,
		caseStore:     caseStore,
		customers:     customers,
		hub:           hub,
		logger:        logger,
		sweepInterval: sweepInterval,
		scanInterval:  scanInterval,
	}
}

// Run blocks until ctx is cancelled, firing both passes on their own
// tickers. It shares no state with request handling beyond the store.
func (s *Sweeper) Run(ctx context.Context) {
	sweep := time.NewTicker(s.sweepInterval)
	scan := time.NewTicker(s.scanInterval)
	defer sweep.Stop()
	defer scan.Stop()

	s.logger.Info("inactivity sweeper started",
		zap.Duration("sweep_interval", s.sweepInterval),
		zap.Duration("scan_interval", s.scanInterval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("inactivity sweeper stopped")
			return
		case <-sweep.C:
			if n, err := s.SweepOnce(ctx); err != nil {
				s.logger.Error("auto-status sweep failed", zap.Error(err))
			} else if n > 0 {
				s.logger.Info("auto-status sweep finished", zap.Int("transitioned", n))
			}
		case <-scan.C:
			if n, err := s.ScanOnce(ctx); err != nil {
				s.logger.Error("inactivity scan failed", zap.Error(err))
			} else if n > 0 {
				s.logger.Info("inactivity scan finished", zap.Int("flagged", n))
			}
		}
	}
}

// SweepOnce forces every open case untouched past the configured window
// to the configured target status. Transitions go through the same
// audited update path interactive edits use, under the system actor, so
// each one leaves a status_changed ledger entry.
func (s *Sweeper) SweepOnce(ctx context.Context) (int, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("load settings: %w", err)
	}
	rules := cfg.AutoStatus
	if !rules.Enabled {
		return 0, nil
	}
	if rules.InactivityDays <= 0 || rules.TargetStatus == "" {
		s.logger.Warn("auto-status rule enabled but misconfigured, skipping",
			zap.Int("inactivity_days", rules.InactivityDays),
			zap.String("target_status", string(rules.TargetStatus)),
		)
		return 0, nil
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -rules.InactivityDays)
	stale, err := s.caseStore.FindOpenUpdatedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("find stale cases: %w", err)
	}

	system := actor.System()
	transitioned := 0
	for _, c := range stale {
		if c.Status == rules.TargetStatus {
			continue
		}
		target := rules.TargetStatus
		if _, _, err := s.cases.Update(ctx, system, c.ID, &casedomain.UpdateCaseRequest{Status: &target}); err != nil {
			s.logger.Error("auto-status transition failed",
				zap.String("case_id", c.ID),
				zap.Error(err),
			)
			continue
		}
		s.logger.Info("case auto-transitioned after inactivity",
			zap.String("case_id", c.ID),
			zap.String("from", string(c.Status)),
			zap.String("to", string(target)),
			zap.Int("inactivity_days", rules.InactivityDays),
		)
		transitioned++
	}
	return transitioned, nil
}

// ScanOnce flags open cases past the attention threshold. It only
// alerts; no case is mutated.
func (s *Sweeper) ScanOnce(ctx context.Context) (int, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("load settings: %w", err)
	}
	days := cfg.Notifications.InactivityThresholdDays
	if days <= 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -days)
	stale, err := s.caseStore.FindOpenUpdatedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("find stale cases: %w", err)
	}

	for _, c := range stale {
		name := ""
		if cust, err := s.customers.FindByID(ctx, c.CustomerID); err == nil {
			name = cust.Name
		}
		idle := int(now.Sub(c.UpdatedAt).Hours() / 24)
		alert := ws.Alert{
			CaseID:         c.ID,
			CustomerName:   name,
			Status:         string(c.Status),
			DaysSinceTouch: idle,
			Message:        fmt.Sprintf("Case %s (%s) has had no activity for %d days", c.ID, name, idle),
		}
		s.hub.Broadcast(ws.EventInactivityAlert, alert)
		s.logger.Warn("case needs attention",
			zap.String("case_id", c.ID),
			zap.String("status", string(c.Status)),
			zap.Int("days_idle", idle),
		)
	}
	return len(stale), nil
}
