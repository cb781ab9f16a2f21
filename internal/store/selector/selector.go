// Package selector picks the storage backend exactly once at process
// start. There is no reconnection or hot-swap: if the durable store comes
// back later, the process keeps the backend it booted with. Deliberate
// simplicity trade-off, documented as a limitation.
package selector

import (
	"context"
	"time"

	"caseflow-service/internal/domain/admin"
	"caseflow-service/internal/store"
	"caseflow-service/internal/store/memory"
	"caseflow-service/internal/store/surreal"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Options struct {
	Surreal      surreal.Config
	ProbeTimeout time.Duration

	// Bootstrap superadmin credentials, guaranteed present on whichever
	// backend wins.
	AdminUsername string
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// Select probes the durable store within the configured timeout. Probe
// failure is never fatal: the process degrades to the ephemeral backend
// and keeps serving, which must be loud in the logs so operators notice
// data is non-durable.
func Select(ctx context.Context, opts Options, logger *zap.Logger) (store.Store, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	seed := &admin.Admin{
		Username:     opts.AdminUsername,
		Email:        opts.AdminEmail,
		PasswordHash: string(hash),
		DisplayName:  opts.AdminName,
		Role:         admin.RoleSuperAdmin,
	}

	timeout := opts.ProbeTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	durable, err := surreal.Open(probeCtx, opts.Surreal)
	if err == nil {
		if err := durable.EnsureSuperAdmin(probeCtx, seed); err != nil {
			logger.Error("failed to bootstrap superadmin on durable store", zap.Error(err))
		}
		logger.Info("durable store selected",
			zap.String("url", opts.Surreal.URL),
			zap.String("database", opts.Surreal.Database),
		)
		return durable, nil
	}

	logger.Warn("persistent storage unreachable, falling back to in-memory store; data will not survive a restart",
		zap.Error(err),
	)
	return memory.New(seed), nil
}
