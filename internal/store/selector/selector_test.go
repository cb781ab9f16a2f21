package selector

import (
	"context"
	"testing"
	"time"

	"caseflow-service/internal/domain/admin"
	"caseflow-service/internal/store/memory"
	"caseflow-service/internal/store/surreal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUnreachableDurableStoreFallsBackToMemory(t *testing.T) {
	st, err := Select(context.Background(), Options{
		Surreal: surreal.Config{
			// Port 1 is never listening locally.
			URL:       "ws://127.0.0.1:1/rpc",
			Namespace: "test",
			Database:  "test",
		},
		ProbeTimeout:  time.Second,
		AdminUsername: "root",
		AdminEmail:    "root@example.com",
		AdminPassword: "boot-pass",
		AdminName:     "Root",
	}, zap.NewNop())
	require.NoError(t, err)

	_, ok := st.(*memory.Store)
	assert.True(t, ok, "probe failure must select the ephemeral backend")

	// The degraded process still has its bootstrap account.
	seeded, err := st.Admins().FindByUsername(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, admin.RoleSuperAdmin, seeded.Role)
	assert.NotEqual(t, "boot-pass", seeded.PasswordHash, "password must be stored hashed")
}
