//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"stayops/internal/domain/user"
	"stayops/internal/pkg/config"
	"stayops/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens directly against the configured secret; there is no
// login endpoint to go through.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) CustomerToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	return h.token(t, user.Principal{ID: userID, Kind: user.KindCustomer})
}

func (h *JWTHelper) StaffToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.token(t, user.Principal{ID: userID, Kind: user.KindStaff, Role: role})
}

func (h *JWTHelper) token(t *testing.T, p user.Principal) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(p)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(user.Principal{ID: userID, Kind: user.KindCustomer})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
