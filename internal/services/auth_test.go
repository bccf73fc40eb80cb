package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"equipment-system/internal/dto"
	"equipment-system/pkg/config"
	apperrors "equipment-system/pkg/errors"
	"equipment-system/pkg/service"
	"equipment-system/pkg/utils"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	admin := config.AdminConfig{Login: "admin", PasswordHash: hash}
	jwtSvc := service.NewJWTService("test-secret", time.Hour, 24*time.Hour, zap.NewNop())
	return NewAuthService(admin, jwtSvc, zap.NewNop())
}

func TestLogin(t *testing.T) {
	svc := newAuthFixture(t)

	pair, err := svc.Login(context.Background(), dto.LoginDTO{Login: "admin", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginDTO{Login: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginDTO{Login: "root", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	svc := newAuthFixture(t)

	pair, err := svc.Login(context.Background(), dto.LoginDTO{Login: "admin", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), dto.RefreshDTO{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// Access-токен в обмен не принимается.
	_, err = svc.Refresh(context.Background(), dto.RefreshDTO{RefreshToken: pair.AccessToken})
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)
}
