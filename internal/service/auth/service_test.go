package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/pkg/auth"
	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
	"github.com/lezerquera/apk-ZIMI/pkg/security"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	creds, err := security.NewCredentials("admin@drzerquera.com", "ZimiAdmin2025!", "", security.NewBcryptHasher(4))
	require.NoError(t, err)
	return NewService(creds, auth.NewJWTService("secret", "zimi-api", time.Hour), zerolog.Nop())
}

func TestAdminLoginIssuesToken(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.AdminLogin(&model.AdminLoginRequest{Email: "Admin@DrZerquera.com", Password: "ZimiAdmin2025!"})
	require.NoError(t, err)
	assert.Equal(t, msgAdminLoggedIn, resp.Message)
	assert.Equal(t, model.RoleAdmin, resp.Role)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := svc.Authorize(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "Admin@DrZerquera.com", claims.Email)
}

func TestAdminLoginRejectsBadPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AdminLogin(&model.AdminLoginRequest{Email: "admin@drzerquera.com", Password: "wrong"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
	assert.Equal(t, msgInvalidAdminCredentials, appErr.Message)
}

func TestAuthorizeRejectsNonAdmin(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.jwtSvc.GenerateAccessToken("p@example.com", "patient")
	require.NoError(t, err)

	_, err = svc.Authorize(token)
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))

	_, err = svc.Authorize("garbage")
	assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
}
