package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezerquera/apk-ZIMI/internal/model"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret", "zimi-api", time.Hour)

	token, err := svc.GenerateAccessToken("admin@drzerquera.com", model.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@drzerquera.com", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, err := NewJWTService("other", "zimi-api", time.Hour).GenerateAccessToken("x@y.z", model.RoleAdmin)
	require.NoError(t, err)

	_, err = NewJWTService("secret", "zimi-api", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewJWTService("secret", "zimi-api", time.Minute).(*jwtService)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.GenerateAccessToken("x@y.z", model.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
