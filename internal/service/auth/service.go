package auth

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/pkg/auth"
	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
	"github.com/lezerquera/apk-ZIMI/pkg/security"
)

const (
	msgAdminLoggedIn           = "Admin login exitoso"
	msgInvalidAdminCredentials = "Credenciales de administrador inválidas"
)

// Service authenticates the single administrative actor.
type Service struct {
	credentials *security.Credentials
	jwtSvc      auth.JWTService
	logger      zerolog.Logger
}

func NewService(credentials *security.Credentials, jwtSvc auth.JWTService, logger zerolog.Logger) *Service {
	return &Service{credentials: credentials, jwtSvc: jwtSvc, logger: logger}
}

func (s *Service) AdminLogin(req *model.AdminLoginRequest) (*model.AdminLoginResponse, error) {
	if err := s.credentials.Verify(req.Email, req.Password); err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			s.logger.Warn().Str("email", req.Email).Msg("admin login rejected")
			return nil, apperrors.New(apperrors.ErrUnauthorized, msgInvalidAdminCredentials, err)
		}
		return nil, fmt.Errorf("failed to verify admin credentials: %w", err)
	}

	token, err := s.jwtSvc.GenerateAccessToken(req.Email, model.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.AdminLoginResponse{
		Message:     msgAdminLoggedIn,
		Role:        model.RoleAdmin,
		AccessToken: token,
	}, nil
}

// Authorize validates an admin bearer token.
func (s *Service) Authorize(token string) (*model.TokenClaims, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}
	if claims.Role != model.RoleAdmin {
		return nil, apperrors.New(apperrors.ErrForbidden, "forbidden", nil)
	}
	return claims, nil
}
