package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
)

const ContextAdminEmail = "admin_email"

// TokenAuthorizer validates a bearer token for the admin role.
type TokenAuthorizer interface {
	Authorize(token string) (*model.TokenClaims, error)
}

type AuthMiddleware struct {
	authorizer TokenAuthorizer
	required   bool
}

// NewAuthMiddleware builds the admin guard. When required is false a missing
// token is let through but a bad one is still rejected.
func NewAuthMiddleware(authorizer TokenAuthorizer, required bool) *AuthMiddleware {
	return &AuthMiddleware{authorizer: authorizer, required: required}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if m.required {
				_ = c.Error(apperrors.New(apperrors.ErrUnauthorized, "missing authorization header", nil))
				c.Abort()
				return
			}
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			_ = c.Error(apperrors.New(apperrors.ErrUnauthorized, "invalid authorization format", nil))
			c.Abort()
			return
		}

		claims, err := m.authorizer.Authorize(strings.TrimSpace(parts[1]))
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(ContextAdminEmail, claims.Email)
		c.Next()
	}
}
