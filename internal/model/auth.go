package model

import (
	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

// AdminLoginRequest is read from the query string.
type AdminLoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type AdminLoginResponse struct {
	Message     string `json:"message"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
}

// TokenClaims represents JWT claims
type TokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}
