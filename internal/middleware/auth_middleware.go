package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanish/hostelhub/internal/app/models/dto"
	"github.com/tanish/hostelhub/internal/pkg/auth"
)

// Context keys set by the auth middlewares
const (
	ContextRollNo   = "roll_no"
	ContextWardenID = "warden_id"
	ContextDName    = "d_name"
)

// AuthMiddleware guards routes with role-scoped JWT verification
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message, details string) {
	errorDetail := dto.NewErrorDetail(code, message).WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// extractToken pulls the bearer token out of the Authorization header
func extractToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		abortUnauthorized(c, dto.ErrorCodeTokenMissing, "Authentication required", "Authorization header missing")
		return "", false
	}

	tokenString, err := auth.ExtractBearerToken(authHeader)
	if err != nil {
		abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Authentication failed", "Invalid token format")
		return "", false
	}
	return tokenString, true
}

// abortVerifyError maps verification failures to the right 401/403 body
func abortVerifyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Authentication failed", "Token has expired")
	case errors.Is(err, auth.ErrRoleMismatch):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeRoleMismatch, "Access denied").
			WithDetails("Token does not carry the required role")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	default:
		abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Authentication failed", "Invalid token")
	}
}

// StudentAuth admits only tokens issued to students and exposes the roll
// number on the request context
func (m *AuthMiddleware) StudentAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c)
		if !ok {
			return
		}

		claims, err := m.jwtService.VerifyStudent(tokenString)
		if err != nil {
			abortVerifyError(c, err)
			return
		}

		c.Set(ContextRollNo, claims.RollNo)
		c.Next()
	}
}

// WardenAuth admits only tokens issued to wardens
func (m *AuthMiddleware) WardenAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c)
		if !ok {
			return
		}

		claims, err := m.jwtService.VerifyWarden(tokenString)
		if err != nil {
			abortVerifyError(c, err)
			return
		}

		c.Set(ContextWardenID, claims.WardenID)
		c.Next()
	}
}

// SupportAuth admits only tokens issued to support department admins
func (m *AuthMiddleware) SupportAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c)
		if !ok {
			return
		}

		claims, err := m.jwtService.VerifySupport(tokenString)
		if err != nil {
			abortVerifyError(c, err)
			return
		}

		c.Set(ContextDName, claims.DName)
		c.Next()
	}
}
