package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/httperr"
)

const (
	ContextStaffEmail = "staffEmail"
	ContextStaffRole  = "staffRole"
)

// AuthMiddleware accepts HS256 bearer tokens whose subject is the staff
// e-mail.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "invalid authorization header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "invalid token claims")
			return
		}

		email, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if email == "" {
			httperr.Unauthorized(c, "invalid_token_payload", "invalid token payload")
			return
		}

		c.Set(ContextStaffEmail, email)
		c.Set(ContextStaffRole, role)

		c.Next()
	}
}

// StaffEmail returns the authenticated actor, or "" on public routes.
func StaffEmail(c *gin.Context) string {
	return c.GetString(ContextStaffEmail)
}
