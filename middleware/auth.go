package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/cornbelt-mill/cornbelt-site-api/models"
)

// TokenTTL is how long an admin session token stays valid.
const TokenTTL = 24 * time.Hour

// IssueToken signs an HS256 session token for an admin user.
func IssueToken(secret string, admin *models.AdminUser) (string, error) {
	claims := jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", admin.ID),
		"email": admin.Email,
		"name":  admin.FullName,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// AdminAuth is a middleware that validates the bearer token on admin routes.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			abortUnauthorized(c, "MISSING_TOKEN", "Authorization header is required")
			return
		}

		parts := strings.SplitN(raw, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "INVALID_TOKEN", "Authorization header must be a bearer token")
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "INVALID_TOKEN", "Failed to validate session token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "INVALID_CLAIMS", "Claims are not in the expected format")
			return
		}

		if email, _ := claims["email"].(string); email != "" {
			c.Set("admin_email", email)
		}
		c.Set("admin_claims", claims)
		c.Next()
	}
}

// GetAdminEmail extracts the authenticated admin's email from the Gin context
func GetAdminEmail(c *gin.Context) (string, error) {
	email, exists := c.Get("admin_email")
	if !exists {
		return "", &AuthError{Code: "MISSING_ADMIN", Message: "Admin identity not found in context"}
	}

	emailStr, ok := email.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_ADMIN", Message: "Admin identity is not a string"}
	}

	return emailStr, nil
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
