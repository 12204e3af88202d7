package middleware

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/cleaningmadeasy/laundry-api/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAdmin is a middleware that validates the Bearer token issued by
// the admin login and stores the admin identity in the request context.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "MISSING_TOKEN",
					"message": "Access token required",
				},
			})
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			log.Printf("Encountered error while validating JWT: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_TOKEN",
					"message": "Invalid token",
				},
			})
			c.Abort()
			return
		}

		// Store the admin identity in Gin context
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if username, ok := claims["username"].(string); ok {
				c.Set("admin_user", username)
			}
		}

		c.Next()
	}
}

// GetAdminUser extracts the authenticated admin username from the Gin context
func GetAdminUser(c *gin.Context) (string, error) {
	user, exists := c.Get("admin_user")
	if !exists {
		return "", &AuthError{Code: "MISSING_ADMIN_USER", Message: "Admin user not found in context"}
	}

	username, ok := user.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_ADMIN_USER", Message: "Admin user is not a string"}
	}

	return username, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
