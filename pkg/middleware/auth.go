package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jpviradiya/iTube/internal/entity"
	"github.com/jpviradiya/iTube/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// UserLoader resolves the acting user once the token checks out.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// AuthMiddleware authenticates the request from the accessToken cookie,
// falling back to a bearer Authorization header for non-browser
// clients. The token subject must still exist; a valid token for a
// deleted account is rejected. On success the user id and the
// sanitized user are stored on the context.
func AuthMiddleware(jwtService *jwt.Service, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			abortUnauthorized(c, "unauthorized request")
			return
		}

		claims, err := jwtService.ValidateToken(token, jwt.AccessToken)
		if err != nil {
			abortUnauthorized(c, "invalid access token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthorized(c, "invalid access token")
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user", user.Sanitized())
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the viewer identity when credentials
// are present but never rejects the request. Public reads use it to
// personalize responses.
func OptionalAuthMiddleware(jwtService *jwt.Service, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := tokenFromRequest(c); token != "" {
			if claims, err := jwtService.ValidateToken(token, jwt.AccessToken); err == nil {
				if user, err := users.GetByID(c.Request.Context(), claims.UserID); err == nil {
					c.Set("user_id", user.ID)
					c.Set("user", user.Sanitized())
				}
			}
		}
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie("accessToken"); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"statusCode": http.StatusUnauthorized,
		"data":       nil,
		"message":    message,
		"success":    false,
		"errors":     []string{},
	})
	c.Abort()
}
