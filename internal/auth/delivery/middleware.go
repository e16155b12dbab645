package delivery

import (
	"strings"

	authdomain "imf-gadget-backend/internal/auth/domain"
	"imf-gadget-backend/internal/auth/usecase"
	"imf-gadget-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	userContextKey  = "user"
	tokenContextKey = "token"
)

// AuthMiddleware authenticates the request from the http-only "token"
// cookie, falling back to an Authorization bearer header. The :id path
// segment, when present, must match the token's user.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.AbortWith(c, response.Unauthorized("Please log in first!"))
			return
		}

		user, err := authUsecase.ValidateToken(token)
		if err != nil {
			response.AbortWith(c, err)
			return
		}

		// Ownership-scoped URLs carry the user id; a mismatch means the
		// caller is poking at someone else's resources.
		if id := c.Param("id"); id != "" && id != user.ID {
			response.AbortWith(c, response.Forbidden("You are not authorized to access this resource!"))
			return
		}

		SetCurrentUser(c, user)
		c.Set(tokenContextKey, token)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// SetCurrentUser attaches the authenticated user to the request context.
func SetCurrentUser(c *gin.Context, user *authdomain.User) {
	c.Set(userContextKey, user)
}

// CurrentUser returns the authenticated user attached by AuthMiddleware.
func CurrentUser(c *gin.Context) *authdomain.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*authdomain.User); ok {
			return user
		}
	}
	return nil
}

// CurrentToken returns the raw token the request authenticated with.
func CurrentToken(c *gin.Context) string {
	return c.GetString(tokenContextKey)
}
