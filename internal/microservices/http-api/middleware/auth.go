package middleware

import (
	"errors"
	"net/http"
	"strings"

	"recipehub/internal/microservices/http-api/models"
	"recipehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// AuthMiddleware is a Gin middleware for bearer token authentication of API requests.
// It resolves the token to a user and stores it in the context; handlers read it
// with CurrentUser and never take a user id from the request itself.
func AuthMiddleware(resolver service.IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, "Not authenticated")
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				unauthorized(c, "Token has expired")
			case errors.Is(err, service.ErrTokenMissingSubject):
				unauthorized(c, "Missing username in token")
			case errors.Is(err, service.ErrUserNotFound):
				unauthorized(c, "User not found")
			case errors.Is(err, service.ErrUnauthenticated):
				unauthorized(c, "Invalid token")
			default:
				LoggerFrom(c).Error("storage_failure", "op", "resolve_identity", "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}

		c.Set(currentUserKey, user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}

// bearerToken extracts the token from "Bearer <token>". The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

