package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"recipehub/internal/microservices/http-api/middleware"
	"recipehub/internal/microservices/http-api/models"
	"recipehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

// errorResponses maps domain errors onto a status and a stable client message.
var errorResponses = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrDuplicateIdentity, http.StatusConflict, "Account creation failed"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{service.ErrPasswordTooLong, http.StatusBadRequest, "Password must be at most 72 bytes"},
	{service.ErrRecipeNotFound, http.StatusNotFound, "Recipe not found"},
	{service.ErrNotRecipeAuthor, http.StatusForbidden, "Only the author can modify this recipe"},
	{service.ErrRatingNotFound, http.StatusNotFound, "Rating not found"},
	{service.ErrInvalidRatingValue, http.StatusBadRequest, "Rating must be between 1 and 3"},
	{service.ErrAlreadyRated, http.StatusBadRequest, "Already rated"},
	{service.ErrFavoriteNotFound, http.StatusNotFound, "Favorite not found"},
	{service.ErrAlreadyFavorited, http.StatusBadRequest, "Already favorited"},
}

// respondError writes the client-facing form of err. Unknown errors are storage
// failures: logged with the request context and hidden behind a generic 500.
func respondError(c *gin.Context, op string, err error) {
	for _, r := range errorResponses {
		if errors.Is(err, r.err) {
			if r.status == http.StatusUnauthorized {
				c.Header("WWW-Authenticate", "Bearer")
			}
			c.JSON(r.status, gin.H{"error": r.message})
			return
		}
	}

	middleware.LoggerFrom(c).Error("storage_failure", "op", op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func recipeIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("recipe_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return 0, false
	}
	return id, true
}

// currentUser is only called behind AuthMiddleware
func currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return nil, false
	}
	return user, true
}

func currentUserID(c *gin.Context) (string, bool) {
	user, ok := currentUser(c)
	if !ok {
		return "", false
	}
	return user.ID, true
}
