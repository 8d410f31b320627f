package handler

import (
	"context"
	"fmt"
	"net/http"

	"recipehub/internal/microservices/http-api/dto"
	"recipehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers rating-related routes under /recipes
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	ratings := router.Group("/:recipe_id/ratings")
	{
		// Public
		ratings.GET("/average", h.GetAverage)

		// Caller's own rating
		ratings.POST("", requireAuth, h.Create)
		ratings.GET("/me", requireAuth, h.GetUserRating)
		ratings.PUT("", requireAuth, h.Update)
		ratings.DELETE("", requireAuth, h.Delete)
	}
}

// Create rates a recipe
// POST /recipes/:recipe_id/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	rating, err := h.ratingService.Create(ctx, userID, recipeID, *req.Value)
	if err != nil {
		respondError(c, "create_rating", err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}

// GetUserRating retrieves the current user's rating for a recipe
// GET /recipes/:recipe_id/ratings/me
func (h *RatingHandler) GetUserRating(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	rating, err := h.ratingService.Get(ctx, userID, recipeID)
	if err != nil {
		respondError(c, "get_rating", err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

// Update changes the value of the current user's rating
// PUT /recipes/:recipe_id/ratings
func (h *RatingHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	rating, err := h.ratingService.Update(ctx, userID, recipeID, *req.Value)
	if err != nil {
		respondError(c, "update_rating", err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

// Delete removes the current user's rating
// DELETE /recipes/:recipe_id/ratings
func (h *RatingHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.ratingService.Delete(ctx, userID, recipeID); err != nil {
		respondError(c, "delete_rating", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Rating (user_id=%s, recipe_id=%d) removed successfully", userID, recipeID),
	})
}

// GetAverage returns the average rating and count
// GET /recipes/:recipe_id/ratings/average
func (h *RatingHandler) GetAverage(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	avg, err := h.ratingService.Average(ctx, recipeID)
	if err != nil {
		respondError(c, "average_rating", err)
		return
	}

	c.JSON(http.StatusOK, avg)
}
