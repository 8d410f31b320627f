package handler

import (
	"context"
	"fmt"
	"net/http"

	"recipehub/internal/microservices/http-api/dto"
	"recipehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	svc service.FavoriteService
}

func NewFavoriteHandler(svc service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

// RegisterRoutes mounts /favorites; the group is expected to be authenticated already.
func (h *FavoriteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Add)
	rg.GET("", h.List)
	rg.GET("/:recipe_id", h.Get)
	rg.DELETE("/:recipe_id", h.Remove)
}

// Add a recipe to the caller's favorites
// POST /favorites
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	favorite, err := h.svc.Add(ctx, userID, req.RecipeID)
	if err != nil {
		respondError(c, "add_favorite", err)
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

// List the caller's favorites joined with recipe details
// GET /favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	favorites, err := h.svc.ListDetailed(ctx, userID)
	if err != nil {
		respondError(c, "list_favorites", err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// Get one favorite of the caller
// GET /favorites/:recipe_id
func (h *FavoriteHandler) Get(c *gin.Context) {
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

	favorite, err := h.svc.Get(ctx, userID, recipeID)
	if err != nil {
		respondError(c, "get_favorite", err)
		return
	}

	c.JSON(http.StatusOK, favorite)
}

// Remove a recipe from the caller's favorites
// DELETE /favorites/:recipe_id
func (h *FavoriteHandler) Remove(c *gin.Context) {
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

	if err := h.svc.Remove(ctx, userID, recipeID); err != nil {
		respondError(c, "remove_favorite", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Favorite (user_id=%s, recipe_id=%d) removed successfully", userID, recipeID),
	})
}
