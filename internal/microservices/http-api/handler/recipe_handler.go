package handler

import (
	"context"
	"net/http"

	"recipehub/internal/microservices/http-api/dto"
	"recipehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	svc service.RecipeService
}

func NewRecipeHandler(svc service.RecipeService) *RecipeHandler {
	return &RecipeHandler{svc: svc}
}

// RegisterRoutes mounts /recipes. Reads are public, writes need a token.
func (h *RecipeHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/:recipe_id", h.Get)
	rg.POST("", requireAuth, h.Create)
	rg.PUT("/:recipe_id", requireAuth, h.Update)
	rg.DELETE("/:recipe_id", requireAuth, h.Delete)
}

// Create a recipe authored by the caller
// POST /recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	recipe, err := h.svc.Create(ctx, userID, req)
	if err != nil {
		respondError(c, "create_recipe", err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

// List every recipe
// GET /recipes
func (h *RecipeHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	recipes, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, "list_recipes", err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// Get a recipe by id
// GET /recipes/:recipe_id
func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := recipeIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	recipe, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, "get_recipe", err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// Update a recipe owned by the caller
// PUT /recipes/:recipe_id
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := recipeIDParam(c)
	if !ok {
		return
	}

	var req dto.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	recipe, err := h.svc.Update(ctx, userID, id, req)
	if err != nil {
		respondError(c, "update_recipe", err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// Delete a recipe owned by the caller
// DELETE /recipes/:recipe_id
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := recipeIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Delete(ctx, userID, id); err != nil {
		respondError(c, "delete_recipe", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Recipe deleted successfully"})
}
