package handler

import (
	"context"
	"net/http"

	"recipehub/internal/microservices/http-api/dto"
	"recipehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes mounts /users. Only /users/me needs a token.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.POST("", h.Register)
	rg.POST("/token", h.Login)
	rg.GET("/me", requireAuth, h.Me)
}

// Register handles user registration
// POST /users
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := h.authService.Register(ctx, req.Username, req.Password, req.Email)
	if err != nil {
		// same message for username and email so accounts cannot be probed
		respondError(c, "register", err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToUserResponse(user))
}

// Login exchanges credentials for a bearer token
// POST /users/token
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	issued, _, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		respondError(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: issued.Token,
		TokenType:   "bearer",
		ExpiresIn:   int64(issued.ExpiresIn().Seconds()),
	})
}

// Me returns the authenticated user's profile
// GET /users/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}
