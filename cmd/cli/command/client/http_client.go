package client

// http_client.go = HTTP client for the recipehub API, used by the CLI commands.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"recipehub/internal/microservices/http-api/dto"
	"recipehub/internal/microservices/http-api/models"
)

// defines the HTTP client structure and methods
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// APIError is any answer outside the expected status. Message is the API's "error" field.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// constructor for HTTP client
func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// set token for HTTP client
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// do sends body as JSON and decodes the response into out when the status is want.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, want int, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close() // Ensure the response body is closed

	if response.StatusCode != want {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(response.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(response.StatusCode)
		}
		return &APIError{StatusCode: response.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// register method for HTTP client
func (c *HTTPClient) Register(ctx context.Context, request *dto.RegisterRequest) (*dto.UserResponse, error) {
	var result dto.UserResponse
	if err := c.do(ctx, http.MethodPost, "/users", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// login method for HTTP client
func (c *HTTPClient) Login(ctx context.Context, request *dto.LoginRequest) (*dto.TokenResponse, error) {
	var result dto.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/users/token", request, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*dto.UserResponse, error) {
	var result dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Recipes

func (c *HTTPClient) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var result []models.Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) GetRecipe(ctx context.Context, recipeID int64) (*models.Recipe, error) {
	var result models.Recipe
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recipes/%d", recipeID), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateRecipe(ctx context.Context, request *dto.RecipeRequest) (*models.Recipe, error) {
	var result models.Recipe
	if err := c.do(ctx, http.MethodPost, "/recipes", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateRecipe(ctx context.Context, recipeID int64, request *dto.RecipeRequest) (*models.Recipe, error) {
	var result models.Recipe
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/recipes/%d", recipeID), request, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteRecipe(ctx context.Context, recipeID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/recipes/%d", recipeID), nil, http.StatusOK, nil)
}

// Ratings

func (c *HTTPClient) RateRecipe(ctx context.Context, recipeID int64, value int) (*models.Rating, error) {
	var result models.Rating
	path := fmt.Sprintf("/recipes/%d/ratings", recipeID)
	if err := c.do(ctx, http.MethodPost, path, dto.RatingRequest{Value: &value}, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateRating(ctx context.Context, recipeID int64, value int) (*models.Rating, error) {
	var result models.Rating
	path := fmt.Sprintf("/recipes/%d/ratings", recipeID)
	if err := c.do(ctx, http.MethodPut, path, dto.RatingRequest{Value: &value}, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetUserRating(ctx context.Context, recipeID int64) (*models.Rating, error) {
	var result models.Rating
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recipes/%d/ratings/me", recipeID), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteRating(ctx context.Context, recipeID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/recipes/%d/ratings", recipeID), nil, http.StatusOK, nil)
}

func (c *HTTPClient) GetAverageRating(ctx context.Context, recipeID int64) (*dto.AverageRatingResponse, error) {
	var result dto.AverageRatingResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recipes/%d/ratings/average", recipeID), nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Favorites

func (c *HTTPClient) AddFavorite(ctx context.Context, recipeID int64) (*models.Favorite, error) {
	var result models.Favorite
	if err := c.do(ctx, http.MethodPost, "/favorites", dto.AddFavoriteRequest{RecipeID: recipeID}, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ListFavorites(ctx context.Context) ([]models.FavoriteDetail, error) {
	var result []models.FavoriteDetail
	if err := c.do(ctx, http.MethodGet, "/favorites", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, recipeID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%d", recipeID), nil, http.StatusOK, nil)
}
