package handler

import (
	"context"

	"recipehub/internal/microservices/http-api/dto"
	"recipehub/internal/microservices/http-api/middleware"
	"recipehub/internal/microservices/http-api/models"
	"recipehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	args := m.Called(username, password, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (service.IssuedToken, *models.User, error) {
	args := m.Called(username, password)
	var user *models.User
	if u := args.Get(1); u != nil {
		user = u.(*models.User)
	}
	return args.Get(0).(service.IssuedToken), user, args.Error(2)
}

// MockRecipeService mocks the RecipeService interface
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Create(ctx context.Context, authorID string, req dto.RecipeRequest) (*models.Recipe, error) {
	args := m.Called(authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Update(ctx context.Context, callerID string, id int64, req dto.RecipeRequest) (*models.Recipe, error) {
	args := m.Called(callerID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, callerID string, id int64) error {
	args := m.Called(callerID, id)
	return args.Error(0)
}

// MockRatingService mocks the RatingService interface
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) Create(ctx context.Context, userID string, recipeID int64, value int) (*models.Rating, error) {
	args := m.Called(userID, recipeID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingService) Get(ctx context.Context, userID string, recipeID int64) (*models.Rating, error) {
	args := m.Called(userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingService) Update(ctx context.Context, userID string, recipeID int64, value int) (*models.Rating, error) {
	args := m.Called(userID, recipeID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingService) Delete(ctx context.Context, userID string, recipeID int64) error {
	args := m.Called(userID, recipeID)
	return args.Error(0)
}

func (m *MockRatingService) Average(ctx context.Context, recipeID int64) (*dto.AverageRatingResponse, error) {
	args := m.Called(recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AverageRatingResponse), args.Error(1)
}

// MockFavoriteService mocks the FavoriteService interface
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, userID string, recipeID int64) (*models.Favorite, error) {
	args := m.Called(userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *MockFavoriteService) Get(ctx context.Context, userID string, recipeID int64) (*models.Favorite, error) {
	args := m.Called(userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *MockFavoriteService) Remove(ctx context.Context, userID string, recipeID int64) error {
	args := m.Called(userID, recipeID)
	return args.Error(0)
}

func (m *MockFavoriteService) ListDetailed(ctx context.Context, userID string) ([]models.FavoriteDetail, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FavoriteDetail), args.Error(1)
}

// stubResolver accepts a fixed set of tokens
type stubResolver map[string]*models.User

func (s stubResolver) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, service.ErrUnauthenticated
	}
	if user, ok := s[token]; ok {
		return user, nil
	}
	return nil, service.ErrUnauthenticated
}

var (
	alice = &models.User{ID: "alice-id", Username: "alice", Email: "alice@example.com"}
	bob   = &models.User{ID: "bob-id", Username: "bob", Email: "bob@example.com"}
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func testAuth() gin.HandlerFunc {
	return middleware.AuthMiddleware(stubResolver{"alice-token": alice, "bob-token": bob})
}
