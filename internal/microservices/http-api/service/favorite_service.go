package service

import (
	"context"
	"errors"
	"log/slog"

	"recipehub/internal/microservices/http-api/models"
	"recipehub/internal/microservices/http-api/repository"
)

type FavoriteService interface {
	Add(ctx context.Context, userID string, recipeID int64) (*models.Favorite, error)
	Get(ctx context.Context, userID string, recipeID int64) (*models.Favorite, error)
	Remove(ctx context.Context, userID string, recipeID int64) error
	ListDetailed(ctx context.Context, userID string) ([]models.FavoriteDetail, error)
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	recipeRepo   repository.RecipeRepository
	logger       *slog.Logger
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, recipeRepo repository.RecipeRepository, logger *slog.Logger) FavoriteService {
	if logger == nil {
		logger = slog.Default()
	}
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		recipeRepo:   recipeRepo,
		logger:       logger,
	}
}

// Add favorites a recipe for the user. Both the pre-check and the unique
// index report a repeat as ErrAlreadyFavorited.
func (s *favoriteService) Add(ctx context.Context, userID string, recipeID int64) (*models.Favorite, error) {
	exists, err := s.recipeRepo.Exists(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecipeNotFound
	}

	already, err := s.favoriteRepo.Exists(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, ErrAlreadyFavorited
	}

	favorite := &models.Favorite{
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyFavorited
		}
		return nil, err
	}

	s.logger.Info("favorite_added", "recipe_id", recipeID, "user_id", userID)
	return favorite, nil
}

func (s *favoriteService) Get(ctx context.Context, userID string, recipeID int64) (*models.Favorite, error) {
	favorite, err := s.favoriteRepo.Get(ctx, userID, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}
	return favorite, nil
}

func (s *favoriteService) Remove(ctx context.Context, userID string, recipeID int64) error {
	if err := s.favoriteRepo.Delete(ctx, userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}

	s.logger.Info("favorite_removed", "recipe_id", recipeID, "user_id", userID)
	return nil
}

func (s *favoriteService) ListDetailed(ctx context.Context, userID string) ([]models.FavoriteDetail, error) {
	return s.favoriteRepo.ListDetailed(ctx, userID)
}
