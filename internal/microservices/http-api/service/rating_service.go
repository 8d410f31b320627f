package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"recipehub/internal/microservices/http-api/dto"
	"recipehub/internal/microservices/http-api/models"
	"recipehub/internal/microservices/http-api/repository"
)

type RatingService interface {
	Create(ctx context.Context, userID string, recipeID int64, value int) (*models.Rating, error)
	Get(ctx context.Context, userID string, recipeID int64) (*models.Rating, error)
	Update(ctx context.Context, userID string, recipeID int64, value int) (*models.Rating, error)
	Delete(ctx context.Context, userID string, recipeID int64) error
	Average(ctx context.Context, recipeID int64) (*dto.AverageRatingResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	recipeRepo repository.RecipeRepository
	cache      repository.RatingCache
	logger     *slog.Logger
}

func NewRatingService(
	ratingRepo repository.RatingRepository,
	recipeRepo repository.RecipeRepository,
	cache repository.RatingCache,
	logger *slog.Logger,
) RatingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ratingService{
		ratingRepo: ratingRepo,
		recipeRepo: recipeRepo,
		cache:      cache,
		logger:     logger,
	}
}

// Create adds the caller's rating for a recipe. A user rates a recipe once;
// changing the value goes through Update.
func (s *ratingService) Create(ctx context.Context, userID string, recipeID int64, value int) (*models.Rating, error) {
	if err := s.requireRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	if !models.ValidRatingValue(value) {
		return nil, ErrInvalidRatingValue
	}

	if _, err := s.ratingRepo.GetByUserAndRecipe(ctx, userID, recipeID); err == nil {
		return nil, ErrAlreadyRated
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	rating := &models.Rating{
		UserID:   userID,
		RecipeID: recipeID,
		Value:    value,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyRated
		}
		return nil, err
	}

	s.invalidate(ctx, recipeID)
	s.logger.Info("rating_created", "recipe_id", recipeID, "user_id", userID, "value", value)
	return rating, nil
}

func (s *ratingService) Get(ctx context.Context, userID string, recipeID int64) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetByUserAndRecipe(ctx, userID, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return rating, nil
}

// Update overwrites the value of the caller's existing rating.
func (s *ratingService) Update(ctx context.Context, userID string, recipeID int64, value int) (*models.Rating, error) {
	rating, err := s.Get(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if !models.ValidRatingValue(value) {
		return nil, ErrInvalidRatingValue
	}

	rating.Value = value
	if err := s.ratingRepo.Update(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}

	s.invalidate(ctx, recipeID)
	s.logger.Info("rating_updated", "recipe_id", recipeID, "user_id", userID, "value", value)
	return rating, nil
}

func (s *ratingService) Delete(ctx context.Context, userID string, recipeID int64) error {
	if err := s.ratingRepo.Delete(ctx, userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRatingNotFound
		}
		return err
	}

	s.invalidate(ctx, recipeID)
	s.logger.Info("rating_deleted", "recipe_id", recipeID, "user_id", userID)
	return nil
}

// Average returns the mean rating rounded to one decimal, 0.0 when nobody rated yet.
func (s *ratingService) Average(ctx context.Context, recipeID int64) (*dto.AverageRatingResponse, error) {
	if err := s.requireRecipe(ctx, recipeID); err != nil {
		return nil, err
	}

	summary, generation, err := s.cache.Get(ctx, recipeID)
	cacheable := err == nil
	if err != nil {
		s.logger.Warn("rating_cache_read_failed", "recipe_id", recipeID, "error", err)
		summary = nil
	}

	if summary == nil {
		fresh, err := s.ratingRepo.Summarize(ctx, recipeID)
		if err != nil {
			return nil, err
		}
		summary = &fresh
		// without a generation there is no way to tell a concurrent write happened
		if cacheable {
			if err := s.cache.Set(ctx, recipeID, generation, fresh); err != nil {
				s.logger.Warn("rating_cache_write_failed", "recipe_id", recipeID, "error", err)
			}
		}
	}

	return &dto.AverageRatingResponse{
		RecipeID:      recipeID,
		AverageRating: roundToTenth(summary.Average),
		TotalRatings:  summary.Count,
	}, nil
}

func (s *ratingService) requireRecipe(ctx context.Context, recipeID int64) error {
	exists, err := s.recipeRepo.Exists(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRecipeNotFound
	}
	return nil
}

// invalidate drops the cached summary. Cache failures never fail the request.
func (s *ratingService) invalidate(ctx context.Context, recipeID int64) {
	if err := s.cache.Invalidate(ctx, recipeID); err != nil {
		s.logger.Warn("rating_cache_invalidate_failed", "recipe_id", recipeID, "error", err)
	}
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
