package service

import (
	"context"
	"errors"
	"log/slog"

	"recipehub/internal/microservices/http-api/dto"
	"recipehub/internal/microservices/http-api/models"
	"recipehub/internal/microservices/http-api/repository"
)

type RecipeService interface {
	Create(ctx context.Context, authorID string, req dto.RecipeRequest) (*models.Recipe, error)
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
	List(ctx context.Context) ([]models.Recipe, error)
	Update(ctx context.Context, callerID string, id int64, req dto.RecipeRequest) (*models.Recipe, error)
	Delete(ctx context.Context, callerID string, id int64) error
}

type recipeService struct {
	recipeRepo  repository.RecipeRepository
	ratingCache repository.RatingCache
	logger      *slog.Logger
}

func NewRecipeService(recipeRepo repository.RecipeRepository, ratingCache repository.RatingCache, logger *slog.Logger) RecipeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &recipeService{
		recipeRepo:  recipeRepo,
		ratingCache: ratingCache,
		logger:      logger,
	}
}

// Create stores a recipe authored by authorID. The request carries no author.
func (s *recipeService) Create(ctx context.Context, authorID string, req dto.RecipeRequest) (*models.Recipe, error) {
	recipe := req.ToModel()
	recipe.AuthorID = authorID

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	s.logger.Info("recipe_created", "recipe_id", recipe.ID, "author_id", authorID)
	return recipe, nil
}

func (s *recipeService) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) List(ctx context.Context) ([]models.Recipe, error) {
	return s.recipeRepo.List(ctx)
}

// Update replaces the editable fields. Only the author may update and the author never changes.
func (s *recipeService) Update(ctx context.Context, callerID string, id int64, req dto.RecipeRequest) (*models.Recipe, error) {
	existing, err := s.ownedRecipe(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	updated := req.ToModel()
	updated.ID = existing.ID
	updated.AuthorID = existing.AuthorID
	updated.CreatedAt = existing.CreatedAt

	if err := s.recipeRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	s.logger.Info("recipe_updated", "recipe_id", id, "author_id", callerID)
	return updated, nil
}

// Delete removes the recipe and, with it, every rating and favorite pointing at it.
func (s *recipeService) Delete(ctx context.Context, callerID string, id int64) error {
	if _, err := s.ownedRecipe(ctx, callerID, id); err != nil {
		return err
	}

	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	if err := s.ratingCache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("rating_cache_invalidate_failed", "recipe_id", id, "error", err)
	}

	s.logger.Info("recipe_deleted", "recipe_id", id, "author_id", callerID)
	return nil
}

func (s *recipeService) ownedRecipe(ctx context.Context, callerID string, id int64) (*models.Recipe, error) {
	recipe, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != callerID {
		return nil, ErrNotRecipeAuthor
	}
	return recipe, nil
}
