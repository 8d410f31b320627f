package repository

import (
	"context"
	"fmt"

	"recipehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
	List(ctx context.Context) ([]models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return fmt.Errorf("create recipe: %w", err)
	}
	// GORM populates recipe.ID and recipe.CreatedAt
	return nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if err = translateError(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return &recipe, nil
}

func (r *recipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	list := make([]models.Recipe, 0)
	if err := r.db.WithContext(ctx).Order("created_at desc, id desc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return list, nil
}

// Update saves the mutable recipe fields. author_id and created_at are never written.
func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	result := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", recipe.ID).
		Select("title", "description", "ingredients", "instructions", "category", "image_source", "prep_time", "serves").
		Updates(recipe)
	if result.Error != nil {
		return fmt.Errorf("update recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the recipe together with its ratings and favorites in one transaction.
func (r *recipeRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin delete recipe: %w", tx.Error)
	}
	if err := tx.Where("recipe_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete recipe ratings: %w", err)
	}
	if err := tx.Where("recipe_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete recipe favorites: %w", err)
	}
	result := tx.Delete(&models.Recipe{}, id)
	if result.Error != nil {
		tx.Rollback()
		return fmt.Errorf("delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrNotFound
	}
	return tx.Commit().Error
}

func (r *recipeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check recipe: %w", err)
	}
	return count > 0, nil
}
