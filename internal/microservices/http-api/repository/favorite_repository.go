package repository

import (
	"context"
	"fmt"

	"recipehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	Delete(ctx context.Context, userID string, recipeID int64) error
	Get(ctx context.Context, userID string, recipeID int64) (*models.Favorite, error)
	Exists(ctx context.Context, userID string, recipeID int64) (bool, error)
	ListDetailed(ctx context.Context, userID string) ([]models.FavoriteDetail, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		if err = translateError(err); err == ErrDuplicate {
			return err
		}
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID string, recipeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})

	if result.Error != nil {
		return fmt.Errorf("remove favorite: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *favoriteRepository) Get(ctx context.Context, userID string, recipeID int64) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&favorite).Error
	if err != nil {
		if err = translateError(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("get favorite: %w", err)
	}
	return &favorite, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID string, recipeID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return count > 0, nil
}

// ListDetailed joins every favorite of the user with its recipe and the recipe author in one query
func (r *favoriteRepository) ListDetailed(ctx context.Context, userID string) ([]models.FavoriteDetail, error) {
	list := make([]models.FavoriteDetail, 0)

	err := r.db.WithContext(ctx).
		Table("favorites").
		Select(`favorites.id, favorites.user_id, favorites.recipe_id, favorites.created_at,
			recipes.title, recipes.author_id, users.username AS author_username,
			recipes.category, recipes.image_source, recipes.prep_time, recipes.serves`).
		Joins("JOIN recipes ON recipes.id = favorites.recipe_id").
		Joins("JOIN users ON users.id = recipes.author_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC, favorites.id DESC").
		Scan(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	return list, nil
}
