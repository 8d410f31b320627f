package repository

import (
	"context"
	"fmt"

	"recipehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// RatingSummary is the aggregate of every rating stored for one recipe
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	Update(ctx context.Context, rating *models.Rating) error
	Delete(ctx context.Context, userID string, recipeID int64) error
	GetByUserAndRecipe(ctx context.Context, userID string, recipeID int64) (*models.Rating, error)
	Summarize(ctx context.Context, recipeID int64) (RatingSummary, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating. The (user_id, recipe_id) unique index turns a second
// insert for the same pair into ErrDuplicate.
func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		if err = translateError(err); err == ErrDuplicate {
			return err
		}
		return fmt.Errorf("create rating: %w", err)
	}
	return nil
}

// Update overwrites the value of an existing rating in place
func (r *ratingRepository) Update(ctx context.Context, rating *models.Rating) error {
	result := r.db.WithContext(ctx).
		Model(rating).
		Update("value", rating.Value)
	if result.Error != nil {
		return fmt.Errorf("update rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete a rating by user and recipe
func (r *ratingRepository) Delete(ctx context.Context, userID string, recipeID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Rating{})
	if result.Error != nil {
		return fmt.Errorf("delete rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByUserAndRecipe retrieves a user's rating for a specific recipe
func (r *ratingRepository) GetByUserAndRecipe(ctx context.Context, userID string, recipeID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&rating).Error
	if err != nil {
		if err = translateError(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return &rating, nil
}

// Summarize calculates the unrounded average and the count of ratings for a recipe
func (r *ratingRepository) Summarize(ctx context.Context, recipeID int64) (RatingSummary, error) {
	var row struct {
		Average float64
		Total   int64
	}

	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(value), 0) AS average, COUNT(*) AS total").
		Where("recipe_id = ?", recipeID).
		Scan(&row).Error
	if err != nil {
		return RatingSummary{}, fmt.Errorf("summarize ratings: %w", err)
	}

	return RatingSummary{Average: row.Average, Count: row.Total}, nil
}
