package dto

// RatingRequest for creating or updating a rating. Value is a pointer so a
// missing field is a bad request while 0 reaches the range check.
type RatingRequest struct {
	Value *int `json:"value" binding:"required"`
}

// AverageRatingResponse for GET /recipes/:recipe_id/ratings/average
type AverageRatingResponse struct {
	RecipeID      int64   `json:"recipe_id"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}
