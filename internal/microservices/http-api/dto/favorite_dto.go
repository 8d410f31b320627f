package dto

// AddFavoriteRequest: payload to favorite a recipe
type AddFavoriteRequest struct {
	RecipeID int64 `json:"recipe_id" binding:"required,gt=0"`
}

// MessageResponse: confirmation returned by delete endpoints
type MessageResponse struct {
	Message string `json:"message"`
}
