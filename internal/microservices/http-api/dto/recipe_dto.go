package dto

import "recipehub/internal/microservices/http-api/models"

// RecipeRequest used for POST /recipes and PUT /recipes/:recipe_id.
// There is no author field: the author is always the authenticated caller.
type RecipeRequest struct {
	Title        string   `json:"title" binding:"required,max=255"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Category     *string  `json:"category,omitempty"`
	ImageSource  *string  `json:"image_source,omitempty"`
	Time         *string  `json:"time,omitempty"`
	Serves       *string  `json:"serves,omitempty"`
}

// Converters
func (d RecipeRequest) ToModel() *models.Recipe {
	return &models.Recipe{
		Title:        d.Title,
		Description:  d.Description,
		Ingredients:  nonNil(d.Ingredients),
		Instructions: nonNil(d.Instructions),
		Category:     d.Category,
		ImageSource:  d.ImageSource,
		PrepTime:     d.Time,
		Serves:       d.Serves,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
