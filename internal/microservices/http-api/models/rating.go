package models

import "time"

const (
	MinRatingValue = 1
	MaxRatingValue = 3
)

type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;uniqueIndex:idx_ratings_user_recipe,priority:2;index"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_recipe,priority:1"`
	Value     int       `json:"value" gorm:"not null;check:chk_ratings_value,value >= 1 AND value <= 3"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User   *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Recipe *Recipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}

// ValidRatingValue reports whether v is inside the accepted [1,3] range
func ValidRatingValue(v int) bool {
	return v >= MinRatingValue && v <= MaxRatingValue
}
