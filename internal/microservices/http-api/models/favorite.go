package models

import "time"

type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_recipe,priority:1" json:"user_id"`
	RecipeID  int64     `gorm:"not null;uniqueIndex:idx_favorites_user_recipe,priority:2;index" json:"recipe_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// FavoriteDetail is the read-side join of a favorite with its recipe's display fields
type FavoriteDetail struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	RecipeID       int64     `json:"recipe_id"`
	Title          string    `json:"title"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Category       *string   `json:"category,omitempty"`
	ImageSource    *string   `json:"image_source,omitempty"`
	PrepTime       *string   `json:"time,omitempty"`
	Serves         *string   `json:"serves,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
