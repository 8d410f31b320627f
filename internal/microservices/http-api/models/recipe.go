package models

import "time"

// Recipe is owned by the user that created it; AuthorID never changes after insert.
type Recipe struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string    `json:"title" gorm:"not null;index"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	Ingredients  []string  `json:"ingredients" gorm:"type:text;serializer:json;not null"`
	Instructions []string  `json:"instructions" gorm:"type:text;serializer:json;not null"`
	AuthorID     string    `json:"author_id" gorm:"type:uuid;not null;index"`
	Category     *string   `json:"category,omitempty"`
	ImageSource  *string   `json:"image_source,omitempty"`
	PrepTime     *string   `json:"time,omitempty"`
	Serves       *string   `json:"serves,omitempty"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Author *User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}

func (Recipe) TableName() string {
	return "recipes"
}
