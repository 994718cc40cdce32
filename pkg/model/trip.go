package model

import "time"

// Trip difficulty levels, stored lowercase.
const (
	DifficultyEasy     = "easy"
	DifficultyModerate = "moderate"
	DifficultyHard     = "hard"
)

type Trip struct {
	ID           string     `json:"_id,omitempty" bson:"_id,omitempty"`
	Title        string     `json:"title" bson:"title"`
	Destination  string     `json:"destination" bson:"destination"`
	Category     string     `json:"category" bson:"category"`
	DurationDays int64      `json:"durationDays" bson:"durationDays"`
	Price        float64    `json:"price" bson:"price"`
	Difficulty   string     `json:"difficulty" bson:"difficulty"`
	Description  string     `json:"description" bson:"description"`
	CreatedAt    *time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
