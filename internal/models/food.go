package models

import (
	"gorm.io/datatypes"
)

// RecipeStep - шаг рецепта, сериализуется в JSONB колонку
type RecipeStep struct {
	StepNumber  int    `json:"step_number"`
	Instruction string `json:"instruction"`
}

// FoodSuggestion - рецепт, рекомендуемый под цель пользователя
type FoodSuggestion struct {
	BaseModel
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"not null" json:"description"`
	Image       string         `gorm:"not null" json:"image"`
	SupportFor  string         `gorm:"type:varchar(20);not null;index" json:"support_for"`
	Steps       datatypes.JSON `gorm:"type:jsonb" json:"steps,omitempty"`
}
