package dto

import "fittrack_backend/internal/models"

// CreateFoodSuggestionRequest - новый рецепт
type CreateFoodSuggestionRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description" binding:"required"`
	Image       string              `json:"image" binding:"required"`
	SupportFor  string              `json:"support_for" binding:"required,is-goal"`
	Steps       []models.RecipeStep `json:"steps,omitempty"`
}

// UpdateFoodSuggestionRequest - частичное обновление рецепта
type UpdateFoodSuggestionRequest struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	Image       *string             `json:"image,omitempty"`
	SupportFor  *string             `json:"support_for,omitempty" binding:"omitempty,is-goal"`
	Steps       []models.RecipeStep `json:"steps,omitempty"`
}
