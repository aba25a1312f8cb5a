package repositories

import (
	"errors"

	"fittrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFoodSuggestionNotFound = errors.New("food suggestion not found")

type FoodRepository interface {
	Create(food *models.FoodSuggestion) error
	FindAll() ([]models.FoodSuggestion, error)
	FindByID(id string) (*models.FoodSuggestion, error)
	FindBySupportFor(supportFor string) ([]models.FoodSuggestion, error)
	Update(food *models.FoodSuggestion) error
	Delete(id string) error
}

type FoodRepositoryImpl struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &FoodRepositoryImpl{db: db}
}

func (r *FoodRepositoryImpl) Create(food *models.FoodSuggestion) error {
	return r.db.Create(food).Error
}

func (r *FoodRepositoryImpl) FindAll() ([]models.FoodSuggestion, error) {
	var foods []models.FoodSuggestion
	err := r.db.Order("created_at DESC").Find(&foods).Error
	return foods, err
}

func (r *FoodRepositoryImpl) FindByID(id string) (*models.FoodSuggestion, error) {
	var food models.FoodSuggestion
	err := r.db.First(&food, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodSuggestionNotFound
		}
		return nil, err
	}
	return &food, nil
}

func (r *FoodRepositoryImpl) FindBySupportFor(supportFor string) ([]models.FoodSuggestion, error) {
	var foods []models.FoodSuggestion
	err := r.db.Where("support_for = ?", supportFor).Order("created_at DESC").Find(&foods).Error
	return foods, err
}

func (r *FoodRepositoryImpl) Update(food *models.FoodSuggestion) error {
	result := r.db.Model(&models.FoodSuggestion{}).Where("id = ?", food.ID).Updates(map[string]interface{}{
		"title":       food.Title,
		"description": food.Description,
		"image":       food.Image,
		"support_for": food.SupportFor,
		"steps":       food.Steps,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFoodSuggestionNotFound
	}
	return nil
}

func (r *FoodRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.FoodSuggestion{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFoodSuggestionNotFound
	}
	return nil
}
