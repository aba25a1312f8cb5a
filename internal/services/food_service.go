package services

import (
	"encoding/json"

	"fittrack_backend/internal/models"
	"fittrack_backend/internal/repositories"
	"fittrack_backend/internal/services/dto"
	"fittrack_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type FoodService interface {
	Create(req *dto.CreateFoodSuggestionRequest) (*models.FoodSuggestion, error)
	List(supportFor string) ([]models.FoodSuggestion, error)
	Get(id string) (*models.FoodSuggestion, error)
	Update(id string, req *dto.UpdateFoodSuggestionRequest) (*models.FoodSuggestion, error)
	Delete(id string) error
}

type FoodServiceImpl struct {
	foodRepo repositories.FoodRepository
}

func NewFoodService(foodRepo repositories.FoodRepository) FoodService {
	return &FoodServiceImpl{foodRepo: foodRepo}
}

func (s *FoodServiceImpl) Create(req *dto.CreateFoodSuggestionRequest) (*models.FoodSuggestion, error) {
	food := &models.FoodSuggestion{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		SupportFor:  req.SupportFor,
	}

	if len(req.Steps) > 0 {
		raw, err := json.Marshal(req.Steps)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		food.Steps = datatypes.JSON(raw)
	}

	if err := s.foodRepo.Create(food); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return food, nil
}

// List возвращает все рецепты или отфильтрованные по цели
func (s *FoodServiceImpl) List(supportFor string) ([]models.FoodSuggestion, error) {
	var (
		foods []models.FoodSuggestion
		err   error
	)
	if supportFor != "" {
		foods, err = s.foodRepo.FindBySupportFor(supportFor)
	} else {
		foods, err = s.foodRepo.FindAll()
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return foods, nil
}

func (s *FoodServiceImpl) Get(id string) (*models.FoodSuggestion, error) {
	food, err := s.foodRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrFoodSuggestionNotFound) {
			return nil, apperrors.ErrFoodSuggestionNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return food, nil
}

func (s *FoodServiceImpl) Update(id string, req *dto.UpdateFoodSuggestionRequest) (*models.FoodSuggestion, error) {
	food, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		food.Title = *req.Title
	}
	if req.Description != nil {
		food.Description = *req.Description
	}
	if req.Image != nil {
		food.Image = *req.Image
	}
	if req.SupportFor != nil {
		food.SupportFor = *req.SupportFor
	}
	if req.Steps != nil {
		raw, err := json.Marshal(req.Steps)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		food.Steps = datatypes.JSON(raw)
	}

	if err := s.foodRepo.Update(food); err != nil {
		if apperrors.Is(err, repositories.ErrFoodSuggestionNotFound) {
			return nil, apperrors.ErrFoodSuggestionNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return food, nil
}

func (s *FoodServiceImpl) Delete(id string) error {
	if err := s.foodRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrFoodSuggestionNotFound) {
			return apperrors.ErrFoodSuggestionNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
