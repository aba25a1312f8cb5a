package services

import (
	"encoding/json"

	"fittrack_backend/internal/models"
	"fittrack_backend/internal/repositories"
	"fittrack_backend/internal/services/dto"
	"fittrack_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// Эмпирические коэффициенты оригинального приложения:
// шаги и калории оцениваются по дистанции, когда клиент их не прислал
const (
	stepsPerKm    = 1250
	caloriesPerKm = 60
)

type ActivityService interface {
	Submit(userID string, req *dto.SubmitActivityRequest) (*models.Activity, error)
	History(userID string, req *dto.ActivityHistoryRequest) ([]models.Activity, error)
}

type ActivityServiceImpl struct {
	activityRepo repositories.ActivityRepository
}

func NewActivityService(activityRepo repositories.ActivityRepository) ActivityService {
	return &ActivityServiceImpl{activityRepo: activityRepo}
}

// Submit сохраняет тренировку, досчитывая шаги и калории при необходимости
func (s *ActivityServiceImpl) Submit(userID string, req *dto.SubmitActivityRequest) (*models.Activity, error) {
	steps := int(req.DistanceInKm * stepsPerKm)
	if req.Steps != nil {
		steps = *req.Steps
	}
	calories := req.DistanceInKm * caloriesPerKm
	if req.Calories != nil {
		calories = *req.Calories
	}

	activity := &models.Activity{
		UserID:        userID,
		ActivityType:  req.ActivityType,
		RunAddress:    req.RunAddress,
		TimeInSeconds: req.TimeInSeconds,
		DistanceInKm:  req.DistanceInKm,
		ActivityDate:  req.ActivityDate,
		Steps:         steps,
		Calories:      calories,
	}

	if len(req.RoutePoints) > 0 {
		raw, err := json.Marshal(req.RoutePoints)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		activity.RoutePoints = datatypes.JSON(raw)
	}

	if err := s.activityRepo.Create(activity); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return activity, nil
}

func (s *ActivityServiceImpl) History(userID string, req *dto.ActivityHistoryRequest) ([]models.Activity, error) {
	activities, err := s.activityRepo.FindByUser(userID, req.From, req.To)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return activities, nil
}
