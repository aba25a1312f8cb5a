package services

import (
	"time"

	"fittrack_backend/internal/models"
	"fittrack_backend/internal/repositories"
	"fittrack_backend/internal/services/dto"
	"fittrack_backend/pkg/apperrors"
)

type ExerciseService interface {
	Create(userID string, req *dto.CreateExerciseRequest) (*models.Exercise, error)
	List(userID string) ([]models.Exercise, error)
	ListByDate(userID string, day time.Time) ([]models.Exercise, error)
	Delete(userID, exerciseID string) error
}

type ExerciseServiceImpl struct {
	exerciseRepo repositories.ExerciseRepository
}

func NewExerciseService(exerciseRepo repositories.ExerciseRepository) ExerciseService {
	return &ExerciseServiceImpl{exerciseRepo: exerciseRepo}
}

func (s *ExerciseServiceImpl) Create(userID string, req *dto.CreateExerciseRequest) (*models.Exercise, error) {
	exercise := &models.Exercise{
		UserID:           userID,
		ExerciseName:     req.ExerciseName,
		ExerciseSubTitle: req.ExerciseSubTitle,
		DateToDo:         req.DateToDo,
		SetToDo:          req.SetToDo,
		KcalToDo:         req.KcalToDo,
		TimeToDo:         req.TimeToDo,
	}

	if err := s.exerciseRepo.Create(exercise); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return exercise, nil
}

func (s *ExerciseServiceImpl) List(userID string) ([]models.Exercise, error) {
	exercises, err := s.exerciseRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return exercises, nil
}

func (s *ExerciseServiceImpl) ListByDate(userID string, day time.Time) ([]models.Exercise, error) {
	exercises, err := s.exerciseRepo.FindByUserAndDate(userID, day)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return exercises, nil
}

func (s *ExerciseServiceImpl) Delete(userID, exerciseID string) error {
	if err := s.exerciseRepo.Delete(userID, exerciseID); err != nil {
		if apperrors.Is(err, repositories.ErrExerciseNotFound) {
			return apperrors.ErrExerciseNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
