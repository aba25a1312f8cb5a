package repositories

import (
	"errors"
	"time"

	"fittrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type ExerciseRepository interface {
	Create(exercise *models.Exercise) error
	FindByUser(userID string) ([]models.Exercise, error)
	FindByUserAndDate(userID string, day time.Time) ([]models.Exercise, error)
	Delete(userID, id string) error
}

type ExerciseRepositoryImpl struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &ExerciseRepositoryImpl{db: db}
}

func (r *ExerciseRepositoryImpl) Create(exercise *models.Exercise) error {
	return r.db.Create(exercise).Error
}

func (r *ExerciseRepositoryImpl) FindByUser(userID string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := r.db.Where("user_id = ?", userID).Order("date_to_do ASC").Find(&exercises).Error
	return exercises, err
}

// FindByUserAndDate возвращает план на календарный день
func (r *ExerciseRepositoryImpl) FindByUserAndDate(userID string, day time.Time) ([]models.Exercise, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var exercises []models.Exercise
	err := r.db.Where("user_id = ? AND date_to_do >= ? AND date_to_do < ?", userID, dayStart, dayEnd).
		Order("date_to_do ASC").Find(&exercises).Error
	return exercises, err
}

func (r *ExerciseRepositoryImpl) Delete(userID, id string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Exercise{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExerciseNotFound
	}
	return nil
}
