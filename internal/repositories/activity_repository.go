package repositories

import (
	"errors"
	"time"

	"fittrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrActivityNotFound = errors.New("activity not found")

type ActivityRepository interface {
	Create(activity *models.Activity) error
	FindByID(id string) (*models.Activity, error)
	FindByUser(userID string, from, to *time.Time) ([]models.Activity, error)
}

type ActivityRepositoryImpl struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

func (r *ActivityRepositoryImpl) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

func (r *ActivityRepositoryImpl) FindByID(id string) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return &activity, nil
}

// FindByUser возвращает историю активности, новые записи первыми
func (r *ActivityRepositoryImpl) FindByUser(userID string, from, to *time.Time) ([]models.Activity, error) {
	var activities []models.Activity
	query := r.db.Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("activity_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("activity_date <= ?", *to)
	}
	err := query.Order("activity_date DESC").Find(&activities).Error
	return activities, err
}
