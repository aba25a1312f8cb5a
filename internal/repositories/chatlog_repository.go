package repositories

import (
	"errors"
	"time"

	"fittrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrChatLogNotFound = errors.New("chat log not found")

type ChatLogRepository interface {
	Create(log *models.ChatLog) error
	UpdateEntries(log *models.ChatLog) error
	FindByUserAndDate(userID string, day time.Time) (*models.ChatLog, error)
	FindLatestByUser(userID string) (*models.ChatLog, error)
}

type ChatLogRepositoryImpl struct {
	db *gorm.DB
}

func NewChatLogRepository(db *gorm.DB) ChatLogRepository {
	return &ChatLogRepositoryImpl{db: db}
}

func (r *ChatLogRepositoryImpl) Create(log *models.ChatLog) error {
	return r.db.Create(log).Error
}

func (r *ChatLogRepositoryImpl) UpdateEntries(log *models.ChatLog) error {
	result := r.db.Model(&models.ChatLog{}).Where("id = ?", log.ID).Updates(map[string]interface{}{
		"entries":    log.Entries,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrChatLogNotFound
	}
	return nil
}

// FindByUserAndDate возвращает лог за календарный день
func (r *ChatLogRepositoryImpl) FindByUserAndDate(userID string, day time.Time) (*models.ChatLog, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var log models.ChatLog
	err := r.db.Where("user_id = ? AND created_date >= ? AND created_date < ?", userID, dayStart, dayEnd).
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatLogNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *ChatLogRepositoryImpl) FindLatestByUser(userID string) (*models.ChatLog, error) {
	var log models.ChatLog
	err := r.db.Where("user_id = ?", userID).Order("created_date DESC").First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatLogNotFound
		}
		return nil, err
	}
	return &log, nil
}
