package repositories

import (
	"time"

	"fittrack_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RevokedTokenRepository interface {
	Revoke(token string, expiresAt time.Time) error
	IsRevoked(token string) (bool, error)
	PurgeExpired() (int64, error)
}

type RevokedTokenRepositoryImpl struct {
	db *gorm.DB
}

func NewRevokedTokenRepository(db *gorm.DB) RevokedTokenRepository {
	return &RevokedTokenRepositoryImpl{db: db}
}

// Revoke добавляет токен в черный список. Повторный вызов - no-op.
func (r *RevokedTokenRepositoryImpl) Revoke(token string, expiresAt time.Time) error {
	entry := models.RevokedToken{
		Token:     token,
		ExpiresAt: expiresAt,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoNothing: true,
	}).Create(&entry).Error
}

func (r *RevokedTokenRepositoryImpl) IsRevoked(token string) (bool, error) {
	var count int64
	err := r.db.Model(&models.RevokedToken{}).Where("token = ?", token).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// PurgeExpired удаляет записи, чей срок хранения истек
func (r *RevokedTokenRepositoryImpl) PurgeExpired() (int64, error) {
	result := r.db.Where("expires_at < ?", time.Now()).Delete(&models.RevokedToken{})
	return result.RowsAffected, result.Error
}
