package repositories

import (
	"errors"
	"time"

	"fittrack_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrTokenNotFound     = errors.New("token not found or expired")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByUserName(userName string) (*models.User, error)
	Create(user *models.User) error

	// Credential lifecycle
	SetVerificationToken(userID, token string, expires time.Time) error
	ConsumeVerificationToken(token string) error
	SetTempPassword(userID, hash string, expires time.Time) error
	ConsumeTempPassword(userID, hash string) error
	UpdatePassword(userID, hash string) error

	// Profile
	UpdateProfile(userID string, fields map[string]interface{}) error
	CompleteOnboarding(userID string) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUserName(userName string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "user_name = ?", userName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create вставляет пользователя; нарушение уникального индекса
// (email или user_name) возвращается как ErrUserAlreadyExists
func (r *UserRepositoryImpl) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUserAlreadyExists
	}
	return err
}

// Credential lifecycle

func (r *UserRepositoryImpl) SetVerificationToken(userID, token string, expires time.Time) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"verification_token":         token,
		"verification_token_expires": expires,
		"updated_at":                 time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ConsumeVerificationToken подтверждает email одним условным UPDATE.
// Повторное или просроченное использование токена не затронет ни одной строки.
func (r *UserRepositoryImpl) ConsumeVerificationToken(token string) error {
	result := r.db.Model(&models.User{}).
		Where("verification_token = ? AND verification_token != '' AND verification_token_expires > ?", token, time.Now()).
		Updates(map[string]interface{}{
			"is_verified":                true,
			"verification_token":         "",
			"verification_token_expires": nil,
			"updated_at":                 time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetTempPassword(userID, hash string, expires time.Time) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"temp_password_hash":    hash,
		"temp_password_expires": expires,
		"needs_password_reset":  true,
		"updated_at":            time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ConsumeTempPassword гасит временный пароль одним условным UPDATE.
// needs_password_reset остается true до явной смены пароля.
func (r *UserRepositoryImpl) ConsumeTempPassword(userID, hash string) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND temp_password_hash = ? AND temp_password_expires > ?", userID, hash, time.Now()).
		Updates(map[string]interface{}{
			"temp_password_hash":    "",
			"temp_password_expires": nil,
			"updated_at":            time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenNotFound
	}
	return nil
}

// UpdatePassword ставит новый постоянный хеш и сбрасывает весь temp-состояние
func (r *UserRepositoryImpl) UpdatePassword(userID, hash string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"password_hash":         hash,
		"temp_password_hash":    "",
		"temp_password_expires": nil,
		"needs_password_reset":  false,
		"updated_at":            time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Profile

func (r *UserRepositoryImpl) UpdateProfile(userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = time.Now()
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) CompleteOnboarding(userID string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"has_completed_onboarding": true,
		"updated_at":               time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
