package models

import (
	"time"

	"gorm.io/datatypes"
)

// ChatEntry - пара вопрос/ответ фитнес-бота
type ChatEntry struct {
	Question  string `json:"question"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"` // ISO 8601
}

// ChatLog - дневной лог переписки пользователя с ботом.
// Записи дозаписываются в JSONB массив Entries.
type ChatLog struct {
	BaseModel
	UserID      string         `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedDate time.Time      `gorm:"not null;index" json:"created_date"`
	Entries     datatypes.JSON `gorm:"type:jsonb" json:"log_data"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
