package models

import "time"

// RevokedToken - запись черного списка токенов.
// Хранится дольше, чем живет сам токен, и вычищается фоновым воркером.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	CreatedAt time.Time `gorm:"default:now()" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"-"`
}
