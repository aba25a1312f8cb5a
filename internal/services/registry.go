package services

import (
	"fittrack_backend/internal/pkg/email"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService     AuthService
	UserService     UserService
	ActivityService ActivityService
	ExerciseService ExerciseService
	FoodService     FoodService
	ChatLogService  ChatLogService
	EmailSender     email.Sender
}
