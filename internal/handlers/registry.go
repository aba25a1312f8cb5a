package handlers

import (
	"fittrack_backend/internal/services"
	"fittrack_backend/internal/validator"
)

// AppHandlers - все HTTP-обработчики приложения
type AppHandlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Activity *ActivityHandler
	Exercise *ExerciseHandler
	Food     *FoodHandler
	ChatLog  *ChatLogHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:     NewAuthHandler(base, sc.AuthService),
		User:     NewUserHandler(base, sc.UserService),
		Activity: NewActivityHandler(base, sc.ActivityService),
		Exercise: NewExerciseHandler(base, sc.ExerciseService),
		Food:     NewFoodHandler(base, sc.FoodService),
		ChatLog:  NewChatLogHandler(base, sc.ChatLogService),
	}
}
