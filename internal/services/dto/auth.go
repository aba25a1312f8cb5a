package dto

import "fittrack_backend/internal/models"

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	UserName  string `json:"user_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest - запрос подтверждения email
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// ResendVerificationRequest - повторная отправка письма подтверждения
type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PasswordResetRequest - запрос временного пароля
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest - установка нового пароля после входа по временному
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// ChangePasswordRequest - смена пароля со знанием текущего
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// UserDTO - данные пользователя в ответах auth
type UserDTO struct {
	ID                     string         `json:"id"`
	FirstName              string         `json:"first_name"`
	LastName               string         `json:"last_name"`
	UserName               string         `json:"user_name"`
	Email                  string         `json:"email"`
	Profile                models.Profile `json:"profile"`
	IsVerified             bool           `json:"is_verified"`
	HasCompletedOnboarding bool           `json:"has_completed_onboarding"`
	NeedsPasswordReset     bool           `json:"needs_password_reset"`
}

// RegisterResponse - ответ на регистрацию.
// EmailSent управляет текстом сообщения: регистрация успешна и когда
// письмо подтверждения отправить не удалось.
type RegisterResponse struct {
	Token     string  `json:"token"`
	User      UserDTO `json:"user"`
	EmailSent bool    `json:"-"`
}

// LoginResponse - ответ на вход
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
