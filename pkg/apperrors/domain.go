package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (используются для оборачивания ошибок из репозиториев)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (для частых, статичных ошибок)
// =========================================================================

// --- Auth & User Status ---

// ErrInvalidCredentials - неверный email или пароль.
// Один ответ и для несуществующего email, и для неверного пароля.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized, // 401
)

// ErrUserNotVerified - email не подтвержден.
// Отдельный код, чтобы клиент мог предложить повторную отправку письма.
var ErrUserNotVerified = New(
	CodeNeedsVerification,
	"auth",
	"Please verify your email address",
	http.StatusUnauthorized, // 401
)

// ErrInvalidToken - неверный или просроченный токен (verify, reset)
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusBadRequest, // 400
)

// ErrWeakPassword - пароль слишком слабый
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest, // 400
)

// ErrEmailAlreadyExists - email уже используется
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict, // 409
)

// ErrUserNameAlreadyExists - имя пользователя уже занято
var ErrUserNameAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Username already in use",
	http.StatusConflict, // 409
)

// ErrAlreadyVerified - аккаунт уже подтвержден, повторная отправка не нужна
var ErrAlreadyVerified = New(
	CodeInvalidOperation,
	"auth",
	"Account is already verified",
	http.StatusBadRequest, // 400
)

// ErrUserNotFound - пользователь не найден
var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound, // 404
)

// --- Activity & Plans ---

// ErrActivityNotFound - запись активности не найдена
var ErrActivityNotFound = New(
	CodeNotFound,
	"activity",
	"Activity not found",
	http.StatusNotFound, // 404
)

// ErrExerciseNotFound - упражнение не найдено
var ErrExerciseNotFound = New(
	CodeNotFound,
	"exercise",
	"Exercise not found",
	http.StatusNotFound, // 404
)

// ErrFoodSuggestionNotFound - рецепт не найден
var ErrFoodSuggestionNotFound = New(
	CodeNotFound,
	"food",
	"Food suggestion not found",
	http.StatusNotFound, // 404
)

// ErrChatLogNotFound - лог чата не найден
var ErrChatLogNotFound = New(
	CodeNotFound,
	"chatlog",
	"Chat log not found",
	http.StatusNotFound, // 404
)
