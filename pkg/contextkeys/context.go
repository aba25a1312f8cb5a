package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - это ключ, по которому мы храним *gorm.DB в context
const DBContextKey = contextKey("db")

// RequestIDKey - ключ request_id для логирования
const RequestIDKey = contextKey("request_id")

// UserIDKey - ключ идентификатора аутентифицированного пользователя
const UserIDKey = contextKey("user_id")
