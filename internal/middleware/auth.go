package middleware

import (
	"net/http"
	"strings"

	"fittrack_backend/internal/auth"
	"fittrack_backend/internal/logger"
	"fittrack_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

const (
	// Ключ сырого токена в контексте Gin: нужен logout и смене пароля для отзыва
	TokenContextKey = "authToken"
	userIDKey       = "userID"
	userEmailKey    = "userEmail"
)

// AuthMiddleware - проверка JWT с учетом черного списка.
// Порядок: извлечение Bearer, проверка черного списка, проверка подписи.
func AuthMiddleware(tokens *auth.TokenManager, revokedRepo repositories.RevokedTokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ExtractBearerToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		revoked, err := revokedRepo.IsRevoked(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Сохраняем claims в контекст Gin и request context (для логирования)
		c.Set(userIDKey, claims.UserID)
		c.Set(userEmailKey, claims.Email)
		c.Set(TokenContextKey, tokenStr)
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ExtractBearerToken достает токен из заголовка Authorization
func ExtractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(userIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

// GetUserEmail извлекает email пользователя из контекста
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get(userEmailKey)
	if !exists {
		return ""
	}

	e, ok := email.(string)
	if !ok {
		return ""
	}

	return e
}

// GetToken извлекает предъявленный токен из контекста
func GetToken(c *gin.Context) string {
	token, exists := c.Get(TokenContextKey)
	if !exists {
		return ""
	}

	t, ok := token.(string)
	if !ok {
		return ""
	}

	return t
}
