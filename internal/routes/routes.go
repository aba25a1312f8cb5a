package routes

import (
	"net/http"

	"fittrack_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes подключает все маршруты приложения под /api
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, authRequired gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	h.Auth.RegisterRoutes(api, authRequired)
	h.User.RegisterRoutes(api, authRequired)
	h.Activity.RegisterRoutes(api, authRequired)
	h.Exercise.RegisterRoutes(api, authRequired)
	h.Food.RegisterRoutes(api, authRequired)
	h.ChatLog.RegisterRoutes(api, authRequired)
}
