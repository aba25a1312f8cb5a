package handlers

import (
	"net/http"

	"fittrack_backend/internal/services"
	"fittrack_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ChatLogHandler struct {
	*BaseHandler
	chatLogService services.ChatLogService
}

func NewChatLogHandler(base *BaseHandler, chatLogService services.ChatLogService) *ChatLogHandler {
	return &ChatLogHandler{
		BaseHandler:    base,
		chatLogService: chatLogService,
	}
}

func (h *ChatLogHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	fitbot := rg.Group("/fitbot")
	fitbot.Use(authRequired)
	{
		fitbot.POST("/log", h.Append)
		fitbot.GET("/log/today", h.Today)
		fitbot.GET("/log/latest", h.Latest)
	}
}

func (h *ChatLogHandler) Append(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AppendChatRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	log, err := h.chatLogService.Append(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": log})
}

func (h *ChatLogHandler) Today(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	log, err := h.chatLogService.Today(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": log})
}

func (h *ChatLogHandler) Latest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	log, err := h.chatLogService.Latest(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": log})
}
