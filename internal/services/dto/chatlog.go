package dto

import "fittrack_backend/internal/models"

// AppendChatRequest - пара вопрос/ответ для дневного лога
type AppendChatRequest struct {
	Question string `json:"question" binding:"required"`
	Response string `json:"response" binding:"required"`
}

// ChatLogResponse - лог переписки за день
type ChatLogResponse struct {
	UserID      string             `json:"user_id"`
	CreatedDate string             `json:"created_date"`
	Entries     []models.ChatEntry `json:"log_data"`
}
