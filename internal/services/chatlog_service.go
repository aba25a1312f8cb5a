package services

import (
	"encoding/json"
	"time"

	"fittrack_backend/internal/models"
	"fittrack_backend/internal/repositories"
	"fittrack_backend/internal/services/dto"
	"fittrack_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type ChatLogService interface {
	Append(userID string, req *dto.AppendChatRequest) (*dto.ChatLogResponse, error)
	Today(userID string) (*dto.ChatLogResponse, error)
	Latest(userID string) (*dto.ChatLogResponse, error)
}

type ChatLogServiceImpl struct {
	chatRepo repositories.ChatLogRepository
}

func NewChatLogService(chatRepo repositories.ChatLogRepository) ChatLogService {
	return &ChatLogServiceImpl{chatRepo: chatRepo}
}

// Append дозаписывает пару вопрос/ответ в сегодняшний лог,
// создавая его при первом обращении за день
func (s *ChatLogServiceImpl) Append(userID string, req *dto.AppendChatRequest) (*dto.ChatLogResponse, error) {
	now := time.Now()
	entry := models.ChatEntry{
		Question:  req.Question,
		Response:  req.Response,
		Timestamp: now.UTC().Format(time.RFC3339),
	}

	log, err := s.chatRepo.FindByUserAndDate(userID, now)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrChatLogNotFound) {
			return nil, apperrors.InternalError(err)
		}

		raw, err := json.Marshal([]models.ChatEntry{entry})
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		log = &models.ChatLog{
			UserID:      userID,
			CreatedDate: now,
			Entries:     datatypes.JSON(raw),
		}
		if err := s.chatRepo.Create(log); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return buildChatLogResponse(log)
	}

	entries, err := decodeEntries(log)
	if err != nil {
		return nil, err
	}
	entries = append(entries, entry)

	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	log.Entries = datatypes.JSON(raw)

	if err := s.chatRepo.UpdateEntries(log); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildChatLogResponse(log)
}

func (s *ChatLogServiceImpl) Today(userID string) (*dto.ChatLogResponse, error) {
	log, err := s.chatRepo.FindByUserAndDate(userID, time.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrChatLogNotFound) {
			return nil, apperrors.ErrChatLogNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return buildChatLogResponse(log)
}

func (s *ChatLogServiceImpl) Latest(userID string) (*dto.ChatLogResponse, error) {
	log, err := s.chatRepo.FindLatestByUser(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrChatLogNotFound) {
			return nil, apperrors.ErrChatLogNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return buildChatLogResponse(log)
}

func decodeEntries(log *models.ChatLog) ([]models.ChatEntry, error) {
	var entries []models.ChatEntry
	if len(log.Entries) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(log.Entries, &entries); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entries, nil
}

func buildChatLogResponse(log *models.ChatLog) (*dto.ChatLogResponse, error) {
	entries, err := decodeEntries(log)
	if err != nil {
		return nil, err
	}
	return &dto.ChatLogResponse{
		UserID:      log.UserID,
		CreatedDate: log.CreatedDate.Format("2006-01-02"),
		Entries:     entries,
	}, nil
}
