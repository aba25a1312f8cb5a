package services

import (
	"sync"
	"testing"
	"time"

	"fittrack_backend/internal/models"
	"fittrack_backend/internal/repositories"
	"fittrack_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatLogRepo struct {
	mu   sync.Mutex
	logs []*models.ChatLog
}

func (r *fakeChatLogRepo) Create(log *models.ChatLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	copied := *log
	r.logs = append(r.logs, &copied)
	return nil
}

func (r *fakeChatLogRepo) UpdateEntries(log *models.ChatLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.logs {
		if stored.ID == log.ID {
			stored.Entries = log.Entries
			return nil
		}
	}
	return repositories.ErrChatLogNotFound
}

func (r *fakeChatLogRepo) FindByUserAndDate(userID string, day time.Time) (*models.ChatLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	for _, stored := range r.logs {
		if stored.UserID == userID && !stored.CreatedDate.Before(dayStart) && stored.CreatedDate.Before(dayEnd) {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, repositories.ErrChatLogNotFound
}

func (r *fakeChatLogRepo) FindLatestByUser(userID string) (*models.ChatLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *models.ChatLog
	for _, stored := range r.logs {
		if stored.UserID != userID {
			continue
		}
		if latest == nil || stored.CreatedDate.After(latest.CreatedDate) {
			latest = stored
		}
	}
	if latest == nil {
		return nil, repositories.ErrChatLogNotFound
	}
	copied := *latest
	return &copied, nil
}

func TestChatLogAppend_CreatesTodayLog(t *testing.T) {
	repo := &fakeChatLogRepo{}
	svc := NewChatLogService(repo)

	resp, err := svc.Append("user-1", &dto.AppendChatRequest{
		Question: "Сколько белка мне нужно?",
		Response: "Примерно 1.6 грамма на килограмм веса.",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", resp.UserID)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "Сколько белка мне нужно?", resp.Entries[0].Question)
	assert.NotEmpty(t, resp.Entries[0].Timestamp)
}

func TestChatLogAppend_AppendsToExistingLog(t *testing.T) {
	repo := &fakeChatLogRepo{}
	svc := NewChatLogService(repo)

	_, err := svc.Append("user-1", &dto.AppendChatRequest{Question: "q1", Response: "r1"})
	require.NoError(t, err)

	resp, err := svc.Append("user-1", &dto.AppendChatRequest{Question: "q2", Response: "r2"})
	require.NoError(t, err)

	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "q1", resp.Entries[0].Question)
	assert.Equal(t, "q2", resp.Entries[1].Question)

	// в хранилище один лог за день
	assert.Len(t, repo.logs, 1)
}

func TestChatLogToday_NotFound(t *testing.T) {
	repo := &fakeChatLogRepo{}
	svc := NewChatLogService(repo)

	_, err := svc.Today("user-1")
	assert.Error(t, err)
}

func TestChatLogLatest(t *testing.T) {
	repo := &fakeChatLogRepo{}
	svc := NewChatLogService(repo)

	_, err := svc.Latest("user-1")
	assert.Error(t, err)

	_, err = svc.Append("user-1", &dto.AppendChatRequest{Question: "q1", Response: "r1"})
	require.NoError(t, err)

	resp, err := svc.Latest("user-1")
	require.NoError(t, err)
	assert.Len(t, resp.Entries, 1)
}
