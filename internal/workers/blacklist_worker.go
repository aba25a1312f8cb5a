package workers

import (
	"context"
	"time"

	"fittrack_backend/internal/logger"
	"fittrack_backend/internal/repositories"
)

// BlacklistWorker периодически вычищает истекшие записи из черного списка токенов
type BlacklistWorker struct {
	revokedRepo repositories.RevokedTokenRepository
	interval    time.Duration
}

func NewBlacklistWorker(revokedRepo repositories.RevokedTokenRepository, interval time.Duration) *BlacklistWorker {
	if interval <= 0 {
		interval = 12 * time.Hour
	}
	return &BlacklistWorker{
		revokedRepo: revokedRepo,
		interval:    interval,
	}
}

// Start запускает фоновую очистку
func (w *BlacklistWorker) Start(ctx context.Context) {
	go w.purgeLoop(ctx)
}

func (w *BlacklistWorker) purgeLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// первый проход сразу, чтобы не ждать целый интервал после рестарта
	w.purge()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Blacklist worker stopped")
			return
		case <-ticker.C:
			w.purge()
		}
	}
}

func (w *BlacklistWorker) purge() {
	purged, err := w.revokedRepo.PurgeExpired()
	if err != nil {
		logger.WorkerLog("blacklist", "purge_expired", err)
		return
	}
	if purged > 0 {
		logger.Info("Purged expired revoked tokens", "count", purged)
	}
}
