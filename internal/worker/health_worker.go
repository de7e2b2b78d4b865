package worker

import (
	"context"
	"time"

	"todoTracker/internal/logger"
	"todoTracker/internal/service"

	"go.uber.org/zap"
)

// HealthWorker периодически пингует хранилище и пишет в лог, когда
// соединение деградировало; никакого восстановления сам не делает
type HealthWorker struct {
	repo     service.TodoRepository
	interval time.Duration
	lastOK   time.Time
}

func NewHealthWorker(repo service.TodoRepository, interval time.Duration) *HealthWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &HealthWorker{
		repo:     repo,
		interval: interval,
		lastOK:   time.Now(),
	}
}

func (w *HealthWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.check(ctx)
		case <-ctx.Done():
			logger.Info("Worker: Фоновая проверка хранилища останавливается")
			return
		}
	}
}

func (w *HealthWorker) check(ctx context.Context) {
	start := time.Now()

	checkCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	if err := w.repo.HealthCheck(checkCtx); err != nil {
		logger.Warn("Worker: Хранилище недоступно",
			zap.Error(err),
			zap.Duration("since_last_ok", time.Since(w.lastOK)))
		return
	}

	w.lastOK = time.Now()
	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Worker: Медленный ответ хранилища", zap.Duration("ms", time.Since(start)))
	}
}
