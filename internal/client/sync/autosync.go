package sync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/agendasync/internal/client/periodic"
	"github.com/iudanet/agendasync/internal/models"
)

const (
	// DefaultAutoSyncInterval используется, если интервал не задан
	DefaultAutoSyncInterval = 120 * time.Second
	// MinAutoSyncInterval - нижняя граница интервала
	MinAutoSyncInterval = 30 * time.Second
)

// ClampInterval приводит интервал к допустимому: 0 дает значение по умолчанию,
// меньше минимума поднимается до минимума
func ClampInterval(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultAutoSyncInterval
	}
	return max(d, MinAutoSyncInterval)
}

// AutoSync держит не более одной периодической задачи PullAll.
// Задача работает, пока статус Connected и есть сессия.
// Любое изменение интервала, сессии или статуса синхронно останавливает текущую задачу
// перед запуском следующей
type AutoSync struct {
	svc    *Service
	logger *slog.Logger
	start  func(ctx context.Context, interval time.Duration, task func(ctx context.Context)) *periodic.Job

	mu       sync.Mutex
	ctx      context.Context
	job      *periodic.Job
	session  *Session
	status   models.SyncStatus
	interval time.Duration
	jobGroup string
}

// NewAutoSync создает контроллер. Интервал приводится через ClampInterval
func NewAutoSync(svc *Service, interval time.Duration, logger *slog.Logger) *AutoSync {
	return &AutoSync{
		svc:      svc,
		logger:   logger,
		start:    periodic.Start,
		interval: ClampInterval(interval),
		status:   models.Disabled(),
	}
}

// Run следит за статусом сервиса и управляет задачей до отмены ctx.
// При выходе задача останавливается
func (a *AutoSync) Run(ctx context.Context) {
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()

	defer a.Stop()

	for status := range a.svc.Subscribe(ctx) {
		a.mu.Lock()
		a.status = status
		a.reconcileLocked()
		a.mu.Unlock()
	}
}

// SetInterval меняет интервал; работающая задача перезапускается
func (a *AutoSync) SetInterval(d time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.interval = ClampInterval(d)
	a.reconcileLocked()
}

// SetSession меняет группу; nil останавливает задачу
func (a *AutoSync) SetSession(session *Session) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.session = session
	a.reconcileLocked()
}

// Interval возвращает действующий интервал
func (a *AutoSync) Interval() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interval
}

// Active сообщает, запущена ли задача
func (a *AutoSync) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.job != nil
}

// Stop останавливает задачу и ждет завершения текущей загрузки
func (a *AutoSync) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

func (a *AutoSync) reconcileLocked() {
	eligible := a.ctx != nil && a.ctx.Err() == nil &&
		a.status.State == models.SyncConnected && a.session.Joined()

	if !eligible {
		a.stopLocked()
		return
	}

	if a.job != nil && a.job.Interval() == a.interval && a.jobGroup == a.session.GroupID {
		return
	}

	a.stopLocked()

	session := *a.session
	a.jobGroup = session.GroupID
	a.job = a.start(a.ctx, a.interval, func(ctx context.Context) {
		if _, err := a.svc.PullAll(ctx, &session); err != nil {
			a.logger.DebugContext(ctx, "autosync pull failed", slog.Any("error", err))
		}
	})

	a.logger.Debug("autosync started",
		slog.String("group_id", session.GroupID),
		slog.Duration("interval", a.interval))
}

func (a *AutoSync) stopLocked() {
	if a.job == nil {
		return
	}
	a.job.Stop()
	a.job = nil
	a.jobGroup = ""
}
