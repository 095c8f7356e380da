package sync

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/iudanet/agendasync/internal/models"
)

// StatusFeed хранит текущий статус синхронизации и рассылает его подписчикам.
// Публикуются только изменения; новый подписчик сразу получает текущее значение
type StatusFeed struct {
	mu          sync.Mutex
	current     models.SyncStatus
	subscribers map[string]chan models.SyncStatus
}

// NewStatusFeed создает feed в состоянии Disabled
func NewStatusFeed() *StatusFeed {
	return &StatusFeed{
		current:     models.Disabled(),
		subscribers: make(map[string]chan models.SyncStatus),
	}
}

// Current возвращает последний опубликованный статус
func (f *StatusFeed) Current() models.SyncStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// Publish устанавливает статус. Возвращает false, если статус не изменился.
// Не блокируется: медленный подписчик получит только последнее значение
func (f *StatusFeed) Publish(status models.SyncStatus) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.publishLocked(status)
}

// PublishUnless устанавливает статус, если hold не удерживает текущий.
// Проверка и запись выполняются под одной блокировкой
func (f *StatusFeed) PublishUnless(status models.SyncStatus, hold func(current models.SyncStatus) bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if hold(f.current) {
		return false
	}
	return f.publishLocked(status)
}

func (f *StatusFeed) publishLocked(status models.SyncStatus) bool {
	if status == f.current {
		return false
	}
	f.current = status

	for _, ch := range f.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- status
	}
	return true
}

// Subscribe возвращает канал статусов. Канал закрывается при отмене ctx
func (f *StatusFeed) Subscribe(ctx context.Context) <-chan models.SyncStatus {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan models.SyncStatus, 1)
	ch <- f.current
	f.subscribers[id] = ch

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subscribers, id)
		close(ch)
	}()

	return ch
}
