package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/agendasync/internal/client/sync"
	"github.com/iudanet/agendasync/internal/config"
)

// runWatch держит фоновую загрузку и печатает изменения статуса и локального зеркала
// до отмены ctx. reloads приносит перечитанную конфигурацию
func (c *Cli) runWatch(ctx context.Context, enabled bool, reloads <-chan *config.Client) error {
	session, err := c.connect(ctx)
	if err != nil {
		return err
	}

	statuses := c.syncService.Subscribe(ctx)
	snapshots, err := c.agendas.StreamAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch local agendas: %w", err)
	}

	if enabled {
		c.autosync.SetSession(session)
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.autosync.Run(ctx)
	}()

	if enabled {
		c.io.Printf("Watching group %s, pulling every %s. Press Ctrl+C to stop.\n", session.GroupID, c.autosync.Interval())
	} else {
		c.io.Printf("Watching group %s, autosync is off. Press Ctrl+C to stop.\n", session.GroupID)
	}

	for statuses != nil || snapshots != nil {
		select {
		case s, ok := <-statuses:
			if !ok {
				statuses = nil
				continue
			}
			c.io.Printf("[%s] status: %s\n", time.Now().Format(time.TimeOnly), s)
		case docs, ok := <-snapshots:
			if !ok {
				snapshots = nil
				continue
			}
			c.io.Printf("[%s] local mirror: %d agenda(s)\n", time.Now().Format(time.TimeOnly), len(docs))
		case next := <-reloads:
			c.applyConfig(session, next)
			c.io.Printf("[%s] config reloaded, autosync every %s\n", time.Now().Format(time.TimeOnly), c.autosync.Interval())
		}
	}

	<-done
	c.io.Println("Stopped.")
	return nil
}

// applyConfig применяет перечитанные настройки autosync к работающей задаче
func (c *Cli) applyConfig(session *sync.Session, next *config.Client) {
	c.autosync.SetInterval(next.AutoSyncInterval)
	if next.AutoSync {
		c.autosync.SetSession(session)
	} else {
		c.autosync.SetSession(nil)
	}
}

// offerLatest кладет значение в канал емкостью 1, вытесняя непрочитанное
func offerLatest[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
