// Package periodic запускает задачу с фиксированной паузой между выполнениями.
package periodic

import (
	"context"
	"time"
)

// Job - запущенная периодическая задача
type Job struct {
	cancel   context.CancelFunc
	done     chan struct{}
	interval time.Duration
}

// Start запускает task сразу и затем через interval после завершения каждого выполнения.
// Выполнения не перекрываются. Задача останавливается при отмене ctx или вызове Stop
func Start(ctx context.Context, interval time.Duration, task func(ctx context.Context)) *Job {
	ctx, cancel := context.WithCancel(ctx)
	j := &Job{
		cancel:   cancel,
		done:     make(chan struct{}),
		interval: interval,
	}

	go j.run(ctx, task)

	return j
}

func (j *Job) run(ctx context.Context, task func(ctx context.Context)) {
	defer close(j.done)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		task(ctx)

		if ctx.Err() != nil {
			return
		}
		timer.Reset(j.interval)
	}
}

// Stop отменяет задачу и ждет завершения текущего выполнения.
// Повторные вызовы безопасны
func (j *Job) Stop() {
	j.cancel()
	<-j.done
}

// Done закрывается, когда задача полностью остановлена
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Interval возвращает паузу между выполнениями
func (j *Job) Interval() time.Duration {
	return j.interval
}
