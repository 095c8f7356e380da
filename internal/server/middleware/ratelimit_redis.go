package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter - лимит с фиксированным окном в redis, общий для нескольких
// экземпляров сервера
type RedisLimiter struct {
	client *redis.Client
	prefix string
	rate   int
	window time.Duration
	now    func() time.Time
}

// NewRedisLimiter подключается к redis по URL и проверяет соединение
func NewRedisLimiter(ctx context.Context, redisURL string, rate int, window time.Duration) (*RedisLimiter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisLimiterWithClient(client, rate, window), nil
}

// NewRedisLimiterWithClient создает limiter поверх готового клиента
func NewRedisLimiterWithClient(client *redis.Client, rate int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: "ratelimit:",
		rate:   rate,
		window: window,
		now:    time.Now,
	}
}

// key включает номер окна, поэтому счетчик сбрасывается с началом нового окна
func (l *RedisLimiter) key(k string) string {
	slot := l.now().UnixNano() / int64(l.window)
	return l.prefix + k + ":" + strconv.FormatInt(slot, 10)
}

// Allow увеличивает счетчик окна и сравнивает его с лимитом
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}

	return incr.Val() <= int64(l.rate), nil
}

// Close closes the Redis connection
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
