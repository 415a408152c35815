package httpmiddleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisFixedWindow counts requests per key in one-minute windows shared
// across instances. A Redis outage does not block traffic.
type RedisFixedWindow struct {
	client *redis.Client
	limit  int64
}

// NewRedisFixedWindow creates a limiter allowing perMinute requests per key.
func NewRedisFixedWindow(client *redis.Client, perMinute int) *RedisFixedWindow {
	if perMinute <= 0 {
		perMinute = 60
	}
	return &RedisFixedWindow{client: client, limit: int64(perMinute)}
}

// Allow increments the current window counter for key.
func (l *RedisFixedWindow) Allow(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	window := "ratelimit:" + key + ":" + time.Now().UTC().Format("200601021504")
	n, err := l.client.Incr(ctx, window).Result()
	if err != nil {
		return true
	}
	if n == 1 {
		l.client.Expire(ctx, window, 2*time.Minute)
	}
	return n <= l.limit
}
