package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisPingTimeout bounds the startup connectivity check so a wrong
// REDIS_URL fails fast instead of hanging boot.
const redisPingTimeout = 5 * time.Second

// NewRedis parses the URL, opens a client and verifies the connection.
// The caller decides whether a failure is fatal; the token deny list
// degrades gracefully when no client is wired.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
