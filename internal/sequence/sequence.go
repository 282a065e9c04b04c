package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Generator hands out unique, human-readable request numbers such as
// IB-20250831-0004. Numbers restart at 1 each day per prefix.
type Generator interface {
	Next(ctx context.Context, prefix string) (string, error)
}

type redisGenerator struct {
	rdb *redis.Client
}

func NewRedisGenerator(rdb *redis.Client) Generator {
	return &redisGenerator{rdb: rdb}
}

func (g *redisGenerator) Next(ctx context.Context, prefix string) (string, error) {
	date := time.Now().Format("20060102")
	key := fmt.Sprintf("seq:%s:%s", prefix, date)

	n, err := g.rdb.Incr(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("sequence incr: %w", err)
	}
	// Yesterday's counters are garbage after the date rolls over
	if n == 1 {
		g.rdb.Expire(ctx, key, 48*time.Hour)
	}

	return fmt.Sprintf("%s-%s-%04d", prefix, date, n), nil
}
