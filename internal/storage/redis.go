package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chetansai93/eshanee-chetan-backend/internal/domain"
)

type RedisStatsCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) *RedisStatsCache {
	return &RedisStatsCache{Client: client, TTL: ttl}
}

func (c *RedisStatsCache) StatsKey(period, date string) string {
	if date == "" {
		date = "all"
	}
	return "order_stats:" + period + ":" + date
}

// GetStats returns (nil, nil) on a cache miss.
func (c *RedisStatsCache) GetStats(ctx context.Context, key string) (*domain.OrderStats, error) {
	val, err := c.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats domain.OrderStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *RedisStatsCache) SetStats(ctx context.Context, key string, stats *domain.OrderStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}
