package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/chetansai93/eshanee-chetan-backend/internal/domain"
)

func setupStatsCache(t *testing.T) (*RedisStatsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStatsCache(client, time.Minute), mr
}

func TestStatsKeyFormat(t *testing.T) {
	cache, _ := setupStatsCache(t)

	if key := cache.StatsKey("today", ""); key != "order_stats:today:all" {
		t.Fatalf("unexpected key: %s", key)
	}
	if key := cache.StatsKey("custom", "2026-08-29"); key != "order_stats:custom:2026-08-29" {
		t.Fatalf("unexpected key: %s", key)
	}
}

func TestStatsCacheRoundTrip(t *testing.T) {
	cache, _ := setupStatsCache(t)
	ctx := context.Background()

	stats := &domain.OrderStats{TotalOrders: 7, TotalRevenue: 1950.5, UniqueCustomers: 3, PendingOrders: 2}
	key := cache.StatsKey("week", "")

	if err := cache.SetStats(ctx, key, stats); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := cache.GetStats(ctx, key)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got == nil || got.TotalOrders != 7 || got.TotalRevenue != 1950.5 {
		t.Fatalf("unexpected cached stats: %+v", got)
	}
}

func TestStatsCacheMissReturnsNil(t *testing.T) {
	cache, _ := setupStatsCache(t)

	got, err := cache.GetStats(context.Background(), "order_stats:today:all")
	if err != nil {
		t.Fatalf("expected no error on miss, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on miss, got %+v", got)
	}
}

func TestStatsCacheEntryExpires(t *testing.T) {
	cache, mr := setupStatsCache(t)
	ctx := context.Background()

	key := cache.StatsKey("today", "")
	if err := cache.SetStats(ctx, key, &domain.OrderStats{TotalOrders: 1}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	mr.FastForward(2 * time.Minute)

	got, err := cache.GetStats(ctx, key)
	if err != nil || got != nil {
		t.Fatalf("expected expired entry to read as a miss, got %+v err=%v", got, err)
	}
}
