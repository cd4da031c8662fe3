package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cycleLockKey = "pipeline_cycle_lock"

// RedisCycleLock serializes pipeline cycles across processes with a SetNX
// lease. The TTL bounds how long a crashed cycle can block the next one.
type RedisCycleLock struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisCycleLock(client *redis.Client, ttl time.Duration) *RedisCycleLock {
	return &RedisCycleLock{redisClient: client, ttl: ttl}
}

// Acquire takes the lease; false means another cycle holds it.
func (l *RedisCycleLock) Acquire(ctx context.Context) (bool, error) {
	ok, err := l.redisClient.SetNX(ctx, cycleLockKey, time.Now().UTC().Format(time.RFC3339), l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire cycle lock: %w", err)
	}
	return ok, nil
}

// Release drops the lease.
func (l *RedisCycleLock) Release(ctx context.Context) error {
	if err := l.redisClient.Del(ctx, cycleLockKey).Err(); err != nil {
		return fmt.Errorf("failed to release cycle lock: %w", err)
	}
	return nil
}
