package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RateLimiter interface {
	// Allow 固定視窗計數；超過時回傳需等待的時間
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error)
}

type RedisRateLimiterImpl struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &RedisRateLimiterImpl{
		client: client,
	}
}

func (l *RedisRateLimiterImpl) getKey(key string) string {
	return fmt.Sprintf("ratelimit:%s", key)
}

// 第一次計數時設定過期，回傳 {count, pttl}
var rateLimitScript = redis.NewScript(`
	local count = redis.call('INCR', KEYS[1])
	if count == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	local ttl = redis.call('PTTL', KEYS[1])
	if ttl < 0 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
		ttl = tonumber(ARGV[1])
	end
	return {count, ttl}
`)

func (l *RedisRateLimiterImpl) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	result, err := rateLimitScript.Run(ctx, l.client, []string{l.getKey(key)}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return false, 0, err
	}

	count, ttl := result[0], result[1]
	if count > int64(limit) {
		return false, time.Duration(ttl) * time.Millisecond, nil
	}
	return true, 0, nil
}
