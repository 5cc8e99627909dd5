package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 是服務用到的 Redis 子集合：健康檢查寫入與登入節流計數。
// *redis.Client 直接滿足此介面；nil 代表未設定 Redis。
type Cache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
	Close() error
}

// FakeCache 測試用，未設定的方法會 panic（Close 除外）
type FakeCache struct {
	SetFn    func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
	IncrFn   func(ctx context.Context, key string) *redis.IntCmd
	ExpireFn func(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd
	CloseFn  func() error
}

func (f *FakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	if f.SetFn == nil {
		panic("unexpected Set")
	}
	return f.SetFn(ctx, key, value, ttl)
}

func (f *FakeCache) Incr(ctx context.Context, key string) *redis.IntCmd {
	if f.IncrFn == nil {
		panic("unexpected Incr")
	}
	return f.IncrFn(ctx, key)
}

func (f *FakeCache) Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	if f.ExpireFn == nil {
		panic("unexpected Expire")
	}
	return f.ExpireFn(ctx, key, ttl)
}

func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
