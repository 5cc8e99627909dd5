package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

// 測試可覆寫
var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// Options Redis 連線參數
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient 建立 client 並 Ping 確認可用；Ping 失敗會關閉 client
func NewRedisClient(ctx context.Context, opts Options) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: 5 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return client, nil
}
