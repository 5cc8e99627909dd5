package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// 測試可覆寫
var (
	pgxpoolParseConfig   = pgxpool.ParseConfig
	pgxpoolNewWithConfig = pgxpool.NewWithConfig
)

// PoolOptions 連線池參數，零值代表使用 pgxpool 預設
type PoolOptions struct {
	MaxConns        int32
	MaxConnLifetime time.Duration
}

// NewPgxPool 依 DATABASE_URL 建立連線池
func NewPgxPool(ctx context.Context, url string, opts PoolOptions) (DB, error) {
	cfg, err := pgxpoolParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	if opts.MaxConnLifetime > 0 {
		cfg.MaxConnLifetime = opts.MaxConnLifetime
	}
	pool, err := pgxpoolNewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return pool, nil
}
