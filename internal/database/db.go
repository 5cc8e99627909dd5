package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB 是 store 層唯一依賴的資料庫介面，*pgxpool.Pool 直接滿足它
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(context.Context) error
	Close()
}

// FakeDB 測試用，未設定的方法會 panic（Close 除外）
type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
	PingFn     func(ctx context.Context) error
	CloseFn    func()
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn == nil {
		panic("unexpected Exec: " + sql)
	}
	return f.ExecFn(ctx, sql, args...)
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn == nil {
		panic("unexpected Query: " + sql)
	}
	return f.QueryFn(ctx, sql, args...)
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn == nil {
		panic("unexpected QueryRow: " + sql)
	}
	return f.QueryRowFn(ctx, sql, args...)
}

func (f *FakeDB) Ping(ctx context.Context) error {
	if f.PingFn == nil {
		panic("unexpected Ping")
	}
	return f.PingFn(ctx)
}

func (f *FakeDB) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
