package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeRows struct{}

func (fakeRows) Close()                                       {}
func (fakeRows) Err() error                                   { return nil }
func (fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (fakeRows) Next() bool                                   { return false }
func (fakeRows) Scan(dest ...any) error                       { return nil }
func (fakeRows) Values() ([]any, error)                       { return nil, nil }
func (fakeRows) RawValues() [][]byte                          { return nil }
func (fakeRows) Conn() *pgx.Conn                              { return nil }

func TestFakeDBPanicsWhenUnset(t *testing.T) {
	db := &FakeDB{}
	ctx := context.Background()
	require.PanicsWithValue(t, "unexpected Exec: DELETE", func() { db.Exec(ctx, "DELETE") })
	require.Panics(t, func() { db.Query(ctx, "SELECT") })
	require.Panics(t, func() { db.QueryRow(ctx, "SELECT") })
	require.Panics(t, func() { db.Ping(ctx) })
	require.NotPanics(t, db.Close)
}

func TestFakeDBDelegates(t *testing.T) {
	calls := map[string]int{}
	db := &FakeDB{
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			calls["exec"]++
			return pgconn.NewCommandTag("DELETE 1"), errors.New("e")
		},
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			calls["query"]++
			return fakeRows{}, nil
		},
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			calls["row"]++
			require.Equal(t, []any{1, "a"}, args)
			return fakeRows{}
		},
		PingFn:  func(context.Context) error { calls["ping"]++; return nil },
		CloseFn: func() { calls["close"]++ },
	}
	ctx := context.Background()

	tag, err := db.Exec(ctx, "sql")
	require.Error(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
	_, err = db.Query(ctx, "sql")
	require.NoError(t, err)
	_ = db.QueryRow(ctx, "sql", 1, "a")
	require.NoError(t, db.Ping(ctx))
	db.Close()

	require.Equal(t, map[string]int{"exec": 1, "query": 1, "row": 1, "ping": 1, "close": 1}, calls)
}
