package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"expense-tracker/internal/database"
	"expense-tracker/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func userValues(id int, username, email string) []any {
	return []any{id, username, email, "hash", now, now}
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()

	db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
		require.Contains(t, sql, "FROM users WHERE id = $1")
		require.Equal(t, []any{3}, args)
		return fakeRow{values: userValues(3, "alice", "a@x.com")}
	}}
	u, err := GetUserByID(ctx, db, 3)
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, "hash", u.PasswordHash)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return fakeRow{err: pgx.ErrNoRows} }
	_, err = GetUserByID(ctx, db, 3)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserByLogin(t *testing.T) {
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
		require.Contains(t, sql, "username = $1 OR email = $2")
		require.Equal(t, []any{"Alice@X.com", "alice@x.com"}, args)
		return fakeRow{values: userValues(1, "alice", "alice@x.com")}
	}}
	u, err := GetUserByLogin(context.Background(), db, "Alice@X.com")
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
}

func TestUserExists(t *testing.T) {
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
		require.Equal(t, []any{"alice", "a@x.com", 0}, args)
		return fakeRow{values: []any{true}}
	}}
	ok, err := UserExists(context.Background(), db, "alice", "a@x.com", 0)
	require.NoError(t, err)
	require.True(t, ok)

	db.QueryRowFn = func(context.Context, string, ...any) pgx.Row { return fakeRow{err: errors.New("down")} }
	_, err = UserExists(context.Background(), db, "alice", "a@x.com", 0)
	require.ErrorContains(t, err, "UserExists: down")
}

func TestCreateUserWithDefaults(t *testing.T) {
	defaults := []model.Category{
		{Name: "Groceries", Description: "g", Color: "#111111"},
		{Name: "Other", Description: "o", Color: "#222222"},
	}

	t.Run("seeds categories in one statement", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "INSERT INTO users")
			require.Contains(t, sql, "INSERT INTO categories")
			require.Equal(t, "alice", args[0])
			require.Equal(t, []string{"Groceries", "Other"}, args[3])
			require.Equal(t, []string{"g", "o"}, args[4])
			require.Equal(t, []string{"#111111", "#222222"}, args[5])
			return fakeRow{values: []any{9, now, now}}
		}}
		u, err := CreateUserWithDefaults(context.Background(), db, &model.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"}, defaults)
		require.NoError(t, err)
		require.Equal(t, 9, u.ID)
		require.Equal(t, now, u.CreatedAt)
	})

	t.Run("unique violation", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeRow{err: pgError("23505", "users_username_key")}
		}}
		_, err := CreateUserWithDefaults(context.Background(), db, &model.User{}, defaults)
		require.ErrorIs(t, err, ErrConflict)
	})
}

func TestUpdateUserProfile(t *testing.T) {
	name := "alicia"
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
		require.Contains(t, sql, "COALESCE($1, username)")
		require.Equal(t, &name, args[0])
		require.Nil(t, args[1])
		require.Equal(t, 4, args[2])
		return fakeRow{values: userValues(4, "alicia", "a@x.com")}
	}}
	u, err := UpdateUserProfile(context.Background(), db, 4, &name, nil)
	require.NoError(t, err)
	require.Equal(t, "alicia", u.Username)
}

func TestUpdateUserPassword(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
		require.Equal(t, []any{"newhash", 2}, args)
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}}
	require.NoError(t, UpdateUserPassword(ctx, db, 2, "newhash"))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	require.ErrorIs(t, UpdateUserPassword(ctx, db, 2, "newhash"), ErrNotFound)

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("x")
	}
	require.Error(t, UpdateUserPassword(ctx, db, 2, "newhash"))
}
