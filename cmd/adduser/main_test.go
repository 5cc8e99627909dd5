package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"strings"
	"testing"

	"expense-tracker/internal/apperror"
	"expense-tracker/internal/config"
	"expense-tracker/internal/database"
	"expense-tracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	origLoad, origPool, origMigrate, origRegister, origExit := loadConfig, newPgxPool, runMigrationsFn, register, exitFunc
	t.Cleanup(func() {
		loadConfig, newPgxPool, runMigrationsFn, register, exitFunc = origLoad, origPool, origMigrate, origRegister, origExit
	})
}

// stubDeps 換掉外部依賴，回傳的 calls 紀錄 register 收到的參數
func stubDeps(t *testing.T) *[]string {
	restoreGlobals(t)
	var calls []string
	loadConfig = func() *config.Config { return &config.Config{DatabaseURL: "postgres://test"} }
	newPgxPool = func(ctx context.Context, url string, opts database.PoolOptions) (database.DB, error) {
		return &database.FakeDB{}, nil
	}
	runMigrationsFn = func(string) error { return nil }
	register = func(ctx context.Context, db database.DB, username, email, password string) (*model.User, error) {
		calls = append(calls, username, email, password)
		return &model.User{ID: 42, Username: username, Email: email}, nil
	}
	return &calls
}

func TestRunSuccess(t *testing.T) {
	calls := stubDeps(t)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	err := run([]string{"-user", "alice", "-email", "alice@example.com", "-password", "secret1"}, new(bytes.Buffer), stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "User alice created successfully with ID 42")
	assert.Equal(t, []string{"alice", "alice@example.com", "secret1"}, *calls)
}

func TestRunPromptsForPassword(t *testing.T) {
	calls := stubDeps(t)
	stdout := new(bytes.Buffer)

	err := run([]string{"-user", "bob", "-email", "bob@example.com"}, strings.NewReader("prompted\n"), stdout, new(bytes.Buffer))
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Password: ")
	assert.Equal(t, "prompted", (*calls)[2])
}

func TestRunSkipMigrate(t *testing.T) {
	stubDeps(t)
	runMigrationsFn = func(string) error { t.Fatal("migrations should be skipped"); return nil }

	err := run([]string{"-user", "a", "-email", "a@example.com", "-password", "secret1", "-skip-migrate"}, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.NoError(t, err)
}

func TestRunErrors(t *testing.T) {
	base := []string{"-user", "alice", "-email", "alice@example.com", "-password", "secret1"}

	cases := []struct {
		name  string
		args  []string
		stdin string
		setup func()
		want  string
	}{
		{name: "missing flags", args: []string{"-user", "alice"}, want: "missing required flags"},
		{name: "empty prompt", args: []string{"-user", "a", "-email", "a@example.com"}, stdin: "   \n", want: "password cannot be empty"},
		{name: "no input", args: []string{"-user", "a", "-email", "a@example.com"}, want: "failed to read password"},
		{
			name:  "no database url",
			args:  base,
			setup: func() { loadConfig = func() *config.Config { return &config.Config{} } },
			want:  "DATABASE_URL is required",
		},
		{
			name: "pool error",
			args: base,
			setup: func() {
				newPgxPool = func(context.Context, string, database.PoolOptions) (database.DB, error) {
					return nil, errors.New("dial")
				}
			},
			want: "failed to open database: dial",
		},
		{
			name:  "migration error",
			args:  base,
			setup: func() { runMigrationsFn = func(string) error { return errors.New("dirty") } },
			want:  "failed to run migrations: dirty",
		},
		{
			name: "duplicate user",
			args: base,
			setup: func() {
				register = func(context.Context, database.DB, string, string, string) (*model.User, error) {
					return nil, apperror.Conflict("username or email already exists")
				}
			},
			want: "username or email already exists",
		},
		{
			name: "storage error",
			args: base,
			setup: func() {
				register = func(context.Context, database.DB, string, string, string) (*model.User, error) {
					return nil, errors.New("connection reset")
				}
			},
			want: "failed to create user: connection reset",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stubDeps(t)
			if tc.setup != nil {
				tc.setup()
			}
			err := run(tc.args, strings.NewReader(tc.stdin), new(bytes.Buffer), new(bytes.Buffer))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestRunHelp(t *testing.T) {
	stubDeps(t)
	stderr := new(bytes.Buffer)
	err := run([]string{"-h"}, new(bytes.Buffer), new(bytes.Buffer), stderr)
	require.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, stderr.String(), "-email")
}
