package database

import (
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct{ upErr error }

func (f fakeMigrator) Up() error { return f.upErr }

func restoreMigrate() {
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

func stubMigrateChain(m migrateInstance) {
	sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) { return m, nil }
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.Contains(t, names, "000001_init.up.sql")
	require.Contains(t, names, "000001_init.down.sql")

	up, err := fs.ReadFile(migrationsFS, "migrations/000001_init.up.sql")
	require.NoError(t, err)
	require.Contains(t, string(up), "REFERENCES categories (id, user_id)")
	require.Contains(t, string(up), "CHECK (amount > 0)")
}

func TestWithMigratorErrors(t *testing.T) {
	t.Cleanup(restoreMigrate)

	sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") }
	require.ErrorContains(t, RunMigrations("url"), "open database")

	sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") }
	require.ErrorContains(t, RunMigrations("url"), "migrate driver")

	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("src") }
	require.ErrorContains(t, RunMigrations("url"), "migrate source")

	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
		return nil, errors.New("mig")
	}
	require.ErrorContains(t, RunMigrations("url"), "migrate init")
}

func TestRunMigrations(t *testing.T) {
	t.Cleanup(restoreMigrate)

	stubMigrateChain(fakeMigrator{upErr: errors.New("u")})
	require.ErrorContains(t, RunMigrations("url"), "migrate up")

	stubMigrateChain(fakeMigrator{upErr: migrate.ErrNoChange})
	require.NoError(t, RunMigrations("url"))

	stubMigrateChain(fakeMigrator{})
	require.NoError(t, RunMigrations("url"))
}
