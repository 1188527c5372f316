package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&count)
	require.NoError(t, err)
	return count == 1
}

func TestVersion_FreshDatabase(t *testing.T) {
	db := openDB(t)

	_, ok, err := Version(db)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	version, ok, err := Version(db)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(2), version)

	for _, table := range []string{"profiles", "time_entries", VersionTable} {
		assert.True(t, tableExists(t, db, table), table)
	}
}

func TestRunMigrations_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunMigrations(ctx, openDB(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunMigrations_RoleConstraint(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	require.NoError(t, RunMigrations(ctx, db))

	_, err := db.ExecContext(ctx, `INSERT INTO profiles (id, username, role, password_hash, created_at) VALUES ('1', 'x', 'root', 'h', 'now')`)
	assert.Error(t, err)
}

func TestRollbackAll(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	require.NoError(t, RunMigrations(ctx, db))

	require.NoError(t, RollbackAll(db))
	assert.False(t, tableExists(t, db, "profiles"))
	assert.False(t, tableExists(t, db, "time_entries"))

	_, ok, err := Version(db)
	require.NoError(t, err)
	assert.False(t, ok)
}
