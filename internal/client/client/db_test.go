package client

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesPreferencesTable(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "tm.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	require.True(t, tableExists(t, db, "goose_db_version"))
	require.True(t, tableExists(t, db, "preferences"))

	_, err = db.ExecContext(ctx, `INSERT INTO preferences(key, value) VALUES ('theme', 'dark')`)
	require.NoError(t, err)
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "tm.db")

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))
	require.True(t, tableExists(t, db, "preferences"))
}

func TestInitDatabase_CreatesParentDirs(t *testing.T) {
	db, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "tm.db"))
	require.NoError(t, err)
	defer db.Close()
	require.True(t, tableExists(t, db, "preferences"))
}

func TestInitDatabase_BadPath(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "blocker"), []byte("x"), 0o600))

	_, err := InitDatabase(context.Background(), filepath.Join(tmp, "blocker", "tm.db"))
	require.Error(t, err)
}
