// AngelaMos | 2026
// database_test.go

package core

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/opinion-board/internal/config"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()

	path := filepath.Join(t.TempDir(), "core.db")
	db, err := NewDatabase(context.Background(), config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		MaxOpenConns: 2,
		MaxIdleConns: 2,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Migrate(context.Background()))

	var n int
	require.NoError(t, db.DB.Get(&n, `SELECT COUNT(*) FROM opinions`))
	assert.Equal(t, 0, n)
}

func TestClassifyError_SQLiteConstraints(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.DB.ExecContext(ctx,
		`INSERT INTO users (email, username, password) VALUES (?, ?, ?)`,
		"a@x.com", "alice", "hash")
	require.NoError(t, err)

	_, err = db.DB.ExecContext(ctx,
		`INSERT INTO users (email, username, password) VALUES (?, ?, ?)`,
		"a@x.com", "other", "hash")
	require.Error(t, err)
	assert.True(t, errors.Is(ClassifyError(err), ErrDuplicateKey))

	_, err = db.DB.ExecContext(ctx,
		`INSERT INTO opinions (text, user_id, username) VALUES (?, ?, ?)`,
		"hello", 999, "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(ClassifyError(err), ErrForeignKey))
}

func TestClassifyError_Passthrough(t *testing.T) {
	assert.NoError(t, ClassifyError(nil))

	other := errors.New("boom")
	assert.Equal(t, other, ClassifyError(other))
}

func TestDatabase_Ping(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, db.Ping(context.Background()))
	assert.GreaterOrEqual(t, db.Stats().MaxOpenConnections, 1)
}
