package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_PragmasOnEveryConnection(t *testing.T) {
	database, err := OpenDB(filepath.Join(t.TempDir(), "nested", "courtside.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	ctx := context.Background()
	var conns []*sql.Conn
	for i := 0; i < 3; i++ {
		conn, err := database.Conn(ctx)
		require.NoError(t, err)
		conns = append(conns, conn)
	}
	for _, conn := range conns {
		var fk, timeout int
		var mode string
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
		assert.Equal(t, 1, fk)
		assert.Equal(t, 5000, timeout)
		assert.Equal(t, "wal", mode)
	}
	for _, conn := range conns {
		require.NoError(t, conn.Close())
	}
}

func TestOpenDB_MemoryIsSingleConnection(t *testing.T) {
	database, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	assert.Equal(t, 1, database.Stats().MaxOpenConnections)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE name = 'settings'`).Scan(&n))
	assert.Equal(t, 1, n)
}
