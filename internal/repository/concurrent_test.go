package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/courtside/internal/db"
	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ReadDuringWrite lists a day's food while another
// goroutine keeps logging to it. Readers must only ever see whole rows.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteCalorieLogRepo(database)
	day := domain.DateKey(testutil.FixedNow)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			if err := repo.Put(ctx, testutil.NewTestCalorieLog(fmt.Sprintf("Maaltijd %d", i))); err != nil {
				t.Errorf("writer: put log %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				logs, err := repo.ListRange(ctx, day, day)
				if err != nil {
					t.Errorf("reader %d: list range: %v", reader, err)
					return
				}
				for _, l := range logs {
					if l.ID == "" || l.Food == "" {
						t.Errorf("reader %d: got a half-written log", reader)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	logs, err := repo.ListRange(ctx, day, day)
	require.NoError(t, err)
	assert.Len(t, logs, 20)
}

// TestConcurrentAccess_ParallelWriters has several goroutines logging food
// and touching settings at once, the way overlapping HTTP requests would.
// busy_timeout must absorb the lock contention.
func TestConcurrentAccess_ParallelWriters(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	logs := NewSQLiteCalorieLogRepo(database)
	training := NewSQLiteTrainingLogRepo(database)
	settings := NewSQLiteSettingsRepo(database)

	const writers = 8
	const perWriter = 10

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(writer int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if err := logs.Put(ctx, testutil.NewTestCalorieLog(fmt.Sprintf("w%d-%d", writer, i))); err != nil {
					t.Errorf("writer %d: put log: %v", writer, err)
					return
				}
				if err := settings.Put(ctx, fmt.Sprintf("writer_%d", writer), i); err != nil {
					t.Errorf("writer %d: put setting: %v", writer, err)
					return
				}
			}
			if err := training.Put(ctx, testutil.NewTestTrainingLog("Training")); err != nil {
				t.Errorf("writer %d: put training: %v", writer, err)
			}
		}(w)
	}
	wg.Wait()

	all, err := logs.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, writers*perWriter)

	sessions, err := training.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, writers)

	for w := 0; w < writers; w++ {
		var last int
		ok, err := settings.Get(ctx, fmt.Sprintf("writer_%d", w), &last)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, perWriter-1, last)
	}
}
