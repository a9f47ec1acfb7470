// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides repositories over memory, badger, and sqlite stores.
package storage

import (
	"path/filepath"
	"testing"

	"github.com/harperreed/magni/internal/kv"
	"github.com/harperreed/magni/internal/models"
)

// setupTestDB creates a repository over an in-memory store.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db := New(kv.NewMemoryStore())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupSQLiteDB creates a repository over a SQLite file in a temp directory.
func setupSQLiteDB(t *testing.T) *DB {
	t.Helper()
	store, err := kv.OpenSQLite(filepath.Join(t.TempDir(), "magni.db"))
	if err != nil {
		t.Fatalf("Failed to open sqlite store: %v", err)
	}
	db := New(store)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupBadgerDB creates a repository over an in-memory badger instance.
func setupBadgerDB(t *testing.T) *DB {
	t.Helper()
	store, err := kv.OpenBadgerInMemory(nil)
	if err != nil {
		t.Fatalf("Failed to open badger store: %v", err)
	}
	db := New(store)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func mustCreateWorkout(t *testing.T, db *DB, w *models.Workout) *models.Workout {
	t.Helper()
	if err := db.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout(%s) failed: %v", w.Name, err)
	}
	return w
}

func names(workouts []*models.Workout) []string {
	out := make([]string, len(workouts))
	for i, w := range workouts {
		out[i] = w.Name
	}
	return out
}
