// ABOUTME: Repository implementation over a key-value Store.
// ABOUTME: Each collection lives under one key as a JSON array.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/harperreed/magni/internal/kv"
)

// Storage keys. These match the layout written by the mobile app so exported
// stores stay interchangeable.
const (
	WorkoutsKey   = "workouts"
	HistoryKey    = "workout_history"
	CurrentDayKey = "current_workout_day"
	WeightsKey    = "weights"
)

// ErrNotFound is returned when no record matches an ID or prefix.
var ErrNotFound = errors.New("not found")

// DB is the Repository backed by a kv.Store.
type DB struct {
	store kv.Store
	// mu serializes read-modify-write cycles on a collection.
	mu sync.Mutex
}

// New wraps store. The DB owns store and closes it on Close.
func New(store kv.Store) *DB {
	return &DB{store: store}
}

// Close closes the underlying store.
func (d *DB) Close() error {
	return d.store.Close()
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "magni")
}

// loadList reads the JSON array stored under key. A missing key is an empty list.
func loadList[T any](s kv.Store, key string) ([]*T, error) {
	data, err := s.Get(key)
	if errors.Is(err, kv.ErrNotFound) {
		return []*T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	var items []*T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}

// saveJSON writes v as JSON under key.
func saveJSON(s kv.Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// resolveIndex finds the single item whose ID equals or starts with
// idOrPrefix. An exact match wins over prefix matches.
func resolveIndex[T any](items []*T, id func(*T) string, idOrPrefix string) (int, error) {
	if idOrPrefix == "" {
		return -1, fmt.Errorf("%w: empty id", ErrNotFound)
	}

	match := -1
	for i, item := range items {
		itemID := id(item)
		if itemID == idOrPrefix {
			return i, nil
		}
		if strings.HasPrefix(itemID, idOrPrefix) {
			if match >= 0 {
				return -1, fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
			}
			match = i
		}
	}

	if match < 0 {
		return -1, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	return match, nil
}
