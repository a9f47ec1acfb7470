// ABOUTME: Contract tests run against every local Store implementation.
// ABOUTME: Charm is excluded because it needs a linked account and network.
package kv

import (
	"errors"
	"path/filepath"
	"sort"
	"testing"
)

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*BadgerStore)(nil)
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*CharmStore)(nil)
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()

	badgerStore, err := OpenBadgerInMemory(nil)
	if err != nil {
		t.Fatalf("OpenBadgerInMemory failed: %v", err)
	}
	t.Cleanup(func() { _ = badgerStore.Close() })

	sqliteStore, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "magni.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"badger": badgerStore,
		"sqlite": sqliteStore,
	}
}

func TestStoreGetMissing(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get("nope")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreSetGetOverwrite(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set("workouts", []byte(`[]`)); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := s.Set("workouts", []byte(`[{"id":"a"}]`)); err != nil {
				t.Fatalf("Set overwrite failed: %v", err)
			}
			got, err := s.Get("workouts")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if string(got) != `[{"id":"a"}]` {
				t.Errorf("Get = %s, want overwritten value", got)
			}
		})
	}
}

func TestStoreDeleteAndKeys(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"b", "a", "c"} {
				if err := s.Set(k, []byte(k)); err != nil {
					t.Fatalf("Set(%s) failed: %v", k, err)
				}
			}
			if err := s.Delete("b"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if err := s.Delete("never-set"); err != nil {
				t.Errorf("Delete(missing) error = %v, want nil", err)
			}

			keys, err := s.Keys()
			if err != nil {
				t.Fatalf("Keys failed: %v", err)
			}
			sort.Strings(keys)
			if len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
				t.Errorf("Keys = %v, want [a c]", keys)
			}
		})
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	value := []byte("abc")
	_ = s.Set("k", value)
	value[0] = 'z'

	got, _ := s.Get("k")
	if string(got) != "abc" {
		t.Errorf("Get = %s, want abc", got)
	}
	got[0] = 'y'
	again, _ := s.Get("k")
	if string(again) != "abc" {
		t.Errorf("Get after caller mutation = %s, want abc", again)
	}
}

func TestBadgerPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenBadger(dir, nil)
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	if err := s.Set("current_workout_day", []byte("2")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, err = OpenBadger(dir, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()

	got, err := s.Get("current_workout_day")
	if err != nil || string(got) != "2" {
		t.Errorf("Get after reopen = %q, %v; want 2", got, err)
	}
}

func TestDefaultCharmHost(t *testing.T) {
	if DefaultCharmHost != "charm.2389.dev" {
		t.Errorf("DefaultCharmHost = %q, want charm.2389.dev", DefaultCharmHost)
	}
}
