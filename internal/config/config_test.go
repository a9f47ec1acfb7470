// ABOUTME: Tests for magni configuration management.
// ABOUTME: Covers load, save, env overrides, defaults, timezones, and the backend factory.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/magni/internal/kv"
	"github.com/harperreed/magni/internal/models"
)

// isolate points config lookups at a fresh directory and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{"BACKEND", "DATA_DIR", "TIMEZONE", "LOG_LEVEL", "LOG_FILE", "CHARM_HOST"} {
		t.Setenv(EnvPrefix+"_"+key, "")
	}
	return dir
}

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != BackendBadger {
		t.Errorf("GetBackend() = %q, want %q", got, BackendBadger)
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "SQLite"}
	if got := cfg.GetBackend(); got != BackendSQLite {
		t.Errorf("GetBackend() = %q, want %q", got, BackendSQLite)
	}
}

func TestGetDataDirDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	cfg := &Config{}
	if got := cfg.GetDataDir(); got != "/tmp/xdg-data/magni" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/xdg-data/magni")
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/magni-data"}
	want := filepath.Join(home, "magni-data")
	if got := cfg.GetDataDir(); got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestGetLogLevelDefault(t *testing.T) {
	if got := (&Config{}).GetLogLevel(); got != "warn" {
		t.Errorf("GetLogLevel() = %q, want warn", got)
	}
	if got := (&Config{LogLevel: "debug"}).GetLogLevel(); got != "debug" {
		t.Errorf("GetLogLevel() = %q, want debug", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data/magni", filepath.Join(home, "data/magni")},
		{"data/magni", "data/magni"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLocation(t *testing.T) {
	loc, err := (&Config{}).Location()
	if err != nil || loc == nil {
		t.Fatalf("Location() default failed: %v", err)
	}

	loc, err = (&Config{Timezone: "UTC"}).Location()
	if err != nil {
		t.Fatalf("Location(UTC) failed: %v", err)
	}
	if loc.String() != "UTC" {
		t.Errorf("Location() = %q, want UTC", loc.String())
	}

	if _, err := (&Config{Timezone: "Mars/Olympus"}).Location(); err == nil {
		t.Error("Expected error for unknown timezone")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.Backend != "" {
		t.Errorf("Expected empty Backend, got %q", cfg.Backend)
	}
	if cfg.DataDir != "" {
		t.Errorf("Expected empty DataDir, got %q", cfg.DataDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	isolate(t)

	cfg := &Config{
		Backend:  BackendSQLite,
		DataDir:  "/tmp/magni-data",
		Timezone: "America/Chicago",
		LogLevel: "info",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Load() = %+v, want %+v", *loaded, *cfg)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := isolate(t)

	if err := (&Config{Backend: BackendBadger}).Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "magni", "config.json"))
	if err != nil {
		t.Fatalf("Expected config file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("config mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)

	if err := (&Config{Backend: BackendSQLite, LogLevel: "error"}).Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	t.Setenv("MAGNI_BACKEND", "charm")
	t.Setenv("MAGNI_TIMEZONE", "Europe/Oslo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Backend != BackendCharm {
		t.Errorf("Backend = %q, want charm", cfg.Backend)
	}
	if cfg.Timezone != "Europe/Oslo" {
		t.Errorf("Timezone = %q, want Europe/Oslo", cfg.Timezone)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error from file", cfg.LogLevel)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := isolate(t)

	configDir := filepath.Join(dir, "magni")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	dir := isolate(t)

	want := filepath.Join(dir, "magni", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenStoreSQLite(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Backend: BackendSQLite, DataDir: dir}

	store, err := cfg.OpenStore(nil)
	if err != nil {
		t.Fatalf("OpenStore() for sqlite failed: %v", err)
	}
	defer store.Close()

	if _, ok := store.(*kv.SQLiteStore); !ok {
		t.Errorf("OpenStore() = %T, want *kv.SQLiteStore", store)
	}
	if _, err := os.Stat(filepath.Join(dir, "magni.db")); err != nil {
		t.Errorf("Expected magni.db to be created: %v", err)
	}
}

func TestOpenStorageDefaultBackend(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{DataDir: dir}

	repo, err := cfg.OpenStorage(nil)
	if err != nil {
		t.Fatalf("OpenStorage() with default backend failed: %v", err)
	}

	if err := repo.CreateWorkout(models.NewWorkout("Squat", 225, 5, 5)); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "badger")); err != nil {
		t.Errorf("Expected badger directory to be created: %v", err)
	}

	reopened, err := cfg.OpenStorage(nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	workouts, err := reopened.ListWorkouts(nil)
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if len(workouts) != 1 {
		t.Errorf("got %d workouts after reopen, want 1", len(workouts))
	}
}

func TestOpenStorageInvalidBackend(t *testing.T) {
	cfg := &Config{Backend: "invalid", DataDir: t.TempDir()}

	if _, err := cfg.OpenStorage(nil); err == nil {
		t.Error("Expected error for invalid backend")
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(&Config{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}
