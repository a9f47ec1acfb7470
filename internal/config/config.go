// ABOUTME: Magni configuration management with backend selection.
// ABOUTME: Reads the JSON config file and MAGNI_ environment overrides via viper.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/harperreed/magni/internal/kv"
	"github.com/harperreed/magni/internal/storage"
	"github.com/spf13/viper"
)

// Supported storage backends.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendCharm  = "charm"
)

// EnvPrefix prefixes environment overrides, e.g. MAGNI_BACKEND.
const EnvPrefix = "MAGNI"

// CharmDBName names the Charm KV database.
const CharmDBName = "magni"

var keys = []string{"backend", "data_dir", "timezone", "log_level", "log_file", "charm_host"}

// Config stores magni configuration. Empty fields mean "use the default".
type Config struct {
	// Backend selects the storage backend: "badger" (default), "sqlite" or "charm".
	Backend string `json:"backend,omitempty" mapstructure:"backend"`

	// DataDir is the root directory for local backends.
	// Supports ~ expansion. Defaults to ~/.local/share/magni.
	DataDir string `json:"data_dir,omitempty" mapstructure:"data_dir"`

	// Timezone is the IANA zone whose midnight separates calendar days.
	Timezone string `json:"timezone,omitempty" mapstructure:"timezone"`

	LogLevel  string `json:"log_level,omitempty" mapstructure:"log_level"`
	LogFile   string `json:"log_file,omitempty" mapstructure:"log_file"`
	CharmHost string `json:"charm_host,omitempty" mapstructure:"charm_host"`
}

// GetBackend returns the configured backend, defaulting to badger.
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendBadger
	}
	return strings.ToLower(c.Backend)
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogLevel returns the configured level, defaulting to warn.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// GetLogFile returns the log file path with ~ expanded, or "".
func (c *Config) GetLogFile() string {
	return ExpandPath(c.LogFile)
}

// Location resolves Timezone. Empty or "Local" is the system zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore opens the raw key-value store for the configured backend.
// logger receives badger's internal messages and may be nil.
func (c *Config) OpenStore(logger badger.Logger) (kv.Store, error) {
	dataDir := c.GetDataDir()

	switch c.GetBackend() {
	case BackendBadger:
		return kv.OpenBadger(filepath.Join(dataDir, "badger"), logger)
	case BackendSQLite:
		return kv.OpenSQLite(filepath.Join(dataDir, "magni.db"))
	case BackendCharm:
		return kv.OpenCharm(CharmDBName, c.CharmHost)
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// OpenStorage opens a repository over the configured backend.
func (c *Config) OpenStorage(logger badger.Logger) (*storage.DB, error) {
	store, err := c.OpenStore(logger)
	if err != nil {
		return nil, err
	}
	return storage.New(store), nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "magni", "config.json")
}

// Load reads the config file, if any, and applies environment overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(GetConfigPath())
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	// Missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
