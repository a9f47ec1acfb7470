// ABOUTME: Store backed by Charm KV with end-to-end encrypted cloud sync.
// ABOUTME: Opens read-only when another process holds the database lock.
package kv

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	charmkv "github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
)

// DefaultCharmHost is the Charm server used when none is configured.
const DefaultCharmHost = "charm.2389.dev"

var errReadOnly = errors.New("cannot write: database is locked by another process (MCP server?)")

// CharmStore wraps a Charm KV database. Writes sync to the cloud when
// auto-sync is on.
type CharmStore struct {
	kv       *charmkv.KV
	autoSync bool
	mu       sync.RWMutex
}

// OpenCharm opens the named Charm KV database against host and pulls remote
// changes unless the database is read-only.
func OpenCharm(name, host string) (*CharmStore, error) {
	if host == "" {
		host = DefaultCharmHost
	}
	if err := os.Setenv("CHARM_HOST", host); err != nil {
		return nil, fmt.Errorf("set charm host: %w", err)
	}

	db, err := charmkv.OpenWithDefaultsFallback(name)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	if !db.IsReadOnly() {
		_ = db.Sync()
	}

	return &CharmStore{kv: db, autoSync: true}, nil
}

// IsReadOnly reports whether another process holds the write lock.
func (c *CharmStore) IsReadOnly() bool {
	return c.kv.IsReadOnly()
}

// SetAutoSync enables or disables syncing after each write.
func (c *CharmStore) SetAutoSync(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoSync = enabled
}

// Sync exchanges changes with the Charm server.
func (c *CharmStore) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.kv.IsReadOnly() {
		return nil
	}
	return c.kv.Sync()
}

// Reset wipes local data and rebuilds it from the server.
func (c *CharmStore) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Reset()
}

// ID returns the Charm account ID linked to this machine.
func (c *CharmStore) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

func (c *CharmStore) syncIfEnabled() {
	if c.autoSync && !c.kv.IsReadOnly() {
		_ = c.kv.Sync()
	}
}

func (c *CharmStore) Get(key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, err := c.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return v, nil
}

func (c *CharmStore) Set(key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv.IsReadOnly() {
		return errReadOnly
	}
	if err := c.kv.Set([]byte(key), value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	c.syncIfEnabled()
	return nil
}

func (c *CharmStore) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv.IsReadOnly() {
		return errReadOnly
	}
	if err := c.kv.Delete([]byte(key)); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	c.syncIfEnabled()
	return nil
}

func (c *CharmStore) Keys() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	raw, err := c.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = string(k)
	}
	return keys, nil
}

func (c *CharmStore) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}
