// ABOUTME: Workout history operations for the key-value repository.
// ABOUTME: New entries are prepended; listing sorts newest date first.
package storage

import (
	"fmt"
	"sort"

	"github.com/harperreed/magni/internal/models"
)

func historyID(h *models.WorkoutHistory) string { return h.ID }

func (d *DB) loadHistory() ([]*models.WorkoutHistory, error) {
	return loadList[models.WorkoutHistory](d.store, HistoryKey)
}

// CreateHistory stores a single history entry.
func (d *DB) CreateHistory(h *models.WorkoutHistory) error {
	return d.CreateBulkHistory([]*models.WorkoutHistory{h})
}

// CreateBulkHistory stores entries in one write.
func (d *DB) CreateBulkHistory(entries []*models.WorkoutHistory) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.prependHistoryLocked(entries); err != nil {
		return fmt.Errorf("create history: %w", err)
	}
	return nil
}

func (d *DB) prependHistoryLocked(entries []*models.WorkoutHistory) error {
	existing, err := d.loadHistory()
	if err != nil {
		return err
	}
	all := make([]*models.WorkoutHistory, 0, len(entries)+len(existing))
	all = append(all, entries...)
	all = append(all, existing...)
	return saveJSON(d.store, HistoryKey, all)
}

// ListHistory returns the entries recorded on date (YYYY-MM-DD) in stored
// order, or every entry newest date first when date is empty.
func (d *DB) ListHistory(date string) ([]*models.WorkoutHistory, error) {
	entries, err := d.loadHistory()
	if err != nil {
		return nil, err
	}

	if date != "" {
		filtered := entries[:0]
		for _, h := range entries {
			if h.Date == date {
				filtered = append(filtered, h)
			}
		}
		return filtered, nil
	}

	// YYYY-MM-DD sorts lexically in date order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	return entries, nil
}

// DeleteHistory removes one entry by ID or ID prefix.
func (d *DB) DeleteHistory(idOrPrefix string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	entries, err := d.loadHistory()
	if err != nil {
		return err
	}
	i, err := resolveIndex(entries, historyID, idOrPrefix)
	if err != nil {
		return err
	}

	entries = append(entries[:i], entries[i+1:]...)
	if err := saveJSON(d.store, HistoryKey, entries); err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	return nil
}

// ClearHistory removes every history entry.
func (d *DB) ClearHistory() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.store.Delete(HistoryKey); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
