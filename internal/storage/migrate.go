// ABOUTME: Data migration between magni storage backends.
// ABOUTME: Copies workouts, weights, history, and the current day from source to destination.

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Workouts   int
	Weights    int
	History    int
	CurrentDay int
}

// MigrateData copies all data from src to dst storage. The destination
// should be empty before calling this function.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	data, err := src.GetAllData()
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	if err := dst.ReplaceWorkouts(data.Workouts); err != nil {
		return nil, fmt.Errorf("copy workouts: %w", err)
	}

	// Insert oldest first so the destination keeps newest-first order.
	for i := len(data.Weights) - 1; i >= 0; i-- {
		s := data.Weights[i]
		if err := dst.CreateWeight(s); err != nil {
			return nil, fmt.Errorf("create weight %s: %w", s.ID, err)
		}
	}

	if len(data.History) > 0 {
		if err := dst.CreateBulkHistory(data.History); err != nil {
			return nil, fmt.Errorf("copy history: %w", err)
		}
	}

	if err := dst.SetCurrentDay(data.CurrentDay); err != nil {
		return nil, fmt.Errorf("copy current day: %w", err)
	}

	return &MigrateSummary{
		Workouts:   len(data.Workouts),
		Weights:    len(data.Weights),
		History:    len(data.History),
		CurrentDay: data.CurrentDay,
	}, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
