// ABOUTME: Weight sample operations for the key-value repository.
// ABOUTME: Samples are stored newest first; daily averages are derived on read.
package storage

import (
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/magni/internal/models"
	"github.com/harperreed/magni/internal/stats"
)

func weightID(s *models.WeightSample) string { return s.ID }

func (d *DB) loadWeights() ([]*models.WeightSample, error) {
	return loadList[models.WeightSample](d.store, WeightsKey)
}

// CreateWeight stores a new weight sample.
func (d *DB) CreateWeight(s *models.WeightSample) error {
	if s.Value <= 0 {
		return fmt.Errorf("weight must be positive, got %v", s.Value)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	samples, err := d.loadWeights()
	if err != nil {
		return err
	}
	samples = append([]*models.WeightSample{s}, samples...)
	if err := saveJSON(d.store, WeightsKey, samples); err != nil {
		return fmt.Errorf("create weight: %w", err)
	}
	return nil
}

// ListWeights returns samples sorted by Timestamp descending (most recent
// first). A limit of 0 or less returns everything.
func (d *DB) ListWeights(limit int) ([]*models.WeightSample, error) {
	samples, err := d.loadWeights()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Timestamp.After(samples[j].Timestamp)
	})

	if limit > 0 && len(samples) > limit {
		samples = samples[:limit]
	}
	return samples, nil
}

// DeleteWeight removes a sample by ID or ID prefix.
func (d *DB) DeleteWeight(idOrPrefix string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	samples, err := d.loadWeights()
	if err != nil {
		return err
	}
	i, err := resolveIndex(samples, weightID, idOrPrefix)
	if err != nil {
		return err
	}

	samples = append(samples[:i], samples[i+1:]...)
	if err := saveJSON(d.store, WeightsKey, samples); err != nil {
		return fmt.Errorf("delete weight: %w", err)
	}
	return nil
}

// DailyAverages derives per-day and rolling averages from every stored
// sample, bucketing days in loc.
func (d *DB) DailyAverages(loc *time.Location) ([]models.DailyAverageRecord, error) {
	samples, err := d.loadWeights()
	if err != nil {
		return nil, err
	}
	return stats.DailyAverages(samples, loc), nil
}
