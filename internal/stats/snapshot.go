// ABOUTME: Statistics facade bundling aggregation, trend, and chart bounds.
// ABOUTME: Calculator memoizes the last result so repeated calls are free.
package stats

import (
	"sync"
	"time"

	"github.com/harperreed/magni/internal/models"
)

// Snapshot is everything a weight dashboard needs in one value.
type Snapshot struct {
	DailyStats  []DailyStatPoint            `json:"dailyStats"`
	AverageData []models.DailyAverageRecord `json:"averageData"`
	YDomain     YDomain                     `json:"yDomain"`
	Stats       TrendSnapshot               `json:"stats"`
}

// Build computes a fresh Snapshot. Samples are bucketed by calendar day in loc.
func Build(samples []*models.WeightSample, records []models.DailyAverageRecord, loc *time.Location) *Snapshot {
	daily := AggregateDaily(samples, loc)
	sorted := SortRecords(records)
	return &Snapshot{
		DailyStats:  daily,
		AverageData: sorted,
		YDomain:     ComputeYDomain(daily, sorted),
		Stats:       ComputeTrend(sorted),
	}
}

// Calculator wraps Build with a single-entry cache keyed on the input values.
// Callers must treat returned snapshots as read-only since they are shared.
type Calculator struct {
	loc *time.Location

	mu          sync.Mutex
	lastSamples []models.WeightSample
	lastRecords []models.DailyAverageRecord
	last        *Snapshot
}

// NewCalculator returns a Calculator that buckets days in loc. A nil loc
// means time.Local.
func NewCalculator(loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.Local
	}
	return &Calculator{loc: loc}
}

// Compute returns the snapshot for the inputs. When they equal the previous
// call's inputs the previous snapshot itself is returned.
func (c *Calculator) Compute(samples []*models.WeightSample, records []models.DailyAverageRecord) *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last != nil && samplesEqual(c.lastSamples, samples) && recordsEqual(c.lastRecords, records) {
		return c.last
	}

	c.last = Build(samples, records, c.loc)
	c.lastSamples = make([]models.WeightSample, len(samples))
	for i, s := range samples {
		c.lastSamples[i] = *s
	}
	c.lastRecords = make([]models.DailyAverageRecord, len(records))
	for i, r := range records {
		c.lastRecords[i] = copyRecord(r)
	}
	return c.last
}

func samplesEqual(cached []models.WeightSample, samples []*models.WeightSample) bool {
	if len(cached) != len(samples) {
		return false
	}
	for i, s := range samples {
		c := cached[i]
		if c.ID != s.ID || c.Value != s.Value || !c.Timestamp.Equal(s.Timestamp) {
			return false
		}
	}
	return true
}

func recordsEqual(cached, records []models.DailyAverageRecord) bool {
	if len(cached) != len(records) {
		return false
	}
	for i, r := range records {
		c := cached[i]
		if !c.Day.Equal(r.Day) || c.Average != r.Average ||
			!optionalEqual(c.ThreeDayAverage, r.ThreeDayAverage) ||
			!optionalEqual(c.SevenDayAverage, r.SevenDayAverage) {
			return false
		}
	}
	return true
}

func optionalEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// copyRecord detaches the optional fields so later caller mutation cannot
// corrupt the cache key.
func copyRecord(r models.DailyAverageRecord) models.DailyAverageRecord {
	if r.ThreeDayAverage != nil {
		v := *r.ThreeDayAverage
		r.ThreeDayAverage = &v
	}
	if r.SevenDayAverage != nil {
		v := *r.SevenDayAverage
		r.SevenDayAverage = &v
	}
	return r
}
