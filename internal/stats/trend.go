// ABOUTME: Trend engine over daily average records.
// ABOUTME: Computes headline weight, window-over-window changes, and chart bounds.
package stats

import (
	"math"
	"sort"

	"github.com/harperreed/magni/internal/models"
)

// Tolerance is how many calendar days a comparison record may sit from its
// target date.
const Tolerance = 1

// yPadding widens the chart domain on both sides.
const yPadding = 2

// TrendSnapshot holds the headline numbers shown for a weight series.
type TrendSnapshot struct {
	CurrentWeight  float64 `json:"currentWeight"`
	ThreeDayChange float64 `json:"threeDayChange"`
	SevenDayChange float64 `json:"sevenDayChange"`
}

// YDomain is the value range a chart should span.
type YDomain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// field selects one of a record's series; ok is false when it is absent.
type field func(r models.DailyAverageRecord) (v float64, ok bool)

func dailyField(r models.DailyAverageRecord) (float64, bool) {
	return r.Average, true
}

func threeDayField(r models.DailyAverageRecord) (float64, bool) {
	if r.ThreeDayAverage == nil {
		return 0, false
	}
	return *r.ThreeDayAverage, true
}

func sevenDayField(r models.DailyAverageRecord) (float64, bool) {
	if r.SevenDayAverage == nil {
		return 0, false
	}
	return *r.SevenDayAverage, true
}

// SortRecords returns a copy of records ordered oldest first.
func SortRecords(records []models.DailyAverageRecord) []models.DailyAverageRecord {
	sorted := make([]models.DailyAverageRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Day.Before(sorted[j].Day)
	})
	return sorted
}

// ComputeTrend derives the trend snapshot. records may arrive in any order.
//
// CurrentWeight is the latest seven-day average, else the latest three-day
// average, else the latest daily average; each tier looks for the latest
// record that carries it. A window change compares the latest record
// carrying that window's average against the record closest to exactly one
// window earlier, within Tolerance days, preferring the earlier record on
// ties. Without such a record the change is 0.
func ComputeTrend(records []models.DailyAverageRecord) TrendSnapshot {
	sorted := SortRecords(records)

	var snap TrendSnapshot
	for _, f := range []field{sevenDayField, threeDayField, dailyField} {
		if v, ok := latest(sorted, f); ok {
			snap.CurrentWeight = v
			break
		}
	}
	snap.ThreeDayChange = windowChange(sorted, ThreeDayWindow, threeDayField)
	snap.SevenDayChange = windowChange(sorted, SevenDayWindow, sevenDayField)
	return snap
}

func latest(sorted []models.DailyAverageRecord, f field) (float64, bool) {
	for i := len(sorted) - 1; i >= 0; i-- {
		if v, ok := f(sorted[i]); ok {
			return v, true
		}
	}
	return 0, false
}

func windowChange(sorted []models.DailyAverageRecord, window int, f field) float64 {
	last := -1
	for i := len(sorted) - 1; i >= 0; i-- {
		if _, ok := f(sorted[i]); ok {
			last = i
			break
		}
	}
	if last < 0 {
		return 0
	}

	current, _ := f(sorted[last])
	target := civilDay(sorted[last].Day) - int64(window)

	best := -1
	var bestDist int64
	for i := 0; i < last; i++ {
		if _, ok := f(sorted[i]); !ok {
			continue
		}
		dist := civilDay(sorted[i].Day) - target
		if dist < 0 {
			dist = -dist
		}
		if dist > Tolerance {
			continue
		}
		// Ascending order means the first record at a given distance is the earliest.
		if best < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best < 0 {
		return 0
	}

	previous, _ := f(sorted[best])
	return current - previous
}

// ComputeYDomain spans every daily min and max plus every present average,
// padded on both sides. With nothing to span it falls back to 0..100.
func ComputeYDomain(points []DailyStatPoint, records []models.DailyAverageRecord) YDomain {
	lo, hi := math.Inf(1), math.Inf(-1)
	see := func(v float64) {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	for _, p := range points {
		see(p.Min)
		see(p.Max)
	}
	for _, r := range records {
		for _, f := range []field{dailyField, threeDayField, sevenDayField} {
			if v, ok := f(r); ok {
				see(v)
			}
		}
	}

	if math.IsInf(lo, 1) {
		return YDomain{Min: 0, Max: 100}
	}
	return YDomain{Min: lo - yPadding, Max: hi + yPadding}
}
