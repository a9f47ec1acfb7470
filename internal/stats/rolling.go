// ABOUTME: Rolling daily averages computed from raw weight samples.
// ABOUTME: Produces the per-day records consumed by the trend engine.
package stats

import (
	"time"

	"github.com/harperreed/magni/internal/models"
)

// Rolling window sizes in days.
const (
	ThreeDayWindow = 3
	SevenDayWindow = 7
)

// DailyAverages turns samples into one record per calendar day in loc,
// oldest first. A window average for day d is the mean of the daily means
// falling in [d-w+1, d]. It is left nil until the recorded history reaches
// back at least w calendar days from d.
func DailyAverages(samples []*models.WeightSample, loc *time.Location) []models.DailyAverageRecord {
	points := AggregateDaily(samples, loc)
	if len(points) == 0 {
		return []models.DailyAverageRecord{}
	}

	first := civilDay(points[0].Day)
	records := make([]models.DailyAverageRecord, len(points))
	for i, p := range points {
		records[i] = models.DailyAverageRecord{
			Day:             p.Day,
			Average:         p.Avg,
			ThreeDayAverage: windowMean(points, i, ThreeDayWindow, first),
			SevenDayAverage: windowMean(points, i, SevenDayWindow, first),
		}
	}
	return records
}

// windowMean averages the daily means in the window ending at points[i].
// points must be sorted ascending.
func windowMean(points []DailyStatPoint, i, window int, first int64) *float64 {
	end := civilDay(points[i].Day)
	start := end - int64(window) + 1
	if first > start {
		return nil
	}

	var sum float64
	var n int
	for j := i; j >= 0; j-- {
		if civilDay(points[j].Day) < start {
			break
		}
		sum += points[j].Avg
		n++
	}
	mean := sum / float64(n)
	return &mean
}

// civilDay numbers t's calendar date (in t's own location) as days since
// the Unix epoch, so differences are immune to DST transitions.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}
