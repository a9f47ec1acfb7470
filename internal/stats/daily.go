// ABOUTME: Per-day aggregation of raw weight samples.
// ABOUTME: Buckets samples by calendar day and reports min, max, and mean.
package stats

import (
	"sort"
	"time"

	"github.com/harperreed/magni/internal/models"
)

// LabelLayout formats a day for chart axes, e.g. "Jan 15".
const LabelLayout = "Jan 2"

// DailyStatPoint is the spread of readings for one calendar day.
type DailyStatPoint struct {
	Day   time.Time `json:"day"`
	Min   float64   `json:"min"`
	Max   float64   `json:"max"`
	Avg   float64   `json:"avg"`
	Label string    `json:"label"`
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// AggregateDaily groups samples by calendar day in loc and returns one point
// per day, oldest first. Days without samples are not emitted. Each day's
// values are summed in sorted order so the mean does not depend on input order.
func AggregateDaily(samples []*models.WeightSample, loc *time.Location) []DailyStatPoint {
	buckets := make(map[time.Time][]float64)
	for _, s := range samples {
		day := StartOfDay(s.Timestamp, loc)
		buckets[day] = append(buckets[day], s.Value)
	}

	points := make([]DailyStatPoint, 0, len(buckets))
	for day, values := range buckets {
		sort.Float64s(values)
		var sum float64
		for _, v := range values {
			sum += v
		}
		points = append(points, DailyStatPoint{
			Day:   day,
			Min:   values[0],
			Max:   values[len(values)-1],
			Avg:   sum / float64(len(values)),
			Label: day.Format(LabelLayout),
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Day.Before(points[j].Day)
	})

	return points
}
