// ABOUTME: Shared fixtures for stats tests.
// ABOUTME: Builds samples and daily records on fixed January 2024 dates.
package stats

import (
	"time"

	"github.com/harperreed/magni/internal/models"
)

func jan(day, hour int) time.Time {
	return time.Date(2024, time.January, day, hour, 0, 0, 0, time.UTC)
}

func sample(at time.Time, value float64) *models.WeightSample {
	return models.NewWeightSample(value).WithTimestamp(at)
}

func ptr(v float64) *float64 {
	return &v
}

func record(day int, avg float64, three, seven *float64) models.DailyAverageRecord {
	return models.DailyAverageRecord{
		Day:             jan(day, 0),
		Average:         avg,
		ThreeDayAverage: three,
		SevenDayAverage: seven,
	}
}
