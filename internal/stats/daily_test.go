// ABOUTME: Tests for per-day sample aggregation.
// ABOUTME: Covers grouping, ordering, labels, precision, input order, and zones.
package stats

import (
	"testing"
	"time"

	"github.com/harperreed/magni/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateDailyEmpty(t *testing.T) {
	points := AggregateDaily(nil, time.UTC)
	if points == nil || len(points) != 0 {
		t.Errorf("AggregateDaily(nil) = %v, want empty slice", points)
	}
}

func TestAggregateDailySameDay(t *testing.T) {
	points := AggregateDaily([]*models.WeightSample{
		sample(jan(15, 20), 181.0),
		sample(jan(15, 8), 180.0),
	}, time.UTC)

	require.Len(t, points, 1)
	assert.Equal(t, 180.0, points[0].Min)
	assert.Equal(t, 181.0, points[0].Max)
	assert.Equal(t, 180.5, points[0].Avg)
	assert.Equal(t, "Jan 15", points[0].Label)
}

func TestAggregateDailySortedAndSparse(t *testing.T) {
	points := AggregateDaily([]*models.WeightSample{
		sample(jan(17, 10), 182.0),
		sample(jan(15, 10), 180.0),
	}, time.UTC)

	require.Len(t, points, 2)
	assert.Equal(t, "Jan 15", points[0].Label)
	assert.Equal(t, "Jan 17", points[1].Label)
	assert.True(t, points[0].Day.Before(points[1].Day))
}

func TestAggregateDailyPrecision(t *testing.T) {
	points := AggregateDaily([]*models.WeightSample{
		sample(jan(15, 7), 180.123),
		sample(jan(15, 9), 180.456),
	}, time.UTC)

	require.Len(t, points, 1)
	assert.InDelta(t, 180.2895, points[0].Avg, 1e-9)
}

func TestAggregateDailyOrderIndependent(t *testing.T) {
	// (0.1+0.2)+0.3 and (0.3+0.2)+0.1 differ in the last bit.
	orders := [][]float64{
		{0.1, 0.2, 0.3},
		{0.1, 0.3, 0.2},
		{0.2, 0.1, 0.3},
		{0.2, 0.3, 0.1},
		{0.3, 0.1, 0.2},
		{0.3, 0.2, 0.1},
	}

	build := func(values []float64) []*models.WeightSample {
		var samples []*models.WeightSample
		for i, v := range values {
			samples = append(samples, sample(jan(15, 6+i), v))
			samples = append(samples, sample(jan(16, 6+i), 180+v))
		}
		return samples
	}

	want := AggregateDaily(build(orders[0]), time.UTC)
	require.Len(t, want, 2)
	for _, order := range orders[1:] {
		got := AggregateDaily(build(order), time.UTC)
		assert.Equal(t, want, got, "order %v", order)
	}

	reversed := build(orders[0])
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	assert.Equal(t, want, AggregateDaily(reversed, time.UTC))
	assert.Equal(t, 0.1, want[0].Min)
	assert.Equal(t, 0.3, want[0].Max)
}

func TestAggregateDailyUsesLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 03:00 UTC on Jan 16 is still Jan 15 in New York.
	samples := []*models.WeightSample{
		sample(jan(15, 18), 180),
		sample(jan(16, 3), 182),
	}

	assert.Len(t, AggregateDaily(samples, time.UTC), 2)

	local := AggregateDaily(samples, ny)
	require.Len(t, local, 1)
	assert.Equal(t, 181.0, local[0].Avg)
	assert.Equal(t, "Jan 15", local[0].Label)
}

func TestAggregateDailyManyDays(t *testing.T) {
	var samples []*models.WeightSample
	start := jan(1, 9)
	for i := 0; i < 100; i++ {
		samples = append(samples, sample(start.AddDate(0, 0, i), 180+float64(i)))
	}

	points := AggregateDaily(samples, time.UTC)
	require.Len(t, points, 100)
	for i := 1; i < len(points); i++ {
		if !points[i-1].Day.Before(points[i].Day) {
			t.Fatalf("points not ascending at %d", i)
		}
	}
}
