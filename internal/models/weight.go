// ABOUTME: Weight sample and daily average models.
// ABOUTME: Samples are raw readings; daily averages feed the trend engine.
package models

import (
	"time"

	"github.com/google/uuid"
)

// WeightSample is a single recorded body weight reading.
type WeightSample struct {
	ID        string    `json:"id" yaml:"id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Value     float64   `json:"weight" yaml:"weight"`
}

// NewWeightSample creates a sample recorded now.
func NewWeightSample(value float64) *WeightSample {
	return &WeightSample{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Value:     value,
	}
}

// WithTimestamp sets a custom recording time.
func (s *WeightSample) WithTimestamp(t time.Time) *WeightSample {
	s.Timestamp = t
	return s
}

// DailyAverageRecord summarizes one calendar day. Day is midnight of that day
// in the location used for aggregation. The rolling averages are nil until
// enough history exists to fill their window.
type DailyAverageRecord struct {
	Day             time.Time `json:"day" yaml:"day"`
	Average         float64   `json:"average" yaml:"average"`
	ThreeDayAverage *float64  `json:"threeDayAverage,omitempty" yaml:"three_day_average,omitempty"`
	SevenDayAverage *float64  `json:"sevenDayAverage,omitempty" yaml:"seven_day_average,omitempty"`
}
