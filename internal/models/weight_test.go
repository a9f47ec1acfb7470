// ABOUTME: Tests for the WeightSample model.
// ABOUTME: Validates constructor and builder methods.
package models

import (
	"testing"
	"time"
)

func TestNewWeightSample(t *testing.T) {
	s := NewWeightSample(82.5)

	if s.ID == "" {
		t.Error("expected ID to be set")
	}
	if s.Value != 82.5 {
		t.Errorf("Value = %f, want 82.5", s.Value)
	}
	if s.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestWeightSampleWithTimestamp(t *testing.T) {
	at := time.Date(2024, 12, 14, 7, 0, 0, 0, time.UTC)
	s := NewWeightSample(80).WithTimestamp(at)

	if !s.Timestamp.Equal(at) {
		t.Errorf("Timestamp = %v, want %v", s.Timestamp, at)
	}
}
