// ABOUTME: Tests for the Workout model.
// ABOUTME: Validates constructors, builder methods, validation, and relationship helpers.
package models

import (
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func TestNewWorkout(t *testing.T) {
	w := NewWorkout("Squat", 100, 5, 5)

	if w.ID == "" {
		t.Error("expected ID to be set")
	}
	if w.Name != "Squat" {
		t.Errorf("Name = %s, want Squat", w.Name)
	}
	if w.Day != 1 {
		t.Errorf("Day = %d, want 1", w.Day)
	}
	if w.Notes != nil || w.SupersetParentID != nil || w.AltParentID != nil {
		t.Error("expected optional fields to be absent")
	}
}

func TestWorkoutBuilders(t *testing.T) {
	w := NewWorkout("Curl", 15, 3, 12).
		WithNotes("slow negatives").
		WithDay(2, 3).
		WithSupersetParent("abc").
		WithAltParent("def")

	if w.Notes == nil || *w.Notes != "slow negatives" {
		t.Error("expected Notes to be set")
	}
	if w.Day != 2 || w.DayOrder != 3 {
		t.Errorf("Day/DayOrder = %d/%d, want 2/3", w.Day, w.DayOrder)
	}
	if w.SupersetParentID == nil || *w.SupersetParentID != "abc" {
		t.Error("expected SupersetParentID to be abc")
	}
	if w.AltParentID == nil || *w.AltParentID != "def" {
		t.Error("expected AltParentID to be def")
	}
}

func TestWorkoutValidate(t *testing.T) {
	tests := []struct {
		name     string
		workout  Workout
		wantErrs int
	}{
		{"valid", Workout{Name: "Row", Day: 1}, 0},
		{"zero values allowed", Workout{Name: "Plank", Weight: 0, Sets: 0, Reps: 0, Day: 3}, 0},
		{"blank name", Workout{Name: "  ", Day: 1}, 1},
		{"negative weight", Workout{Name: "Row", Weight: -5, Day: 1}, 1},
		{"day zero", Workout{Name: "Row", Day: 0}, 1},
		{"everything wrong", Workout{Name: "", Weight: -1, Sets: -1, Reps: -1, Day: 0, DayOrder: -1}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.workout.Validate()
			got := len(multierr.Errors(err))
			if got != tt.wantErrs {
				t.Errorf("Validate() returned %d errors (%v), want %d", got, err, tt.wantErrs)
			}
		})
	}
}

func TestWorkoutValidateMessage(t *testing.T) {
	err := (&Workout{Name: "Row", Day: 0}).Validate()
	if err == nil || !strings.Contains(err.Error(), "day must be at least 1") {
		t.Errorf("Validate() = %v, want day error", err)
	}
}

func TestRelationshipHelpers(t *testing.T) {
	parent := &Workout{ID: "p", Name: "Bench", Day: 1}
	superset := (&Workout{ID: "s", Name: "Fly", Day: 1}).WithSupersetParent("p")
	alt := (&Workout{ID: "a", Name: "DB Bench", Day: 1}).WithAltParent("p")
	orphan := (&Workout{ID: "o", Name: "Dip", Day: 1}).WithAltParent("missing")
	all := []*Workout{parent, superset, alt, orphan}

	if !SupersetExists(superset, all) {
		t.Error("SupersetExists(superset) = false, want true")
	}
	if SupersetExists(parent, all) {
		t.Error("SupersetExists(parent) = true, want false")
	}
	if !AltExists(alt, all) {
		t.Error("AltExists(alt) = false, want true")
	}
	if AltExists(orphan, all) {
		t.Error("AltExists(orphan) = true, want false")
	}
	if !IsSuperset(parent, all) {
		t.Error("IsSuperset(parent) = false, want true")
	}
	if !IsAlternative(parent, all) {
		t.Error("IsAlternative(parent) = false, want true")
	}
	if IsAlternative(superset, all) {
		t.Error("IsAlternative(superset) = true, want false")
	}
}
