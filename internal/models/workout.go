// ABOUTME: Workout model for day-cycled training routines.
// ABOUTME: Workouts belong to a day slot and may point at a superset or alternative parent.
package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// Workout is one exercise entry in a routine. Day is the 1-based slot of the
// training cycle and DayOrder its position within that slot.
type Workout struct {
	ID               string  `json:"id" yaml:"id"`
	Name             string  `json:"name" yaml:"name"`
	Weight           float64 `json:"weight" yaml:"weight"`
	Sets             int     `json:"sets" yaml:"sets"`
	Reps             int     `json:"reps" yaml:"reps"`
	Notes            *string `json:"notes,omitempty" yaml:"notes,omitempty"`
	SupersetParentID *string `json:"supersetParentId,omitempty" yaml:"superset_parent_id,omitempty"`
	AltParentID      *string `json:"altParentId,omitempty" yaml:"alt_parent_id,omitempty"`
	Day              int     `json:"day" yaml:"day"`
	DayOrder         int     `json:"dayOrder" yaml:"day_order"`
}

// NewWorkout creates a Workout with a generated ID on day 1.
func NewWorkout(name string, weight float64, sets, reps int) *Workout {
	return &Workout{
		ID:     uuid.NewString(),
		Name:   name,
		Weight: weight,
		Sets:   sets,
		Reps:   reps,
		Day:    1,
	}
}

// WithNotes sets notes on the workout.
func (w *Workout) WithNotes(notes string) *Workout {
	w.Notes = &notes
	return w
}

// WithDay places the workout at the given slot and position.
func (w *Workout) WithDay(day, order int) *Workout {
	w.Day = day
	w.DayOrder = order
	return w
}

// WithSupersetParent links the workout as a superset of parentID.
func (w *Workout) WithSupersetParent(parentID string) *Workout {
	w.SupersetParentID = &parentID
	return w
}

// WithAltParent links the workout as an alternative to parentID.
func (w *Workout) WithAltParent(parentID string) *Workout {
	w.AltParentID = &parentID
	return w
}

// Validate reports every field problem at once.
func (w *Workout) Validate() error {
	var err error
	if strings.TrimSpace(w.Name) == "" {
		err = multierr.Append(err, errors.New("name is required"))
	}
	if w.Weight < 0 {
		err = multierr.Append(err, fmt.Errorf("weight must not be negative, got %v", w.Weight))
	}
	if w.Sets < 0 {
		err = multierr.Append(err, fmt.Errorf("sets must not be negative, got %d", w.Sets))
	}
	if w.Reps < 0 {
		err = multierr.Append(err, fmt.Errorf("reps must not be negative, got %d", w.Reps))
	}
	if w.Day < 1 {
		err = multierr.Append(err, fmt.Errorf("day must be at least 1, got %d", w.Day))
	}
	if w.DayOrder < 0 {
		err = multierr.Append(err, fmt.Errorf("day order must not be negative, got %d", w.DayOrder))
	}
	return err
}

// SupersetExists reports whether w's superset parent is among workouts.
func SupersetExists(w *Workout, workouts []*Workout) bool {
	return w.SupersetParentID != nil && containsID(workouts, *w.SupersetParentID)
}

// AltExists reports whether w's alternative parent is among workouts.
func AltExists(w *Workout, workouts []*Workout) bool {
	return w.AltParentID != nil && containsID(workouts, *w.AltParentID)
}

// IsSuperset reports whether any of workouts is a superset of w.
func IsSuperset(w *Workout, workouts []*Workout) bool {
	for _, other := range workouts {
		if other.SupersetParentID != nil && *other.SupersetParentID == w.ID {
			return true
		}
	}
	return false
}

// IsAlternative reports whether any of workouts is an alternative to w.
func IsAlternative(w *Workout, workouts []*Workout) bool {
	for _, other := range workouts {
		if other.AltParentID != nil && *other.AltParentID == w.ID {
			return true
		}
	}
	return false
}

func containsID(workouts []*Workout, id string) bool {
	for _, w := range workouts {
		if w.ID == id {
			return true
		}
	}
	return false
}
