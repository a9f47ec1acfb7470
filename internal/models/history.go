// ABOUTME: WorkoutHistory model recording a workout performed on a date.
// ABOUTME: History entries snapshot the workout fields at completion time.
package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryDateLayout is the calendar date format history entries are keyed by.
const HistoryDateLayout = "2006-01-02"

// WorkoutHistory is a completed workout. WorkoutID points back at the routine
// entry it was copied from.
type WorkoutHistory struct {
	Workout   `yaml:",inline"`
	WorkoutID string `json:"workoutId" yaml:"workout_id"`
	Date      string `json:"date" yaml:"date"`
}

// HistoryFromWorkout snapshots w as performed on date.
func HistoryFromWorkout(w *Workout, date time.Time) *WorkoutHistory {
	h := &WorkoutHistory{
		Workout:   *w,
		WorkoutID: w.ID,
		Date:      date.Format(HistoryDateLayout),
	}
	h.ID = uuid.NewString()
	return h
}
