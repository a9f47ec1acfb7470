// ABOUTME: Day-cycle state for the workout routine.
// ABOUTME: Tracks the current day slot, completes days, and compacts slot numbers.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/magni/internal/kv"
	"github.com/harperreed/magni/internal/models"
)

// Completion describes the outcome of CompleteDay.
type Completion struct {
	Day      int
	NextDay  int
	Recorded []*models.WorkoutHistory
}

// CurrentDay returns the active day slot. It is 1 when unset or unreadable.
func (d *DB) CurrentDay() (int, error) {
	data, err := d.store.Get(CurrentDayKey)
	if errors.Is(err, kv.ErrNotFound) {
		return 1, nil
	}
	if err != nil {
		return 1, fmt.Errorf("read current day: %w", err)
	}

	var day int
	if err := json.Unmarshal(data, &day); err != nil || day < 1 {
		return 1, nil
	}
	return day, nil
}

// SetCurrentDay stores day as the active slot. Writing the value already
// stored is a no-op.
func (d *DB) SetCurrentDay(day int) error {
	if day < 1 {
		return fmt.Errorf("day must be at least 1, got %d", day)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setCurrentDayLocked(day)
}

func (d *DB) setCurrentDayLocked(day int) error {
	current, err := d.CurrentDay()
	if err != nil {
		return err
	}
	if current == day {
		return nil
	}
	return saveJSON(d.store, CurrentDayKey, day)
}

// CompleteDay records every workout of the current day as history dated now
// and advances to the next slot, wrapping to 1 after the last one.
func (d *DB) CompleteDay(now time.Time) (*Completion, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, err := d.CurrentDay()
	if err != nil {
		return nil, err
	}
	workouts, err := d.loadWorkouts()
	if err != nil {
		return nil, err
	}

	var today []*models.Workout
	for _, w := range workouts {
		if w.Day == current {
			today = append(today, w)
		}
	}
	sortWorkouts(today)

	recorded := make([]*models.WorkoutHistory, 0, len(today))
	for _, w := range today {
		recorded = append(recorded, models.HistoryFromWorkout(w, now))
	}
	if len(recorded) > 0 {
		if err := d.prependHistoryLocked(recorded); err != nil {
			return nil, fmt.Errorf("complete day: %w", err)
		}
	}

	next := 1
	if current < countDays(workouts) {
		next = current + 1
	}
	if err := d.setCurrentDayLocked(next); err != nil {
		return nil, fmt.Errorf("complete day: %w", err)
	}

	return &Completion{Day: current, NextDay: next, Recorded: recorded}, nil
}

// CompactDays renumbers the day slots in use to 1..N, keeping their order.
// The current day follows its slot.
func (d *DB) CompactDays() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	workouts, err := d.loadWorkouts()
	if err != nil {
		return err
	}
	if len(workouts) == 0 {
		return nil
	}

	seen := make(map[int]struct{})
	var days []int
	for _, w := range workouts {
		if _, ok := seen[w.Day]; !ok {
			seen[w.Day] = struct{}{}
			days = append(days, w.Day)
		}
	}
	sort.Ints(days)

	mapping := make(map[int]int, len(days))
	sequential := true
	for i, day := range days {
		mapping[day] = i + 1
		if day != i+1 {
			sequential = false
		}
	}
	if sequential {
		return nil
	}

	for _, w := range workouts {
		w.Day = mapping[w.Day]
	}

	current, err := d.CurrentDay()
	if err != nil {
		return err
	}
	if moved, ok := mapping[current]; ok && moved != current {
		if err := saveJSON(d.store, CurrentDayKey, moved); err != nil {
			return fmt.Errorf("compact days: %w", err)
		}
	}

	if err := saveJSON(d.store, WorkoutsKey, workouts); err != nil {
		return fmt.Errorf("compact days: %w", err)
	}
	return nil
}
