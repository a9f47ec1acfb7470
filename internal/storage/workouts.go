// ABOUTME: Workout routine operations for the key-value repository.
// ABOUTME: Listing, CRUD, reordering within a day, and bulk replacement.
package storage

import (
	"fmt"
	"sort"

	"github.com/harperreed/magni/internal/models"
)

func workoutID(w *models.Workout) string { return w.ID }

// sortWorkouts orders by day slot, then position within the day.
func sortWorkouts(workouts []*models.Workout) {
	sort.SliceStable(workouts, func(i, j int) bool {
		if workouts[i].Day != workouts[j].Day {
			return workouts[i].Day < workouts[j].Day
		}
		return workouts[i].DayOrder < workouts[j].DayOrder
	})
}

func (d *DB) loadWorkouts() ([]*models.Workout, error) {
	return loadList[models.Workout](d.store, WorkoutsKey)
}

// ListWorkouts returns the routine ordered by day then dayOrder. When day is
// non-nil only that day's workouts are returned.
func (d *DB) ListWorkouts(day *int) ([]*models.Workout, error) {
	workouts, err := d.loadWorkouts()
	if err != nil {
		return nil, err
	}

	if day != nil {
		filtered := workouts[:0]
		for _, w := range workouts {
			if w.Day == *day {
				filtered = append(filtered, w)
			}
		}
		workouts = filtered
	}

	sortWorkouts(workouts)
	return workouts, nil
}

// GetWorkout retrieves a workout by ID or ID prefix.
func (d *DB) GetWorkout(idOrPrefix string) (*models.Workout, error) {
	workouts, err := d.loadWorkouts()
	if err != nil {
		return nil, err
	}
	i, err := resolveIndex(workouts, workoutID, idOrPrefix)
	if err != nil {
		return nil, err
	}
	return workouts[i], nil
}

// CreateWorkout validates and stores a new workout.
func (d *DB) CreateWorkout(w *models.Workout) error {
	if err := w.Validate(); err != nil {
		return fmt.Errorf("invalid workout: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	workouts, err := d.loadWorkouts()
	if err != nil {
		return err
	}
	for _, existing := range workouts {
		if existing.ID == w.ID {
			return fmt.Errorf("create workout: duplicate id %s", w.ID)
		}
	}

	workouts = append(workouts, w)
	if err := saveJSON(d.store, WorkoutsKey, workouts); err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	return nil
}

// UpdateWorkout replaces the stored workout with the same ID.
func (d *DB) UpdateWorkout(w *models.Workout) error {
	if err := w.Validate(); err != nil {
		return fmt.Errorf("invalid workout: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	workouts, err := d.loadWorkouts()
	if err != nil {
		return err
	}

	found := false
	for i, existing := range workouts {
		if existing.ID == w.ID {
			workouts[i] = w
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("update workout: %w: %s", ErrNotFound, w.ID)
	}

	if err := saveJSON(d.store, WorkoutsKey, workouts); err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	return nil
}

// DeleteWorkout removes a workout by ID or ID prefix. Workouts that pointed
// at it keep their reference; readers treat it as dangling.
func (d *DB) DeleteWorkout(idOrPrefix string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	workouts, err := d.loadWorkouts()
	if err != nil {
		return err
	}
	i, err := resolveIndex(workouts, workoutID, idOrPrefix)
	if err != nil {
		return err
	}

	workouts = append(workouts[:i], workouts[i+1:]...)
	if err := saveJSON(d.store, WorkoutsKey, workouts); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

// ReorderWorkouts sets each listed workout's dayOrder to its index in ids.
// Only workouts on day are touched; unlisted ones keep their order.
func (d *DB) ReorderWorkouts(day int, ids []string) error {
	position := make(map[string]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	workouts, err := d.loadWorkouts()
	if err != nil {
		return err
	}
	for _, w := range workouts {
		if w.Day != day {
			continue
		}
		if p, ok := position[w.ID]; ok {
			w.DayOrder = p
		}
	}

	if err := saveJSON(d.store, WorkoutsKey, workouts); err != nil {
		return fmt.Errorf("reorder workouts: %w", err)
	}
	return nil
}

// ReplaceWorkouts swaps the whole routine for workouts in one write, so a
// failure leaves the previous routine intact. Workouts are stored as given:
// an import keeps every row and reports invalid fields itself.
func (d *DB) ReplaceWorkouts(workouts []*models.Workout) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if workouts == nil {
		workouts = []*models.Workout{}
	}
	if err := saveJSON(d.store, WorkoutsKey, workouts); err != nil {
		return fmt.Errorf("replace workouts: %w", err)
	}
	return nil
}

// UniqueDays counts the distinct day slots in the routine.
func (d *DB) UniqueDays() (int, error) {
	workouts, err := d.loadWorkouts()
	if err != nil {
		return 0, err
	}
	return countDays(workouts), nil
}

func countDays(workouts []*models.Workout) int {
	days := make(map[int]struct{})
	for _, w := range workouts {
		days[w.Day] = struct{}{}
	}
	return len(days)
}

// NextDayOrder returns the position after the last workout on day.
func NextDayOrder(r Repository, day int) (int, error) {
	workouts, err := r.ListWorkouts(&day)
	if err != nil {
		return 0, err
	}
	next := 0
	for _, w := range workouts {
		if w.DayOrder >= next {
			next = w.DayOrder + 1
		}
	}
	return next, nil
}
