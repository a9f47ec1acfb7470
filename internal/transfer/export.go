// ABOUTME: Serializes the workout routine to CSV for sharing or backup.
// ABOUTME: Output round-trips through ParseWorkouts.
package transfer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/harperreed/magni/internal/csvio"
	"github.com/harperreed/magni/internal/models"
)

// CSVMediaType is the MIME type of exported files.
const CSVMediaType = "text/csv"

// WorkoutLister is the slice of the repository the exporter needs.
type WorkoutLister interface {
	ListWorkouts(day *int) ([]*models.Workout, error)
}

// WorkoutsToCSV renders workouts under the Columns header. Absent optional
// fields become empty cells.
func WorkoutsToCSV(workouts []*models.Workout) string {
	rows := make([][]string, 0, len(workouts)+1)
	rows = append(rows, Columns)
	for _, w := range workouts {
		rows = append(rows, []string{
			w.ID,
			w.Name,
			strconv.FormatFloat(w.Weight, 'f', -1, 64),
			strconv.Itoa(w.Sets),
			strconv.Itoa(w.Reps),
			deref(w.Notes),
			deref(w.SupersetParentID),
			deref(w.AltParentID),
			strconv.Itoa(w.Day),
			strconv.Itoa(w.DayOrder),
		})
	}
	return csvio.Encode(rows)
}

// ExportWorkouts renders every stored workout as CSV.
func ExportWorkouts(store WorkoutLister) (string, error) {
	workouts, err := store.ListWorkouts(nil)
	if err != nil {
		return "", fmt.Errorf("list workouts: %w", err)
	}
	return WorkoutsToCSV(workouts), nil
}

// ExportFilename suggests a file name for an export made at t.
func ExportFilename(t time.Time) string {
	return "workouts-" + t.Format("2006-01-02") + ".csv"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
