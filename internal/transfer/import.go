// ABOUTME: Replaces the stored routine with workouts read from CSV.
// ABOUTME: Reports invalid rows and dropped parent links through the logger.
package transfer

import (
	"fmt"
	"sort"

	"github.com/harperreed/magni/internal/logging"
	"github.com/harperreed/magni/internal/models"
	"github.com/sirupsen/logrus"
)

// WorkoutStore is the slice of the repository the importer needs.
type WorkoutStore interface {
	ListWorkouts(day *int) ([]*models.Workout, error)
	ReplaceWorkouts(workouts []*models.Workout) error
}

// InvalidRow is an imported workout with fields that fail validation. It is
// stored anyway; the report lets the caller fix it afterwards.
type InvalidRow struct {
	Row    int
	Name   string
	Reason string
}

// ImportResult summarizes an import.
type ImportResult struct {
	Imported []*models.Workout
	Invalid  []InvalidRow
	Dropped  []DroppedReference
}

// Importer loads workout CSV files into a WorkoutStore.
type Importer struct {
	store WorkoutStore
	log   logrus.FieldLogger
}

// NewImporter returns an Importer writing to store. A nil log discards messages.
func NewImporter(store WorkoutStore, log logrus.FieldLogger) *Importer {
	if log == nil {
		log = logging.Discard()
	}
	return &Importer{store: store, log: log}
}

// HasExistingWorkouts reports whether an import would overwrite anything.
func (im *Importer) HasExistingWorkouts() (bool, error) {
	workouts, err := im.store.ListWorkouts(nil)
	if err != nil {
		return false, fmt.Errorf("list workouts: %w", err)
	}
	return len(workouts) > 0, nil
}

// Import parses text and replaces every stored workout with the result,
// ordered by day then dayOrder. Every parsed row is stored; rows with invalid
// fields are reported, not dropped. The replacement is a single write: when
// it fails the previous routine is untouched.
func (im *Importer) Import(text string) (*ImportResult, error) {
	parsed, rows, dropped := parseRows(text)
	result := &ImportResult{Dropped: dropped}

	for i, w := range parsed {
		if err := w.Validate(); err != nil {
			result.Invalid = append(result.Invalid, InvalidRow{Row: rows[i], Name: w.Name, Reason: err.Error()})
			im.log.WithFields(logrus.Fields{
				"row":    rows[i],
				"name":   w.Name,
				"reason": err.Error(),
			}).Warn("imported workout row with invalid fields")
		}
	}

	for _, d := range dropped {
		im.log.WithFields(logrus.Fields{
			"row":     d.Row,
			"name":    d.Name,
			"field":   d.Field,
			"missing": d.MissingID,
		}).Warn("dropping reference to workout outside the import")
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		if parsed[i].Day != parsed[j].Day {
			return parsed[i].Day < parsed[j].Day
		}
		return parsed[i].DayOrder < parsed[j].DayOrder
	})

	if err := im.store.ReplaceWorkouts(parsed); err != nil {
		return nil, fmt.Errorf("replace workouts: %w", err)
	}

	im.log.WithField("count", len(parsed)).Info("imported workouts")
	result.Imported = parsed
	return result, nil
}
