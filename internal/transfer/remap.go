// ABOUTME: Rebuilds workout records from CSV with fresh identifiers.
// ABOUTME: Parent references are rewritten to the new IDs of the same batch.
package transfer

import (
	"github.com/google/uuid"
	"github.com/harperreed/magni/internal/csvio"
	"github.com/harperreed/magni/internal/models"
)

// Columns is the CSV header written on export and understood on import.
var Columns = []string{
	"id", "name", "weight", "sets", "reps", "notes",
	"supersetParentId", "altParentId", "day", "dayOrder",
}

// Reference fields that can dangle.
const (
	SupersetField = "supersetParentId"
	AltField      = "altParentId"
)

// DroppedReference records a parent reference that named no row of the
// imported file. The relationship is removed from the imported workout.
type DroppedReference struct {
	Row       int    // 1-based data row
	WorkoutID string // new ID of the workout that lost the link
	Name      string
	Field     string
	MissingID string
}

// ParseWorkouts turns CSV text into workouts in file order. Every row gets a
// new ID; references to IDs of other rows are rewritten to match and
// references to anything else are dropped and reported.
//
// Cells are looked up by header name, so column order does not matter and
// missing columns read as empty. Numbers parse leniently: weight, sets, reps
// and dayOrder default to 0 and day defaults to 1. Rows that are entirely
// blank are skipped.
func ParseWorkouts(text string) ([]*models.Workout, []DroppedReference) {
	workouts, _, dropped := parseRows(text)
	return workouts, dropped
}

// parseRows is ParseWorkouts plus the 1-based data row of each workout.
func parseRows(text string) ([]*models.Workout, []int, []DroppedReference) {
	doc := csvio.Parse(text)

	workouts := make([]*models.Workout, 0, doc.Len())
	rows := make([]int, 0, doc.Len())
	idMap := make(map[string]string, doc.Len())

	for i := 0; i < doc.Len(); i++ {
		if doc.Blank(i) {
			continue
		}

		w := &models.Workout{
			ID:       uuid.NewString(),
			Name:     doc.Value(i, "name"),
			Weight:   parseFloatOr(doc.Value(i, "weight"), 0),
			Sets:     parseIntOr(doc.Value(i, "sets"), 0),
			Reps:     parseIntOr(doc.Value(i, "reps"), 0),
			Day:      parseIntOr(doc.Value(i, "day"), 1),
			DayOrder: parseIntOr(doc.Value(i, "dayOrder"), 0),
		}
		if w.Day < 1 {
			w.Day = 1
		}
		w.Notes = optional(doc.Value(i, "notes"))
		w.SupersetParentID = optional(doc.Value(i, SupersetField))
		w.AltParentID = optional(doc.Value(i, AltField))

		idMap[doc.Value(i, "id")] = w.ID
		workouts = append(workouts, w)
		rows = append(rows, i+1)
	}

	var dropped []DroppedReference
	remap := func(i int, field string, ref **string) {
		if *ref == nil {
			return
		}
		if newID, ok := idMap[**ref]; ok {
			*ref = &newID
			return
		}
		w := workouts[i]
		dropped = append(dropped, DroppedReference{
			Row:       rows[i],
			WorkoutID: w.ID,
			Name:      w.Name,
			Field:     field,
			MissingID: **ref,
		})
		*ref = nil
	}

	for i, w := range workouts {
		remap(i, SupersetField, &w.SupersetParentID)
		remap(i, AltField, &w.AltParentID)
	}

	return workouts, rows, dropped
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
