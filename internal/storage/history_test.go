// ABOUTME: Tests for workout history storage.
// ABOUTME: Covers bulk inserts, date filters, ordering, and clearing.
package storage

import (
	"testing"
	"time"

	"github.com/harperreed/magni/internal/models"
)

func historyOn(name, date string) *models.WorkoutHistory {
	d, _ := time.Parse(models.HistoryDateLayout, date)
	return models.HistoryFromWorkout(models.NewWorkout(name, 50, 3, 10), d)
}

func TestHistoryCreateAndList(t *testing.T) {
	db := setupTestDB(t)

	if err := db.CreateHistory(historyOn("Old", "2025-01-01")); err != nil {
		t.Fatalf("CreateHistory failed: %v", err)
	}
	if err := db.CreateBulkHistory([]*models.WorkoutHistory{
		historyOn("Squat", "2025-01-03"),
		historyOn("Bench", "2025-01-03"),
	}); err != nil {
		t.Fatalf("CreateBulkHistory failed: %v", err)
	}
	if err := db.CreateHistory(historyOn("Mid", "2025-01-02")); err != nil {
		t.Fatalf("CreateHistory failed: %v", err)
	}

	all, err := db.ListHistory("")
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	wantDates := []string{"2025-01-03", "2025-01-03", "2025-01-02", "2025-01-01"}
	if len(all) != len(wantDates) {
		t.Fatalf("Expected %d entries, got %d", len(wantDates), len(all))
	}
	for i, want := range wantDates {
		if all[i].Date != want {
			t.Errorf("entry %d date = %s, want %s", i, all[i].Date, want)
		}
	}

	onDay, _ := db.ListHistory("2025-01-03")
	if len(onDay) != 2 || onDay[0].Name != "Squat" {
		t.Errorf("ListHistory(2025-01-03) = %d entries, want Squat first of 2", len(onDay))
	}
}

func TestDeleteAndClearHistory(t *testing.T) {
	db := setupTestDB(t)
	h := historyOn("Squat", "2025-01-03")
	_ = db.CreateBulkHistory([]*models.WorkoutHistory{h, historyOn("Bench", "2025-01-03")})

	if err := db.DeleteHistory(h.ID); err != nil {
		t.Fatalf("DeleteHistory failed: %v", err)
	}
	remaining, _ := db.ListHistory("")
	if len(remaining) != 1 || remaining[0].Name != "Bench" {
		t.Errorf("Expected only Bench to remain, got %d entries", len(remaining))
	}

	if err := db.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory failed: %v", err)
	}
	remaining, _ = db.ListHistory("")
	if len(remaining) != 0 {
		t.Errorf("Expected empty history, got %d", len(remaining))
	}
}
