// ABOUTME: Repository interface for magni data storage.
// ABOUTME: Defines the contract for workouts, weights, history, and day cycling.
package storage

import (
	"time"

	"github.com/harperreed/magni/internal/models"
)

// Repository defines the storage interface for magni data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Workout routine
	ListWorkouts(day *int) ([]*models.Workout, error)
	GetWorkout(idOrPrefix string) (*models.Workout, error)
	CreateWorkout(w *models.Workout) error
	UpdateWorkout(w *models.Workout) error
	DeleteWorkout(idOrPrefix string) error
	ReorderWorkouts(day int, ids []string) error
	ReplaceWorkouts(workouts []*models.Workout) error
	UniqueDays() (int, error)
	CompactDays() error

	// Day cycling
	CurrentDay() (int, error)
	SetCurrentDay(day int) error
	CompleteDay(now time.Time) (*Completion, error)

	// Weight operations
	CreateWeight(s *models.WeightSample) error
	ListWeights(limit int) ([]*models.WeightSample, error)
	DeleteWeight(idOrPrefix string) error
	DailyAverages(loc *time.Location) ([]models.DailyAverageRecord, error)

	// Workout history
	CreateHistory(h *models.WorkoutHistory) error
	CreateBulkHistory(entries []*models.WorkoutHistory) error
	ListHistory(date string) ([]*models.WorkoutHistory, error)
	DeleteHistory(idOrPrefix string) error
	ClearHistory() error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
