// ABOUTME: Backup export and import for magni data.
// ABOUTME: Supports JSON (restorable), YAML, and Markdown formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/magni/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full backup format.
type ExportData struct {
	Version    string                   `json:"version" yaml:"version"`
	ExportedAt time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool       string                   `json:"tool" yaml:"tool"`
	CurrentDay int                      `json:"current_day" yaml:"current_day"`
	Workouts   []*models.Workout        `json:"workouts" yaml:"workouts"`
	Weights    []*models.WeightSample   `json:"weights" yaml:"weights"`
	History    []*models.WorkoutHistory `json:"history" yaml:"history"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	workouts, err := d.ListWorkouts(nil)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	weights, err := d.ListWeights(0)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}
	history, err := d.ListHistory("")
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	current, err := d.CurrentDay()
	if err != nil {
		return nil, fmt.Errorf("current day: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "magni",
		CurrentDay: current,
		Workouts:   workouts,
		Weights:    weights,
		History:    history,
	}, nil
}

// ImportData adds the records of a backup. Records whose ID already exists
// cause an error, as with any other create.
func (d *DB) ImportData(data *ExportData) error {
	for _, w := range data.Workouts {
		if err := d.CreateWorkout(w); err != nil {
			return fmt.Errorf("import workout: %w", err)
		}
	}
	for i := len(data.Weights) - 1; i >= 0; i-- {
		s := data.Weights[i]
		if err := d.CreateWeight(s); err != nil {
			return fmt.Errorf("import weight: %w", err)
		}
	}
	if len(data.History) > 0 {
		if err := d.CreateBulkHistory(data.History); err != nil {
			return fmt.Errorf("import history: %w", err)
		}
	}
	if data.CurrentDay > 0 {
		if err := d.SetCurrentDay(data.CurrentDay); err != nil {
			return fmt.Errorf("import current day: %w", err)
		}
	}
	return nil
}

// ExportJSON exports all data as JSON.
func ExportJSON(r Repository) ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ImportJSON imports data from JSON bytes.
func ImportJSON(r Repository, data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return r.ImportData(&exportData)
}

// ExportYAML exports all data as YAML with the routine grouped by day.
func ExportYAML(r Repository) ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string                    `yaml:"version"`
		ExportedAt string                    `yaml:"exported_at"`
		Tool       string                    `yaml:"tool"`
		CurrentDay int                       `yaml:"current_day"`
		Routine    map[int][]*models.Workout `yaml:"routine"`
		Weights    []yamlWeight              `yaml:"weights"`
		History    []*models.WorkoutHistory  `yaml:"history"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		CurrentDay: data.CurrentDay,
		Routine:    make(map[int][]*models.Workout),
		Weights:    make([]yamlWeight, 0, len(data.Weights)),
		History:    data.History,
	}

	for _, w := range data.Workouts {
		yamlData.Routine[w.Day] = append(yamlData.Routine[w.Day], w)
	}
	for _, s := range data.Weights {
		yamlData.Weights = append(yamlData.Weights, yamlWeight{
			ID:         shortID(s.ID),
			Value:      s.Value,
			RecordedAt: s.Timestamp.Format(time.RFC3339),
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlWeight struct {
	ID         string  `yaml:"id"`
	Value      float64 `yaml:"value"`
	RecordedAt string  `yaml:"recorded_at"`
}

// ExportMarkdown renders the routine, weights, and history as Markdown
// tables. since, when set, limits weights and history to that date onward.
func ExportMarkdown(r Repository, since *time.Time) (string, error) {
	data, err := r.GetAllData()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Magni Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if len(data.Workouts) > 0 {
		sb.WriteString(fmt.Sprintf("## Routine (current day: %d)\n\n", data.CurrentDay))
		sb.WriteString("| Day | # | Exercise | Weight | Sets x Reps | Notes |\n")
		sb.WriteString("|-----|---|----------|--------|-------------|-------|\n")
		for _, w := range data.Workouts {
			sb.WriteString(fmt.Sprintf("| %d | %d | %s | %g | %dx%d | %s |\n",
				w.Day, w.DayOrder, markdownCell(w.Name), w.Weight, w.Sets, w.Reps, markdownCell(deref(w.Notes))))
		}
		sb.WriteString("\n")
	}

	var weights []*models.WeightSample
	for _, s := range data.Weights {
		if since == nil || !s.Timestamp.Before(*since) {
			weights = append(weights, s)
		}
	}
	if len(weights) > 0 {
		sb.WriteString("## Weight\n\n")
		sb.WriteString("| Date | Weight |\n")
		sb.WriteString("|------|--------|\n")
		for _, s := range weights {
			sb.WriteString(fmt.Sprintf("| %s | %.2f |\n", s.Timestamp.Format("2006-01-02 15:04"), s.Value))
		}
		sb.WriteString("\n")
	}

	var history []*models.WorkoutHistory
	for _, h := range data.History {
		if since == nil || h.Date >= since.Format(models.HistoryDateLayout) {
			history = append(history, h)
		}
	}
	if len(history) > 0 {
		sb.WriteString("## History\n\n")
		sb.WriteString("| Date | Exercise | Weight | Sets x Reps |\n")
		sb.WriteString("|------|----------|--------|-------------|\n")
		for _, h := range history {
			sb.WriteString(fmt.Sprintf("| %s | %s | %g | %dx%d |\n",
				h.Date, markdownCell(h.Name), h.Weight, h.Sets, h.Reps))
		}
	}

	return sb.String(), nil
}

func markdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
