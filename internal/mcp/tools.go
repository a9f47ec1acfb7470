// ABOUTME: MCP tool implementations for weights, workouts, and CSV transfer.
// ABOUTME: Handlers call the repository and return structured results.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/magni/internal/models"
	"github.com/harperreed/magni/internal/storage"
	"github.com/harperreed/magni/internal/transfer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_weight",
		Description: "Record a body weight reading",
	}, s.handleAddWeight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_weights",
		Description: "List recent weight readings, newest first",
	}, s.handleListWeights)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_weight",
		Description: "Delete a weight reading by ID or ID prefix",
	}, s.handleDeleteWeight)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Daily min/max/avg, rolling averages, trend changes, and chart bounds for body weight",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_workout",
		Description: "Add an exercise to the routine",
	}, s.handleAddWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List the routine, optionally for one day",
	}, s.handleListWorkouts)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Remove an exercise from the routine by ID or ID prefix",
	}, s.handleDeleteWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_day",
		Description: "Record today's workouts in history and advance to the next day",
	}, s.handleCompleteDay)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "export_workouts_csv",
		Description: "Export the routine as CSV",
	}, s.handleExportCSV)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "import_workouts_csv",
		Description: "Replace the routine with workouts from CSV. Requires confirm=true when a routine exists",
	}, s.handleImportCSV)
}

// Tool input/output types

type addWeightInput struct {
	Weight     float64 `json:"weight" jsonschema:"Body weight reading"`
	RecordedAt string  `json:"recorded_at,omitempty" jsonschema:"Timestamp (RFC 3339 or YYYY-MM-DD HH:MM), defaults to now"`
}

type weightOutput struct {
	ID        string  `json:"id"`
	Weight    float64 `json:"weight"`
	Timestamp string  `json:"timestamp"`
	Message   string  `json:"message"`
}

type listWeightsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type listWeightsOutput struct {
	Weights []*models.WeightSample `json:"weights"`
	Count   int                    `json:"count"`
}

type idInput struct {
	ID string `json:"id" jsonschema:"ID or unique ID prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type statsInput struct{}

type addWorkoutInput struct {
	Name       string  `json:"name" jsonschema:"Exercise name"`
	Weight     float64 `json:"weight,omitempty" jsonschema:"Working weight"`
	Sets       int     `json:"sets,omitempty" jsonschema:"Number of sets"`
	Reps       int     `json:"reps,omitempty" jsonschema:"Reps per set"`
	Day        int     `json:"day,omitempty" jsonschema:"Day slot in the routine (default 1)"`
	Notes      string  `json:"notes,omitempty" jsonschema:"Optional notes"`
	SupersetOf string  `json:"superset_of,omitempty" jsonschema:"ID of the workout this is a superset of"`
	AltOf      string  `json:"alt_of,omitempty" jsonschema:"ID of the workout this is an alternative to"`
}

type workoutOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Day      int    `json:"day"`
	DayOrder int    `json:"dayOrder"`
	Message  string `json:"message"`
}

type listWorkoutsInput struct {
	Day int `json:"day,omitempty" jsonschema:"Only this day slot; 0 lists the whole routine"`
}

type listWorkoutsOutput struct {
	Workouts   []*models.Workout `json:"workouts"`
	CurrentDay int               `json:"currentDay"`
	TotalDays  int               `json:"totalDays"`
}

type completeDayInput struct{}

type completeDayOutput struct {
	Day      int    `json:"day"`
	NextDay  int    `json:"nextDay"`
	Recorded int    `json:"recorded"`
	Message  string `json:"message"`
}

type exportCSVInput struct{}

type exportCSVOutput struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	CSV      string `json:"csv"`
}

type importCSVInput struct {
	CSV     string `json:"csv" jsonschema:"CSV text with an id,name,weight,sets,reps,notes,supersetParentId,altParentId,day,dayOrder header"`
	Confirm bool   `json:"confirm,omitempty" jsonschema:"Must be true to overwrite an existing routine"`
}

type importCSVOutput struct {
	Imported int      `json:"imported"`
	Invalid  int      `json:"invalid"`
	Warnings []string `json:"warnings,omitempty"`
	Message  string   `json:"message"`
}

// Tool handlers

func (s *Server) handleAddWeight(ctx context.Context, req *mcp.CallToolRequest, input addWeightInput) (*mcp.CallToolResult, weightOutput, error) {
	sample := models.NewWeightSample(input.Weight)

	if input.RecordedAt != "" {
		t, err := parseTimestamp(input.RecordedAt, s.loc)
		if err != nil {
			return nil, weightOutput{}, err
		}
		sample.WithTimestamp(t)
	}

	if err := s.repo.CreateWeight(sample); err != nil {
		return nil, weightOutput{}, fmt.Errorf("failed to add weight: %w", err)
	}

	return nil, weightOutput{
		ID:        sample.ID[:8],
		Weight:    sample.Value,
		Timestamp: sample.Timestamp.Format(time.RFC3339),
		Message:   fmt.Sprintf("Added weight %.1f (ID: %s)", sample.Value, sample.ID[:8]),
	}, nil
}

func (s *Server) handleListWeights(ctx context.Context, req *mcp.CallToolRequest, input listWeightsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	samples, err := s.repo.ListWeights(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list weights: %w", err)
	}

	return nil, listWeightsOutput{Weights: samples, Count: len(samples)}, nil
}

func (s *Server) handleDeleteWeight(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteWeight(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete weight: %w", err)
	}

	return nil, simpleOutput{Message: fmt.Sprintf("Deleted weight: %s", input.ID)}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input statsInput) (*mcp.CallToolResult, any, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return nil, snap, nil
}

func (s *Server) handleAddWorkout(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	day := input.Day
	if day == 0 {
		day = 1
	}

	order, err := storage.NextDayOrder(s.repo, day)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to add workout: %w", err)
	}

	w := models.NewWorkout(input.Name, input.Weight, input.Sets, input.Reps).WithDay(day, order)
	if input.Notes != "" {
		w.WithNotes(input.Notes)
	}
	if input.SupersetOf != "" {
		parent, err := s.repo.GetWorkout(input.SupersetOf)
		if err != nil {
			return nil, workoutOutput{}, fmt.Errorf("superset parent: %w", err)
		}
		w.WithSupersetParent(parent.ID)
	}
	if input.AltOf != "" {
		parent, err := s.repo.GetWorkout(input.AltOf)
		if err != nil {
			return nil, workoutOutput{}, fmt.Errorf("alternative parent: %w", err)
		}
		w.WithAltParent(parent.ID)
	}

	if err := s.repo.CreateWorkout(w); err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to add workout: %w", err)
	}

	return nil, workoutOutput{
		ID:       w.ID[:8],
		Name:     w.Name,
		Day:      w.Day,
		DayOrder: w.DayOrder,
		Message:  fmt.Sprintf("Added %s to day %d (ID: %s)", w.Name, w.Day, w.ID[:8]),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	var day *int
	if input.Day > 0 {
		day = &input.Day
	}

	workouts, err := s.repo.ListWorkouts(day)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	current, err := s.repo.CurrentDay()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read current day: %w", err)
	}
	total, err := s.repo.UniqueDays()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count days: %w", err)
	}

	return nil, listWorkoutsOutput{Workouts: workouts, CurrentDay: current, TotalDays: total}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteWorkout(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}

	return nil, simpleOutput{Message: fmt.Sprintf("Deleted workout: %s", input.ID)}, nil
}

func (s *Server) handleCompleteDay(ctx context.Context, req *mcp.CallToolRequest, input completeDayInput) (*mcp.CallToolResult, completeDayOutput, error) {
	done, err := s.repo.CompleteDay(s.now().In(s.loc))
	if err != nil {
		return nil, completeDayOutput{}, fmt.Errorf("failed to complete day: %w", err)
	}

	return nil, completeDayOutput{
		Day:      done.Day,
		NextDay:  done.NextDay,
		Recorded: len(done.Recorded),
		Message:  fmt.Sprintf("Completed day %d (%d workouts). Next up: day %d", done.Day, len(done.Recorded), done.NextDay),
	}, nil
}

func (s *Server) handleExportCSV(ctx context.Context, req *mcp.CallToolRequest, input exportCSVInput) (*mcp.CallToolResult, exportCSVOutput, error) {
	text, err := transfer.ExportWorkouts(s.repo)
	if err != nil {
		return nil, exportCSVOutput{}, fmt.Errorf("failed to export workouts: %w", err)
	}

	return nil, exportCSVOutput{
		Filename: transfer.ExportFilename(s.now().In(s.loc)),
		MimeType: transfer.CSVMediaType,
		CSV:      text,
	}, nil
}

func (s *Server) handleImportCSV(ctx context.Context, req *mcp.CallToolRequest, input importCSVInput) (*mcp.CallToolResult, importCSVOutput, error) {
	im := transfer.NewImporter(s.repo, s.log)

	if !input.Confirm {
		exists, err := im.HasExistingWorkouts()
		if err != nil {
			return nil, importCSVOutput{}, fmt.Errorf("failed to import workouts: %w", err)
		}
		if exists {
			return nil, importCSVOutput{}, fmt.Errorf("importing replaces the existing routine; call again with confirm=true")
		}
	}

	result, err := im.Import(input.CSV)
	if err != nil {
		return nil, importCSVOutput{}, fmt.Errorf("failed to import workouts: %w", err)
	}

	var warnings []string
	for _, inv := range result.Invalid {
		warnings = append(warnings, fmt.Sprintf("row %d (%s) has invalid fields: %s", inv.Row, inv.Name, inv.Reason))
	}
	for _, d := range result.Dropped {
		warnings = append(warnings, fmt.Sprintf("row %d (%s): dropped %s %s", d.Row, d.Name, d.Field, d.MissingID))
	}

	return nil, importCSVOutput{
		Imported: len(result.Imported),
		Invalid:  len(result.Invalid),
		Warnings: warnings,
		Message:  fmt.Sprintf("Imported %d workouts", len(result.Imported)),
	}, nil
}

// parseTimestamp accepts RFC 3339 or a local "YYYY-MM-DD HH:MM" / "YYYY-MM-DD".
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: use RFC 3339 or YYYY-MM-DD HH:MM", s)
}
