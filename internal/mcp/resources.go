// ABOUTME: MCP resource implementations for the magni training log.
// ABOUTME: Provides magni://stats, magni://workouts/today, and magni://history/recent.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/magni/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Resource URIs.
const (
	StatsURI         = "magni://stats"
	TodayWorkoutsURI = "magni://workouts/today"
	RecentHistoryURI = "magni://history/recent"
)

// recentHistoryLimit caps magni://history/recent.
const recentHistoryLimit = 20

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         StatsURI,
		Name:        "Weight Statistics",
		Description: "Daily stats, rolling averages, trend changes, and chart bounds",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         TodayWorkoutsURI,
		Name:        "Today's Workouts",
		Description: "Workouts scheduled for the current day of the routine",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         RecentHistoryURI,
		Name:        "Recent History",
		Description: "Most recently completed workouts",
		MIMEType:    "application/json",
	}, s.handleRecentHistoryResource)
}

// Resource handlers

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return jsonResource(StatsURI, snap)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	day, err := s.repo.CurrentDay()
	if err != nil {
		return nil, fmt.Errorf("failed to read current day: %w", err)
	}
	total, err := s.repo.UniqueDays()
	if err != nil {
		return nil, fmt.Errorf("failed to count days: %w", err)
	}
	workouts, err := s.repo.ListWorkouts(&day)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	if workouts == nil {
		workouts = []*models.Workout{}
	}

	return jsonResource(TodayWorkoutsURI, map[string]interface{}{
		"day":       day,
		"totalDays": total,
		"workouts":  workouts,
	})
}

func (s *Server) handleRecentHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	history, err := s.repo.ListHistory("")
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	if len(history) > recentHistoryLimit {
		history = history[:recentHistoryLimit]
	}
	if history == nil {
		history = []*models.WorkoutHistory{}
	}

	return jsonResource(RecentHistoryURI, map[string]interface{}{
		"history": history,
		"count":   len(history),
	})
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
