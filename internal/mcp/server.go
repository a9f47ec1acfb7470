// ABOUTME: MCP server setup for the magni training log.
// ABOUTME: Wraps the MCP server with repository, timezone, and stats access.
package mcp

import (
	"context"
	"time"

	"github.com/harperreed/magni/internal/logging"
	"github.com/harperreed/magni/internal/stats"
	"github.com/harperreed/magni/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	loc       *time.Location
	calc      *stats.Calculator
	log       logrus.FieldLogger
	now       func() time.Time
}

// NewServer creates an MCP server over repo. Calendar days are cut at
// midnight in loc; nil means the local zone.
func NewServer(repo storage.Repository, loc *time.Location, log logrus.FieldLogger) (*Server, error) {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logging.Discard()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "magni",
			Version: Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		loc:       loc,
		calc:      stats.NewCalculator(loc),
		log:       log,
		now:       time.Now,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.log.Info("mcp server listening on stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// snapshot computes the statistics for every stored weight.
func (s *Server) snapshot() (*stats.Snapshot, error) {
	samples, err := s.repo.ListWeights(0)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.DailyAverages(s.loc)
	if err != nil {
		return nil, err
	}
	return s.calc.Compute(samples, records), nil
}
