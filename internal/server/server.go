// Package server exposes the checker as MCP tools.
package server

import (
	"fmt"
	"log/slog"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/a11ycheck/internal/platform"
	"github.com/mj1618/a11ycheck/internal/rules"
	"github.com/mj1618/a11ycheck/internal/snapshot"
	"github.com/mj1618/a11ycheck/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport         string
	Port              int
	CacheSize         int
	Rules             rules.Config
	DefaultRules      []string
	IgnoreIdentifiers []string
	ReferenceDir      string
	OutputDir         string
	Logger            *slog.Logger
}

// Server wraps the MCP server with the dump reader, cache and snapshotter.
type Server struct {
	cfg         Config
	reader      platform.Reader
	cache       *DumpCache
	snapshotter *snapshot.Snapshotter
	logger      *slog.Logger
	mcp         *mcpserver.MCPServer
}

// New creates and configures an MCP server with all tools registered.
func New(cfg Config, reader platform.Reader) (*Server, error) {
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}
	if _, err := rules.ParseRuleSet(defaultRules(cfg.DefaultRules)); err != nil {
		return nil, err
	}
	cache, err := NewDumpCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	store := snapshot.NewStore(cfg.ReferenceDir, cfg.OutputDir)
	store.Logger = logger

	s := &Server{
		cfg:    cfg,
		reader: reader,
		cache:  cache,
		snapshotter: snapshot.New(store,
			snapshot.WithTolerance(cfg.Rules.Tolerance),
			snapshot.WithLogger(logger)),
		logger: logger,
		mcp: mcpserver.NewMCPServer(
			"a11ycheck",
			version.Version,
			mcpserver.WithToolCapabilities(false),
		),
	}
	s.registerTools()
	return s, nil
}

func defaultRules(r []string) []string {
	if len(r) == 0 {
		return []string{rules.PresetAll}
	}
	return r
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve() error {
	s.logger.Info("starting MCP server", "transport", s.cfg.Transport, "port", s.cfg.Port)
	switch s.cfg.Transport {
	case "stdio", "":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", s.cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.cfg.Transport)
	}
}
