package server

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/a11ycheck/internal/model"
	"github.com/mj1618/a11ycheck/internal/output"
	"github.com/mj1618/a11ycheck/internal/platform"
	"github.com/mj1618/a11ycheck/internal/rules"
	"github.com/mj1618/a11ycheck/internal/snapshot"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("check",
			mcp.WithDescription("Check an accessibility element dump (JSON or YAML) against the rule catalogue. Returns violations with severity, message and implicated elements."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to the element dump")),
			mcp.WithString("rules", mcp.Description("Comma-separated rule or preset names (all, images, interactive, labels)")),
			mcp.WithString("ignore", mcp.Description("Comma-separated accessibility identifiers to skip")),
		),
		s.handleCheck,
	)

	s.mcp.AddTool(
		mcp.NewTool("snapshot",
			mcp.WithDescription("Compare an element dump with the stored reference snapshot for a test. Writes a new reference when none exists or it is outdated."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to the element dump")),
			mcp.WithString("suite", mcp.Required(), mcp.Description("Test suite name")),
			mcp.WithString("test", mcp.Required(), mcp.Description("Test name")),
			mcp.WithString("ignore", mcp.Description("Comma-separated accessibility identifiers to skip")),
			mcp.WithNumber("ordinal", mcp.Description("1-based snapshot number within the test (default 1); use 2, 3, ... for later screens of the same test")),
			mcp.WithBoolean("diff", mcp.Description("Include a unified diff against the reference")),
		),
		s.handleSnapshot,
	)

	s.mcp.AddTool(
		mcp.NewTool("clear_cache",
			mcp.WithDescription("Drop every parsed element dump held in memory and report cache statistics"),
		),
		s.handleClearCache,
	)

	s.mcp.AddTool(
		mcp.NewTool("rules",
			mcp.WithDescription("List the accessibility rules, their severities and the presets that include them"),
		),
		s.handleRules,
	)
}

func toText(v interface{}) string {
	var buf bytes.Buffer
	if err := output.WriteYAML(&buf, v); err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return buf.String()
}

func (s *Server) readElements(params map[string]interface{}) (string, []model.RawElement, error) {
	path := stringParam(params, "path", "")
	if path == "" {
		return "", nil, fmt.Errorf("path is required")
	}
	ignore := append(append([]string(nil), s.cfg.IgnoreIdentifiers...), stringListParam(params, "ignore")...)
	raws, err := s.cache.ReadElements(s.reader, platform.ReadOptions{Path: path, IgnoreIdentifiers: ignore})
	return path, raws, err
}

func (s *Server) handleCheck(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	specs := stringListParam(params, "rules")
	if len(specs) == 0 {
		specs = defaultRules(s.cfg.DefaultRules)
	}
	set, err := rules.ParseRuleSet(specs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	path, raws, err := s.readElements(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	elements := model.Normalize(raws)
	runner, err := rules.NewRunner(set, s.cfg.Rules)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	vs := runner.Run(elements)
	s.logger.Debug("check", "path", path, "elements", len(elements), "violations", len(vs))

	return mcp.NewToolResultText(toText(output.NewCheckResult(path, len(elements), set.Strings(), vs))), nil
}

func (s *Server) handleSnapshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	id := snapshot.Identity{
		Suite: stringParam(params, "suite", ""),
		Test:  stringParam(params, "test", ""),
	}
	if id.Suite == "" || id.Test == "" {
		return mcp.NewToolResultError("suite and test are required"), nil
	}

	ordinal, err := intParam(params, "ordinal", 1)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if ordinal < 1 {
		return mcp.NewToolResultError(fmt.Sprintf("ordinal must be at least 1, got %d", ordinal)), nil
	}

	path, raws, err := s.readElements(params)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := s.snapshotter.RunAt(model.Normalize(raws), id, ordinal)
	result := output.NewSnapshotResult(path, res)
	if boolParam(params, "diff", false) && res.Reference != nil {
		diff, err := snapshot.RenderDiff(res.Reference.Snapshot, res.Current.Snapshot, 3)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result.Diff = diff
	}
	return mcp.NewToolResultText(toText(result)), nil
}

func (s *Server) handleRules(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(toText(output.NewRulesResult(rules.Describe()))), nil
}

// CacheStatus reports the dump cache after a clear_cache call.
type CacheStatus struct {
	Cleared int `yaml:"cleared" json:"cleared"`
	Hits    int `yaml:"hits"    json:"hits"`
	Misses  int `yaml:"misses"  json:"misses"`
}

func (s *Server) handleClearCache(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status := CacheStatus{Cleared: s.cache.Len()}
	s.cache.InvalidateAll()
	status.Hits, status.Misses = s.cache.Stats()
	s.logger.Debug("cleared dump cache", "entries", status.Cleared)
	return mcp.NewToolResultText(toText(status)), nil
}
