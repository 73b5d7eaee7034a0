package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dusk-indust/filetrace/internal/config"
	"github.com/dusk-indust/filetrace/internal/depgraph"
	"github.com/dusk-indust/filetrace/internal/fstree"
	"github.com/dusk-indust/filetrace/internal/graphstore"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// matcherFor builds the ignore matcher for root, layering projectCfg's
// excludeDirs on top of its .gitignore rules, the same way internal/httpapi
// does it.
func matcherFor(root string, projectCfg *config.ProjectConfig) (fstree.IgnoreMatcher, error) {
	extra := make([]string, len(projectCfg.ExcludeDirs))
	for i, d := range projectCfg.ExcludeDirs {
		extra[i] = d + "/"
	}
	return fstree.NewMatcherWithExtra(root, extra)
}

// Service holds the dependencies MCP tool handlers call into.
type Service struct {
	store  graphstore.Store
	logger *slog.Logger
}

// NewService creates a Service backed by store for impact assessment.
func NewService(store graphstore.Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) BuildTree(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input BuildTreeInput,
) (*mcp.CallToolResult, BuildTreeOutput, error) {
	root, err := fstree.ValidatePath(input.Path)
	if err != nil {
		return nil, BuildTreeOutput{}, err
	}
	projectCfg, err := config.LoadProjectConfig(root)
	if err != nil {
		return nil, BuildTreeOutput{}, err
	}
	matcher, err := matcherFor(root, projectCfg)
	if err != nil {
		return nil, BuildTreeOutput{}, err
	}
	tree, err := fstree.Build(root, matcher)
	if err != nil {
		return nil, BuildTreeOutput{}, err
	}
	return nil, BuildTreeOutput{Root: root, Tree: tree}, nil
}

func (s *Service) BuildDependencyGraph(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BuildDependencyGraphInput,
) (*mcp.CallToolResult, BuildDependencyGraphOutput, error) {
	root, err := fstree.ValidatePath(input.Path)
	if err != nil {
		return nil, BuildDependencyGraphOutput{}, err
	}
	projectCfg, err := config.LoadProjectConfig(root)
	if err != nil {
		return nil, BuildDependencyGraphOutput{}, err
	}
	matcher, err := matcherFor(root, projectCfg)
	if err != nil {
		return nil, BuildDependencyGraphOutput{}, err
	}
	tree, err := fstree.Build(root, matcher)
	if err != nil {
		return nil, BuildDependencyGraphOutput{}, err
	}
	graph, err := depgraph.AnalyzeLanguages(root, tree, s.logger, projectCfg.Languages)
	if err != nil {
		return nil, BuildDependencyGraphOutput{}, err
	}

	if s.store != nil {
		files, edges := graphstore.FromDependencyGraph(graph)
		if err := s.store.Replace(ctx, files, edges); err != nil {
			s.logger.Warn("failed to persist dependency graph", "error", err)
		}
	}

	return nil, BuildDependencyGraphOutput{Root: root, DependencyGraph: graph}, nil
}

func (s *Service) AssessImpact(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AssessImpactInput,
) (*mcp.CallToolResult, AssessImpactOutput, error) {
	if s.store == nil {
		return nil, AssessImpactOutput{}, fmt.Errorf("impact assessment store unavailable")
	}
	if len(input.ChangedFiles) == 0 {
		return nil, AssessImpactOutput{}, fmt.Errorf("changedFiles is required")
	}
	result, err := s.store.AssessImpact(ctx, input.ChangedFiles)
	if err != nil {
		return nil, AssessImpactOutput{}, err
	}
	return nil, AssessImpactOutput{
		DirectlyAffected:     result.DirectlyAffected,
		TransitivelyAffected: result.TransitivelyAffected,
		RiskScore:            result.RiskScore,
	}, nil
}
