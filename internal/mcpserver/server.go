package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var version = "dev"

// New creates an MCP server with the three tools registered.
func New(svc *Service) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "filetrace",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_tree",
		Description: "Walk a directory, respecting .gitignore rules, and return its hierarchical file tree.",
	}, svc.BuildTree)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_dependency_graph",
		Description: "Parse JS/TS, Python, Rust, and C/C++ source under a directory and return the cross-file dependency graph.",
	}, svc.BuildDependencyGraph)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "assess_impact",
		Description: "Compute the blast radius of changing a set of files using the most recently built dependency graph.",
	}, svc.AssessImpact)

	return server
}

// RunStdio serves the MCP tools over stdio until ctx is canceled.
func RunStdio(ctx context.Context, svc *Service) error {
	server := New(svc)
	return server.Run(ctx, &mcp.StdioTransport{})
}
