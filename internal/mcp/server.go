// Package mcp provides a Model Context Protocol server for tm.
// It exposes palette rendering as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/tm/internal/cache"
	"github.com/gorewood/tm/internal/config"
)

// Env is what the tools resolve relative paths and defaults against.
type Env struct {
	Paths          config.Paths
	Filter         cache.Filter
	DefaultPalette string
}

// NewServer creates an MCP server with all tm tools registered.
func NewServer(version string, env Env) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "tm",
		Version: version,
	}, nil)
	registerTools(server, env)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// applyAnnotations marks apply as destructive: it clears the cache directory.
func applyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

func registerTools(server *mcp.Server, env Env) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Substitute palette colors into template text. Placeholders are X0..X15; larger indices are left as-is.",
		Annotations: readOnlyAnnotations(),
	}, handleRender(env))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "apply",
		Description: "Render every template into the cache directory with the given palette. Clears the cache directory first.",
		Annotations: applyAnnotations(),
	}, handleApply(env))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "palette",
		Description: "List the colors of a palette file with their indices.",
		Annotations: readOnlyAnnotations(),
	}, handlePalette(env))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "templates",
		Description: "List the templates that apply would render and where each output goes.",
		Annotations: readOnlyAnnotations(),
	}, handleTemplates(env))
}
