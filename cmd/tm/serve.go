package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	tmmcp "github.com/gorewood/tm/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run tm as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "tm": {
        "command": "tm",
        "args": ["serve"]
      }
    }
  }

Available tools: render, apply, palette, templates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, file, err := resolveSettings(nil)
			if err != nil {
				return reportErr(newPrinter(cmd), err)
			}
			server := tmmcp.NewServer(buildVersion(), tmmcp.Env{
				Paths:          paths,
				Filter:         resolveFilter(file, nil),
				DefaultPalette: file.Palette,
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
