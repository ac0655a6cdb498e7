package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	md2msmcp "github.com/gorewood/md2ms/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run md2ms as a Model Context Protocol (MCP) server over stdio.

This exposes manuscript compilation and inspection as MCP tools that any
MCP-capable agent environment can use. Output directory, fonts, font size
and contact file come from the usual configuration.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "md2ms": {
        "command": "md2ms",
        "args": ["serve"]
      }
    }
  }

Available tools: compile, word_count, outline, check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			cfg, err := loadSettings(cmd)
			if err != nil {
				return fail(printer, err)
			}
			contact, err := loadContact(cfg.PII)
			if err != nil {
				return fail(printer, err)
			}

			server := md2msmcp.NewServer(buildVersion(), md2msmcp.Defaults{
				OutputDir: cfg.OutputDir,
				Fonts:     cfg.Fonts,
				FontSize:  cfg.FontSize,
				Contact:   contact,
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
