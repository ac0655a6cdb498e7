// Package mcp provides a Model Context Protocol server for md2ms.
// It exposes manuscript compilation and inspection as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/md2ms/internal/manuscript"
)

// Defaults are the configured settings tools fall back to when a call
// leaves them out.
type Defaults struct {
	OutputDir string
	Fonts     []string
	FontSize  int
	Contact   manuscript.Contact
}

// NewServer creates an MCP server with all md2ms tools registered.
func NewServer(version string, defaults Defaults) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "md2ms",
		Version: version,
	}, nil)
	registerTools(server, defaults)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools. Compiling replaces
// earlier output files of the same name, which is idempotent.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all md2ms tools to the server.
func registerTools(server *mcp.Server, defaults Defaults) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compile",
		Description: "Compile a manuscript directory or file into Standard Manuscript Format .docx files, one per font/anonymity/style variant.",
		Annotations: writeAnnotations(),
	}, handleCompile(defaults))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "word_count",
		Description: "Count the words of a compiled manuscript. Returns the exact count and the count rounded the way manuscript cover pages report it.",
		Annotations: readOnlyAnnotations(),
	}, handleWordCount())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "outline",
		Description: "List the fragments a manuscript includes, in order, with heading, paragraph and word counts.",
		Annotations: readOnlyAnnotations(),
	}, handleOutline())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Check a manuscript tree for missing or duplicate includes, nested manifests, orphaned and empty fragments, and incomplete metadata.",
		Annotations: readOnlyAnnotations(),
	}, handleCheck())
}
