package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/matthiasg/markdown-inspector/internal/markdown"
)

// OutlineResponse represents the response structure of the mdi_outline tool.
type OutlineResponse struct {
	File    string             `json:"file"`
	Count   int                `json:"count"`
	Entries []markdown.Heading `json:"entries"`
}

// AddOutlineTool registers the mdi_outline tool with an MCP server. The tool
// reports the heading structure of a markdown file so an agent can decide
// which section to read instead of loading the whole document into context.
func AddOutlineTool(s *server.MCPServer, config *ServerConfig) {
	tool := mcp.NewTool(
		"mdi_outline",
		mcp.WithDescription(`List the heading structure of a markdown file without its body text.

Returns one entry per ATX heading with its 1-based line number, depth (1-6)
and title. Headings inside fenced code blocks are ignored. Use the line
number or title with the mdi_read tool to fetch a single section.

Example response:
  {"file": "README.md", "count": 2, "entries": [
    {"line": 1, "depth": 1, "title": "Install"},
    {"line": 12, "depth": 2, "title": "From source"}]}`),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Path to the markdown file")),
		mcp.WithNumber("depth",
			mcp.Description("Deepest heading level to include, 1-6 (default: no limit)")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createOutlineHandler(config))
}

// createOutlineHandler returns the handler for mdi_outline. Each invocation
// re-reads and re-parses the file; no state is shared between calls.
func createOutlineHandler(config *ServerConfig) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}

		file, err := parseStringArg(argsMap, "file", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		depth := parseIntArg(argsMap, "depth", config.DefaultDepth)

		content, err := os.ReadFile(file)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read %s: %v", file, err)), nil
		}

		headings := markdown.ParseHeadings(string(content))

		entries := make([]markdown.Heading, 0, len(headings))
		for _, h := range headings {
			if depth > 0 && h.Depth > depth {
				continue
			}
			entries = append(entries, h)
		}

		return marshalToolResponse(OutlineResponse{
			File:    file,
			Count:   len(entries),
			Entries: entries,
		})
	}
}
