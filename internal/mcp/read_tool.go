package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/matthiasg/markdown-inspector/internal/markdown"
)

// AddReadTool registers the mdi_read tool with an MCP server. The tool
// extracts one section of a markdown file, located by heading line number
// or title text, in one of four presentation modes.
func AddReadTool(s *server.MCPServer, config *ServerConfig) {
	tool := mcp.NewTool(
		"mdi_read",
		mcp.WithDescription(`Read one section of a markdown file instead of the whole document.

The section is located by a heading line number (as reported by mdi_outline)
or by a case-insensitive fragment of a heading title. The section spans its
heading line through the line before the next heading at the same or a
shallower depth, so nested subsections are included.

Modes:
- full: the section text verbatim (default)
- outline: only the section's headings as "line:title" entries
- summary: intro text plus entries for every nested heading
- shallow: intro text plus entries for immediate children only`),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Path to the markdown file")),
		mcp.WithString("section",
			mcp.Required(),
			mcp.Description("Heading line number or a fragment of the heading title")),
		mcp.WithString("mode",
			mcp.Description("Extraction mode: full, outline, summary or shallow (default: full)")),
		mcp.WithNumber("depth",
			mcp.Description("Deepest heading level shown in outline entries, 1-6 (default: no limit)")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createReadHandler(config))
}

// createReadHandler returns the handler for mdi_read. Each invocation
// re-reads and re-parses the file; no state is shared between calls.
func createReadHandler(config *ServerConfig) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}

		file, err := parseStringArg(argsMap, "file", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		section, err := parseStringArg(argsMap, "section", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		modeName, err := parseStringArg(argsMap, "mode", false)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if modeName == "" {
			modeName = config.DefaultMode
		}
		mode, err := markdown.ParseMode(modeName)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		depth := parseIntArg(argsMap, "depth", config.DefaultDepth)

		content, err := os.ReadFile(file)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read %s: %v", file, err)), nil
		}

		doc := markdown.Parse(string(content))
		heading, ok := markdown.FindSection(doc.Headings(), markdown.ParseLocator(section))
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("section not found: %s", section)), nil
		}

		return mcp.NewToolResultText(doc.Extract(heading, mode, depth)), nil
	}
}
