package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/matthiasg/markdown-inspector/internal/config"
	"github.com/matthiasg/markdown-inspector/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for markdown navigation",
	Long: `Start the Model Context Protocol (MCP) server that lets LLM-powered coding
assistants inspect markdown documents section by section.

The MCP server:
- Provides the mdi_outline tool to list a file's heading structure
- Provides the mdi_read tool to extract a single section
- Communicates via stdio (standard MCP transport)

Example:
  mdi mcp`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration from .mdi/config.yml
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Show startup information
	fmt.Fprintf(os.Stderr, "mdi MCP Server %s\n", Version)
	fmt.Fprintf(os.Stderr, "Tools: mdi_outline, mdi_read\n")
	fmt.Fprintf(os.Stderr, "\n")

	server := mcp.NewServer(&mcp.ServerConfig{
		Version:      Version,
		DefaultDepth: cfg.Outline.Depth,
		DefaultMode:  cfg.Read.Mode,
	})

	// Serve (blocks until shutdown)
	if err := server.Serve(ctx); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	return nil
}
