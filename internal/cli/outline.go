package cli

import (
	"fmt"

	"github.com/matthiasg/markdown-inspector/internal/config"
	"github.com/matthiasg/markdown-inspector/internal/markdown"
	"github.com/spf13/cobra"
)

var outlineDepthFlag int

// outlineCmd represents the outline command
var outlineCmd = &cobra.Command{
	Use:   "outline <file>",
	Short: "Print the heading outline of a markdown file",
	Long: `Outline prints one line per ATX heading: the 1-based line number,
right-aligned to four columns, followed by the title indented two spaces
per heading level.

Headings inside fenced code blocks are ignored. Pass "-" as the file to
read from stdin.

Examples:
  # Outline a file
  mdi outline README.md

  # Top two heading levels only
  mdi outline README.md --depth 2

  # Outline from stdin
  cat README.md | mdi outline -
`,
	Args: cobra.ExactArgs(1),
	RunE: runOutline,
}

func init() {
	rootCmd.AddCommand(outlineCmd)
	outlineCmd.Flags().IntVarP(&outlineDepthFlag, "depth", "d", 6, "Deepest heading level to show (1-6)")
}

func runOutline(cmd *cobra.Command, args []string) error {
	depth := outlineDepthFlag
	if !cmd.Flags().Changed("depth") {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		depth = cfg.Outline.Depth
	}

	return printOutline(args[0], depth)
}

// printOutline renders the outline of the document at path to stdout.
func printOutline(path string, depth int) error {
	content, err := readInput(path)
	if err != nil {
		return err
	}

	for _, line := range markdown.RenderOutline(markdown.ParseHeadings(content), depth) {
		fmt.Println(line)
	}

	return nil
}
