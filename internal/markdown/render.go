package markdown

import (
	"fmt"
	"strings"
)

// FormatEntry renders a heading as one outline entry, "<line>:<indent><title>",
// indented two spaces per depth level past the first.
func FormatEntry(h Heading) string {
	return fmt.Sprintf("%d:%s%s", h.Line, indentFor(h.Depth), h.Title)
}

// RenderOutline renders headings as aligned outline lines for terminal
// output, line numbers right-aligned to four columns. A positive maxDepth
// filters out deeper headings; the entries that remain keep the indentation
// of their own depth.
func RenderOutline(headings []Heading, maxDepth int) []string {
	var lines []string
	for _, h := range headings {
		if maxDepth > 0 && h.Depth > maxDepth {
			continue
		}
		lines = append(lines, fmt.Sprintf("%4d:%s%s", h.Line, indentFor(h.Depth), h.Title))
	}
	return lines
}

func indentFor(depth int) string {
	if depth <= 1 {
		return ""
	}
	return strings.Repeat("  ", depth-1)
}
