// Package markdown parses the heading structure of markdown documents and
// resolves sections against it: every ATX heading with its 1-based line
// number and depth, the line range a heading's section covers, and the
// section body rendered in one of several presentation modes.
//
// The package does no I/O and keeps no state between calls; a Document is
// safe to share across goroutines once built.
package markdown

import "strings"

// Document is an immutable view of one parsed markdown source: the split
// lines plus the headings detected outside fenced code blocks.
type Document struct {
	lines    []string
	headings []Heading
}

// Parse splits content into lines and scans them for ATX headings.
func Parse(content string) *Document {
	lines := splitLines(content)
	return &Document{
		lines:    lines,
		headings: scanHeadings(lines),
	}
}

// Headings returns the detected headings in document order.
func (d *Document) Headings() []Heading { return d.headings }

// LineCount returns the number of lines in the source.
func (d *Document) LineCount() int { return len(d.lines) }

// splitLines splits on \n, dropping the empty element a terminating newline
// would otherwise produce ("a\nb\n" is two lines, same as "a\nb").
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
