package markdown

import (
	"strconv"
	"strings"
)

// Locator selects a section either by a 1-based line number or by a
// fragment of its heading title. Construct one with ByLine, ByText or
// ParseLocator.
type Locator struct {
	byLine bool
	line   int
	text   string
}

// ByLine selects the section whose range encloses the given 1-based line.
func ByLine(line int) Locator { return Locator{byLine: true, line: line} }

// ByText selects the first section whose title contains fragment,
// compared case-insensitively.
func ByText(fragment string) Locator { return Locator{text: fragment} }

// ParseLocator interprets a section argument the way the CLI does: a
// non-negative integer selects by line number, anything else by title text.
func ParseLocator(arg string) Locator {
	if n, err := strconv.Atoi(arg); err == nil && n >= 0 {
		return ByLine(n)
	}
	return ByText(arg)
}

// FindSection resolves a locator against a heading sequence. A text locator
// returns the earliest matching heading; a line locator returns the last
// heading at or before the line, which is the heading whose section
// contains it. The second result is false when nothing matches.
func FindSection(headings []Heading, loc Locator) (Heading, bool) {
	if loc.byLine {
		return findByLine(headings, loc.line)
	}
	return findByText(headings, loc.text)
}

func findByLine(headings []Heading, line int) (Heading, bool) {
	var found Heading
	ok := false
	for _, h := range headings {
		if h.Line > line {
			break
		}
		found, ok = h, true
	}
	return found, ok
}

func findByText(headings []Heading, fragment string) (Heading, bool) {
	needle := strings.ToLower(fragment)
	for _, h := range headings {
		if strings.Contains(strings.ToLower(h.Title), needle) {
			return h, true
		}
	}
	return Heading{}, false
}
