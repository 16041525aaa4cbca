package markdown

import "strings"

// Heading is one ATX heading line: its 1-based line number, its depth (the
// number of leading '#' marks, 1 through 6) and its trimmed title text.
type Heading struct {
	Line  int    `json:"line"`
	Depth int    `json:"depth"`
	Title string `json:"title"`
}

// MaxDepth is the deepest heading level markdown allows; a run of seven or
// more '#' marks is plain text.
const MaxDepth = 6

// ParseHeadings scans content and returns every ATX heading outside fenced
// code blocks, in document order. It never fails: text without headings
// yields an empty result.
func ParseHeadings(content string) []Heading {
	return scanHeadings(splitLines(content))
}

func scanHeadings(lines []string) []Heading {
	var headings []Heading

	inFence := false
	fenceMark := ""

	for i, raw := range lines {
		line := strings.TrimLeft(strings.TrimSuffix(raw, "\r"), " \t")

		// Fence delimiters toggle suppression. Only the marker kind that
		// opened a fence closes it, so a ~~~ line inside a ``` block is
		// ordinary fence content.
		if mark := fenceMarker(line); mark != "" {
			if !inFence {
				inFence = true
				fenceMark = mark
			} else if mark == fenceMark {
				inFence = false
			}
			continue
		}
		if inFence {
			continue
		}

		depth := 0
		for depth < len(line) && line[depth] == '#' {
			depth++
		}
		if depth == 0 || depth > MaxDepth {
			continue
		}
		rest := line[depth:]
		if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
			// No whitespace after the '#' run: "#hashtag" is not a heading.
			continue
		}

		headings = append(headings, Heading{
			Line:  i + 1,
			Depth: depth,
			Title: trimClosingSequence(strings.TrimSpace(rest)),
		})
	}

	return headings
}

// fenceMarker returns the fence delimiter this line opens or closes, or ""
// when the line is not a fence delimiter.
func fenceMarker(line string) string {
	if strings.HasPrefix(line, "```") {
		return "```"
	}
	if strings.HasPrefix(line, "~~~") {
		return "~~~"
	}
	return ""
}

// trimClosingSequence strips an ATX closing sequence from a title:
// "Usage ##" reads "Usage". The trailing '#' run only counts as a closing
// sequence when whitespace precedes it, so a title like "C#" is untouched.
// A title that is nothing but '#' marks reads as empty.
func trimClosingSequence(title string) string {
	end := len(title)
	for end > 0 && title[end-1] == '#' {
		end--
	}
	if end == len(title) {
		return title
	}
	if end == 0 {
		return ""
	}
	if title[end-1] == ' ' || title[end-1] == '\t' {
		return strings.TrimRight(title[:end], " \t")
	}
	return title
}
