package markdown

import (
	"fmt"
	"strings"
)

// Mode selects how Extract renders a section.
type Mode int

const (
	// ModeFull reproduces the section text verbatim.
	ModeFull Mode = iota
	// ModeOutline lists the section heading and every nested heading as
	// outline entries, with no body text.
	ModeOutline
	// ModeSummary shows the intro text, the lines up to the first nested
	// heading, followed by outline entries for every nested heading.
	ModeSummary
	// ModeShallow shows the intro text followed by one outline entry per
	// immediate child; deeper headings are omitted entirely.
	ModeShallow
)

// ModeNames lists the accepted mode names in the order ParseMode reports
// them in errors.
var ModeNames = []string{"full", "outline", "summary", "shallow"}

// ParseMode maps a mode name to a Mode. The empty string means ModeFull.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "full", "":
		return ModeFull, nil
	case "outline":
		return ModeOutline, nil
	case "summary":
		return ModeSummary, nil
	case "shallow":
		return ModeShallow, nil
	}
	return ModeFull, fmt.Errorf("unknown mode %q (valid: %s)", name, strings.Join(ModeNames, ", "))
}

// String returns the parseable name of the mode.
func (m Mode) String() string {
	if m < ModeFull || int(m) >= len(ModeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return ModeNames[m]
}

// ExtractRange returns the source lines covered by r joined with newlines,
// without a trailing newline. A range reaching outside the document clamps
// to it; an empty intersection yields "".
func (d *Document) ExtractRange(r Range) string {
	start, end := r.Start, r.End
	if start < 1 {
		start = 1
	}
	if end > len(d.lines) {
		end = len(d.lines)
	}
	if start > end {
		return ""
	}
	return strings.Join(d.lines[start-1:end], "\n")
}

// Extract renders h's section in the given mode. A positive maxDepth limits
// how deep the outline entries of the outline, summary and shallow modes
// reach; body text is never depth-filtered.
func (d *Document) Extract(h Heading, mode Mode, maxDepth int) string {
	switch mode {
	case ModeOutline:
		entries := []string{FormatEntry(h)}
		for _, sub := range d.Descendants(h, maxDepth) {
			entries = append(entries, FormatEntry(sub))
		}
		return strings.Join(entries, "\n")

	case ModeSummary:
		return d.introWithEntries(h, d.Descendants(h, maxDepth))

	case ModeShallow:
		children := d.Children(h)
		if maxDepth > 0 {
			var kept []Heading
			for _, c := range children {
				if c.Depth <= maxDepth {
					kept = append(kept, c)
				}
			}
			children = kept
		}
		return d.introWithEntries(h, children)

	default:
		return d.ExtractRange(d.SectionRange(h))
	}
}

// introWithEntries renders the intro lines of h's section, the heading line
// through the line before the first nested heading, followed by a blank
// line and outline entries for subs. A childless section's intro is its
// whole range.
func (d *Document) introWithEntries(h Heading, subs []Heading) string {
	r := d.SectionRange(h)
	if first, ok := d.FirstChild(h); ok {
		r.End = first.Line - 1
	}
	intro := d.ExtractRange(r)
	if len(subs) == 0 {
		return intro
	}
	entries := make([]string, len(subs))
	for i, sub := range subs {
		entries[i] = FormatEntry(sub)
	}
	return intro + "\n\n" + strings.Join(entries, "\n")
}
