package markdown

// Range is a 1-based, end-inclusive span of source lines.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// SectionRange computes the full extent of h's section: from the heading
// line through the line before the next heading at the same or a shallower
// depth. Deeper subsections are part of the range. The last section of a
// document runs to its final line.
func (d *Document) SectionRange(h Heading) Range {
	end := len(d.lines)
	for _, other := range d.headings {
		if other.Line > h.Line && other.Depth <= h.Depth {
			end = other.Line - 1
			break
		}
	}
	return Range{Start: h.Line, End: end}
}

// FirstChild returns the first heading nested inside h's section, at any
// depth, or false when the section has none.
func (d *Document) FirstChild(h Heading) (Heading, bool) {
	for _, other := range d.headings {
		if other.Line <= h.Line {
			continue
		}
		if other.Depth <= h.Depth {
			break
		}
		return other, true
	}
	return Heading{}, false
}

// Children returns h's immediate child headings in document order. In a
// regularly nested document these sit exactly one level below h; a heading
// that skips levels still counts as a child at its literal depth, and later
// shallower headings inside the section rejoin the child list rather than
// disappearing under it.
func (d *Document) Children(h Heading) []Heading {
	var children []Heading
	childDepth := 0
	for _, other := range d.headings {
		if other.Line <= h.Line {
			continue
		}
		if other.Depth <= h.Depth {
			break
		}
		if childDepth == 0 || other.Depth <= childDepth {
			children = append(children, other)
			childDepth = other.Depth
		}
	}
	return children
}

// Descendants returns every heading inside h's section after h itself, at
// any nesting depth. A positive maxDepth filters out headings deeper than
// that absolute depth; zero or negative means no limit.
func (d *Document) Descendants(h Heading, maxDepth int) []Heading {
	var descendants []Heading
	for _, other := range d.headings {
		if other.Line <= h.Line {
			continue
		}
		if other.Depth <= h.Depth {
			break
		}
		if maxDepth > 0 && other.Depth > maxDepth {
			continue
		}
		descendants = append(descendants, other)
	}
	return descendants
}
