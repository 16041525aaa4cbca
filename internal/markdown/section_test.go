package markdown

// Test Plan for section ranges and nesting:
// 1. SectionRange spans heading line through the line before the next
//    heading at the same or shallower depth; the last section reaches EOF.
// 2. Nested subsections stay inside their parent's range.
// 3. FirstChild finds the first deeper heading and stops at siblings.
// 4. Children handles regular nesting, depth jumps, and shallower headings
//    rejoining the child list.
// 5. Descendants respects the maxDepth filter and section bounds.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nestedDoc = "# Guide\n" + // line 1
	"\n" +
	"welcome\n" +
	"\n" +
	"## Setup\n" + // line 5
	"\n" +
	"### Linux\n" + // line 7
	"\n" +
	"### Mac\n" + // line 9
	"\n" +
	"## Usage\n" + // line 11
	"\n" +
	"run it\n" +
	"\n" +
	"# Appendix\n" + // line 15
	"\n" +
	"tables\n"

func TestSectionRange(t *testing.T) {
	t.Parallel()

	doc := Parse(nestedDoc)
	headings := doc.Headings()
	require.Len(t, headings, 6)

	tests := []struct {
		title string
		want  Range
	}{
		{"Guide", Range{Start: 1, End: 14}},
		{"Setup", Range{Start: 5, End: 10}},
		{"Linux", Range{Start: 7, End: 8}},
		{"Mac", Range{Start: 9, End: 10}},
		{"Usage", Range{Start: 11, End: 14}},
		{"Appendix", Range{Start: 15, End: 17}},
	}
	for i, tt := range tests {
		assert.Equal(t, tt.want, doc.SectionRange(headings[i]), "section %s", tt.title)
	}
}

func TestSectionRange_WorkedExample(t *testing.T) {
	t.Parallel()

	doc := Parse("# Title\n\nfoo\n\n## Sub A\n\nbar\n\n# Title 2\n")
	h, ok := FindSection(doc.Headings(), ByText("Title"))
	require.True(t, ok)

	assert.Equal(t, Range{Start: 1, End: 8}, doc.SectionRange(h))
}

func TestFirstChild(t *testing.T) {
	t.Parallel()

	doc := Parse(nestedDoc)
	headings := doc.Headings()

	child, ok := doc.FirstChild(headings[0])
	require.True(t, ok)
	assert.Equal(t, "Setup", child.Title)

	child, ok = doc.FirstChild(headings[1])
	require.True(t, ok)
	assert.Equal(t, "Linux", child.Title)

	// Usage has no subsections; the next heading is a sibling-or-shallower.
	_, ok = doc.FirstChild(headings[4])
	assert.False(t, ok)

	_, ok = doc.FirstChild(headings[5])
	assert.False(t, ok)
}

func TestChildren_RegularNesting(t *testing.T) {
	t.Parallel()

	doc := Parse(nestedDoc)
	headings := doc.Headings()

	children := doc.Children(headings[0])
	require.Len(t, children, 2)
	assert.Equal(t, "Setup", children[0].Title)
	assert.Equal(t, "Usage", children[1].Title)

	children = doc.Children(headings[1])
	require.Len(t, children, 2)
	assert.Equal(t, "Linux", children[0].Title)
	assert.Equal(t, "Mac", children[1].Title)

	assert.Empty(t, doc.Children(headings[2]))
}

func TestChildren_DepthJumps(t *testing.T) {
	t.Parallel()

	// The ### jumps two levels below #; it is still an immediate child. The
	// following ## is shallower than that child, so it rejoins the child
	// list, and the ### after it nests under it.
	content := "# Top\n" +
		"### Jumped\n" +
		"## Level Two\n" +
		"### Nested\n"
	doc := Parse(content)

	children := doc.Children(doc.Headings()[0])
	require.Len(t, children, 2)
	assert.Equal(t, "Jumped", children[0].Title)
	assert.Equal(t, "Level Two", children[1].Title)
}

func TestDescendants(t *testing.T) {
	t.Parallel()

	doc := Parse(nestedDoc)
	guide := doc.Headings()[0]

	all := doc.Descendants(guide, 0)
	require.Len(t, all, 4)
	assert.Equal(t, "Setup", all[0].Title)
	assert.Equal(t, "Linux", all[1].Title)
	assert.Equal(t, "Mac", all[2].Title)
	assert.Equal(t, "Usage", all[3].Title)

	capped := doc.Descendants(guide, 2)
	require.Len(t, capped, 2)
	assert.Equal(t, "Setup", capped[0].Title)
	assert.Equal(t, "Usage", capped[1].Title)

	// Descendants never escape the section.
	setup := doc.Headings()[1]
	subs := doc.Descendants(setup, 0)
	require.Len(t, subs, 2)
	assert.Equal(t, "Linux", subs[0].Title)
	assert.Equal(t, "Mac", subs[1].Title)
}
