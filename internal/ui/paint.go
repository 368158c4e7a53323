package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/GabrielSantos23/notepad/internal/markdown"
)

// NoCursor disables cursor painting
const NoCursor = -1

// PaintOptions controls how annotated text is rendered
type PaintOptions struct {
	// Base is the block style every run inherits from
	Base lipgloss.Style
	// Cursor is the byte offset of the grapheme drawn as the cursor, or
	// NoCursor. An offset equal to len(Raw) draws a cursor cell after the text.
	Cursor int
}

// run is a stretch of graphemes painted with the same style
type run struct {
	start, end int
	kinds      markdown.KindSet
	cursor     bool
}

// Paint renders annotated text with each styled range layered over the
// base style. Overlapping ranges combine in pass order, so bold inside
// inline code keeps both attributes. Runs break on grapheme boundaries,
// never inside a cluster.
func (s *StyleManager) Paint(at markdown.AnnotatedText, opts PaintOptions) string {
	b := getBuilder()
	defer putBuilder(b)

	for _, r := range splitRuns(at, opts.Cursor) {
		style := s.compose(opts.Base, r.kinds)
		if r.cursor {
			style = s.Cursor.Inherit(style)
		}
		b.WriteString(style.Render(at.Raw[r.start:r.end]))
	}

	if opts.Cursor == len(at.Raw) {
		b.WriteString(s.Cursor.Inherit(opts.Base).Render(" "))
	}
	return b.String()
}

// compose layers the inline style of every kind in set over base
func (s *StyleManager) compose(base lipgloss.Style, set markdown.KindSet) lipgloss.Style {
	style := base
	for _, kind := range markdown.Kinds {
		if set.Has(kind) {
			style = s.Inline(kind).Inherit(style)
		}
	}
	return style
}

// splitRuns groups graphemes of at.Raw by the set of kinds touching them.
// A cluster that a range only partly covers takes that range's style.
// The grapheme containing cursor always gets a run of its own.
func splitRuns(at markdown.AnnotatedText, cursor int) []run {
	var runs []run
	g := uniseg.NewGraphemes(at.Raw)
	for g.Next() {
		start, end := g.Positions()
		cur := cursor >= start && cursor < end
		kinds := at.KindsIn(start, end)

		if n := len(runs); n > 0 && !cur && !runs[n-1].cursor && runs[n-1].kinds == kinds {
			runs[n-1].end = end
			continue
		}
		runs = append(runs, run{start: start, end: end, kinds: kinds, cursor: cur})
	}
	return runs
}
