// Package markdown annotates raw note text with inline markdown styles.
//
// Annotation never rewrites the text. Delimiters stay visible and a surface
// paints the returned ranges over the raw characters, so offsets computed
// against the raw text stay valid for the displayed text.
package markdown

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// StyledRange is a half-open byte range [Start, End) of the raw text painted
// with Style.
type StyledRange struct {
	Start int       `json:"start" yaml:"start"`
	End   int       `json:"end" yaml:"end"`
	Style StyleKind `json:"style" yaml:"style"`
}

// Len returns the number of code units covered by the range.
func (r StyledRange) Len() int {
	return r.End - r.Start
}

// Contains reports whether off lies within [Start, End).
func (r StyledRange) Contains(off int) bool {
	return r.Start <= off && off < r.End
}

// AnnotatedText is the raw text of one editing field plus the ranges to paint
// over it. Ranges are ordered by pass (bold, italic, strikethrough, code) and
// left to right within a pass. Ranges of different passes may overlap.
type AnnotatedText struct {
	Raw    string        `json:"raw" yaml:"raw"`
	Ranges []StyledRange `json:"ranges" yaml:"ranges"`
}

// Text returns the slice of Raw covered by r.
func (a AnnotatedText) Text(r StyledRange) string {
	return a.Raw[r.Start:r.End]
}

// OfKind returns the ranges painted with kind, in order.
func (a AnnotatedText) OfKind(kind StyleKind) []StyledRange {
	var out []StyledRange
	for _, r := range a.Ranges {
		if r.Style == kind {
			out = append(out, r)
		}
	}
	return out
}

// KindsAt returns every kind whose range covers the byte offset off.
func (a AnnotatedText) KindsAt(off int) KindSet {
	var set KindSet
	for _, r := range a.Ranges {
		if r.Contains(off) {
			set = set.With(r.Style)
		}
	}
	return set
}

// KindsIn returns every kind whose range overlaps the byte span [start, end).
func (a AnnotatedText) KindsIn(start, end int) KindSet {
	var set KindSet
	for _, r := range a.Ranges {
		if r.Start < end && start < r.End {
			set = set.With(r.Style)
		}
	}
	return set
}

// OffsetMapping returns the mapping between raw and displayed offsets.
// Delimiters are never hidden, so it is always Identity.
func (a AnnotatedText) OffsetMapping() OffsetMapping {
	return Identity
}

// ============================================================================
// Passes
// ============================================================================

// lineChar matches any character except a line terminator.
const lineChar = `[^\n\r\u0085\u2028\u2029]`

// pass finds one kind of delimited span. group selects the capture that is
// painted; 0 paints the whole match including delimiters.
type pass struct {
	kind  StyleKind
	re    *regexp2.Regexp
	group int
}

var passes = []pass{
	{
		kind:  Bold,
		re:    regexp2.MustCompile(`(\*\*)(`+lineChar+`*?)\1`, regexp2.None),
		group: 2,
	},
	{
		kind:  Italic,
		re:    regexp2.MustCompile(`(?<!\*)(\*)(?!\*)(`+lineChar+`*?)(?<!\*)(\*)(?!\*)`, regexp2.None),
		group: 2,
	},
	{
		kind:  Strikethrough,
		re:    regexp2.MustCompile(`(~~)(`+lineChar+`*?)\1`, regexp2.None),
		group: 2,
	},
	{
		kind:  InlineCode,
		re:    regexp2.MustCompile("(`)("+lineChar+"*?)(`)", regexp2.None),
		group: 0,
	},
}

// delimiters holds every character that can open a span.
const delimiters = "*~`"

// Annotate scans raw for bold, italic, strikethrough and inline code spans.
// Each kind is an independent pass; a span may be annotated by several passes.
// Unmatched delimiters are left unstyled. Annotate never fails.
func Annotate(raw string) AnnotatedText {
	at := AnnotatedText{Raw: raw}
	if !strings.ContainsAny(raw, delimiters) {
		return at
	}

	offsets := runeOffsets(raw)
	for _, p := range passes {
		at.Ranges = p.collect(raw, offsets, at.Ranges)
	}
	return at
}

// collect appends a range for every match of p in raw. Matches whose painted
// span is empty are consumed without producing a range.
func (p pass) collect(raw string, offsets []int, dst []StyledRange) []StyledRange {
	m, err := p.re.FindStringMatch(raw)
	for m != nil && err == nil {
		g := &m.Group
		if p.group > 0 {
			g = m.GroupByNumber(p.group)
		}
		if g != nil {
			start, end := offsets[g.Index], offsets[g.Index+g.Length]
			if start < end {
				dst = append(dst, StyledRange{Start: start, End: end, Style: p.kind})
			}
		}
		m, err = p.re.FindNextMatch(m)
	}
	return dst
}

// runeOffsets maps rune indices, as reported by regexp2, to byte offsets.
// The final entry is len(s). Invalid UTF-8 bytes count as one rune each.
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
