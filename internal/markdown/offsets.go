package markdown

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// OffsetMapping translates cursor and selection offsets between the raw text
// and the displayed text.
type OffsetMapping interface {
	OriginalToTransformed(offset int) int
	TransformedToOriginal(offset int) int
}

type identityMapping struct{}

func (identityMapping) OriginalToTransformed(offset int) int { return offset }
func (identityMapping) TransformedToOriginal(offset int) int { return offset }

// Identity maps every offset to itself.
var Identity OffsetMapping = identityMapping{}

// Unit is the code unit a text surface indexes strings in.
type Unit uint8

const (
	// Bytes are UTF-8 code units, the native unit of Go strings and of
	// StyledRange.
	Bytes Unit = iota
	// Runes are Unicode code points.
	Runes
	// UTF16 are UTF-16 code units; runes outside the BMP take two.
	UTF16
)

func (u Unit) String() string {
	switch u {
	case Bytes:
		return "bytes"
	case Runes:
		return "runes"
	case UTF16:
		return "utf16"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// ParseUnit parses the name of a unit as printed by Unit.String.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bytes", "byte", "utf8":
		return Bytes, nil
	case "runes", "rune", "codepoints":
		return Runes, nil
	case "utf16", "utf-16":
		return UTF16, nil
	default:
		return Bytes, fmt.Errorf("unknown offset unit %q (want bytes, runes or utf16)", s)
	}
}

// In returns the ranges with offsets expressed in unit. The result is
// never nil, so it encodes as an empty list.
func (a AnnotatedText) In(unit Unit) []StyledRange {
	if len(a.Ranges) == 0 {
		return []StyledRange{}
	}
	out := make([]StyledRange, len(a.Ranges))
	copy(out, a.Ranges)
	if unit == Bytes {
		return out
	}

	table := unitTable(a.Raw, unit)
	for i := range out {
		out[i].Start = table[out[i].Start]
		out[i].End = table[out[i].End]
	}
	return out
}

// ConvertOffset converts off, counted in from units, to an offset counted in
// to units. Offsets are clamped to the text. An offset that falls inside a
// multi-unit character resolves to the start of that character.
func ConvertOffset(raw string, off int, from, to Unit) int {
	if from == to {
		return clampInt(off, 0, unitLen(raw, from))
	}
	b := toByteOffset(raw, off, from)
	if to == Bytes {
		return b
	}
	return unitTable(raw, to)[b]
}

// unitTable maps every byte offset of s, including len(s), to the number of
// units before it. Offsets inside a rune map like the rune's start.
func unitTable(s string, unit Unit) []int {
	table := make([]int, len(s)+1)
	n, prev := 0, 0
	for i, r := range s {
		for j := prev; j < i; j++ {
			table[j] = table[prev]
		}
		table[i] = n
		prev = i
		n += runeUnits(r, unit)
	}
	for j := prev + 1; j < len(s); j++ {
		table[j] = table[prev]
	}
	table[len(s)] = n
	return table
}

// toByteOffset converts an offset counted in unit to a byte offset.
func toByteOffset(s string, off int, unit Unit) int {
	if off <= 0 {
		return 0
	}
	if unit == Bytes {
		if off >= len(s) {
			return len(s)
		}
		for off > 0 && !isRuneStart(s, off) {
			off--
		}
		return off
	}
	n := 0
	for i, r := range s {
		next := n + runeUnits(r, unit)
		if off < next {
			return i
		}
		n = next
	}
	return len(s)
}

func unitLen(s string, unit Unit) int {
	if unit == Bytes {
		return len(s)
	}
	n := 0
	for _, r := range s {
		n += runeUnits(r, unit)
	}
	return n
}

// runeUnits returns the width of r in Runes or UTF16 units.
func runeUnits(r rune, unit Unit) int {
	if unit == UTF16 {
		if n := utf16.RuneLen(r); n > 0 {
			return n
		}
	}
	return 1
}

// isRuneStart reports whether byte offset i of s begins a rune as seen by
// ranging over s.
func isRuneStart(s string, i int) bool {
	for j := range s {
		if j == i {
			return true
		}
		if j > i {
			return false
		}
	}
	return i == len(s)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
