package markdown

import "fmt"

// StyleKind identifies the presentation attribute set applied to a range.
type StyleKind uint8

const (
	Bold StyleKind = iota + 1
	Italic
	Strikethrough
	InlineCode
)

// Kinds lists every style kind in pass order.
var Kinds = []StyleKind{Bold, Italic, Strikethrough, InlineCode}

var kindNames = map[StyleKind]string{
	Bold:          "bold",
	Italic:        "italic",
	Strikethrough: "strikethrough",
	InlineCode:    "code",
}

func (k StyleKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("StyleKind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k StyleKind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown style kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *StyleKind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown style kind %q", string(text))
}

// KindSet is a set of style kinds.
type KindSet uint8

// With returns the set with kind added.
func (s KindSet) With(kind StyleKind) KindSet {
	return s | 1<<kind
}

// Has reports whether kind is in the set.
func (s KindSet) Has(kind StyleKind) bool {
	return s&(1<<kind) != 0
}

// Empty reports whether the set holds no kinds.
func (s KindSet) Empty() bool {
	return s == 0
}
