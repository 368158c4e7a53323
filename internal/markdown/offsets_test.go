package markdown

import (
	"reflect"
	"testing"
)

func TestAnnotatedTextIn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		unit  Unit
		want  []StyledRange
	}{
		{
			name:  "ascii is the same in every unit",
			input: "**ab**",
			unit:  UTF16,
			want:  []StyledRange{{Start: 2, End: 4, Style: Bold}},
		},
		{
			name:  "surrogate pair before bold bytes",
			input: "😀**b**",
			unit:  Bytes,
			want:  []StyledRange{{Start: 6, End: 7, Style: Bold}},
		},
		{
			name:  "surrogate pair before bold runes",
			input: "😀**b**",
			unit:  Runes,
			want:  []StyledRange{{Start: 3, End: 4, Style: Bold}},
		},
		{
			name:  "surrogate pair before bold utf16",
			input: "😀**b**",
			unit:  UTF16,
			want:  []StyledRange{{Start: 4, End: 5, Style: Bold}},
		},
		{
			name:  "combining mark bytes",
			input: "*e\u0301*",
			unit:  Bytes,
			want:  []StyledRange{{Start: 1, End: 4, Style: Italic}},
		},
		{
			name:  "combining mark runes",
			input: "*e\u0301*",
			unit:  Runes,
			want:  []StyledRange{{Start: 1, End: 3, Style: Italic}},
		},
		{
			name:  "combining mark utf16",
			input: "*e\u0301*",
			unit:  UTF16,
			want:  []StyledRange{{Start: 1, End: 3, Style: Italic}},
		},
		{
			name:  "astral code span runes",
			input: "`\U0001D456`",
			unit:  Runes,
			want:  []StyledRange{{Start: 0, End: 3, Style: InlineCode}},
		},
		{
			name:  "astral code span utf16",
			input: "`\U0001D456`",
			unit:  UTF16,
			want:  []StyledRange{{Start: 0, End: 4, Style: InlineCode}},
		},
		{
			name:  "invalid byte counts once",
			input: "*\xffx*",
			unit:  UTF16,
			want:  []StyledRange{{Start: 1, End: 3, Style: Italic}},
		},
		{
			name:  "no ranges",
			input: "plain",
			unit:  UTF16,
			want:  []StyledRange{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Annotate(tt.input).In(tt.unit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Annotate(%q).In(%s) = %v, want %v", tt.input, tt.unit, got, tt.want)
			}
		})
	}
}

func TestInDoesNotAlias(t *testing.T) {
	at := Annotate("😀**b**")
	converted := at.In(UTF16)
	converted[0].Start = 99
	if at.Ranges[0].Start != 6 {
		t.Errorf("In modified the receiver: Start = %d", at.Ranges[0].Start)
	}
}

func TestConvertOffset(t *testing.T) {
	const raw = "a😀b"

	tests := []struct {
		name     string
		off      int
		from, to Unit
		want     int
	}{
		{name: "byte to utf16 after pair", off: 5, from: Bytes, to: UTF16, want: 3},
		{name: "byte to rune after pair", off: 5, from: Bytes, to: Runes, want: 2},
		{name: "utf16 to byte after pair", off: 3, from: UTF16, to: Bytes, want: 5},
		{name: "utf16 inside pair floors", off: 2, from: UTF16, to: Bytes, want: 1},
		{name: "rune to utf16", off: 2, from: Runes, to: UTF16, want: 3},
		{name: "utf16 end", off: 4, from: UTF16, to: Runes, want: 3},
		{name: "byte inside rune floors", off: 3, from: Bytes, to: UTF16, want: 1},
		{name: "negative clamps", off: -4, from: Runes, to: Bytes, want: 0},
		{name: "past end clamps", off: 40, from: Runes, to: Bytes, want: 6},
		{name: "same unit clamps", off: 40, from: UTF16, to: UTF16, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvertOffset(raw, tt.off, tt.from, tt.to); got != tt.want {
				t.Errorf("ConvertOffset(%q, %d, %s, %s) = %d, want %d", raw, tt.off, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIdentityMapping(t *testing.T) {
	for _, off := range []int{0, 1, 7, 1024} {
		if got := Identity.OriginalToTransformed(off); got != off {
			t.Errorf("OriginalToTransformed(%d) = %d", off, got)
		}
		if got := Identity.TransformedToOriginal(off); got != off {
			t.Errorf("TransformedToOriginal(%d) = %d", off, got)
		}
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{input: "bytes", want: Bytes},
		{input: "Runes", want: Runes},
		{input: "utf-16", want: UTF16},
		{input: " utf16 ", want: UTF16},
		{input: "graphemes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseUnit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseUnit(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
