package ui

import "testing"

func TestScrollWindow(t *testing.T) {
	tests := []struct {
		name               string
		cursor, total, h   int
		offset             int
		wantStart, wantEnd int
	}{
		{name: "fits", cursor: 2, total: 5, h: 10, wantStart: 0, wantEnd: 5},
		{name: "scroll down", cursor: 7, total: 10, h: 3, wantStart: 5, wantEnd: 8},
		{name: "scroll up", cursor: 1, total: 10, h: 3, offset: 5, wantStart: 1, wantEnd: 4},
		{name: "keep offset", cursor: 4, total: 10, h: 3, offset: 3, wantStart: 3, wantEnd: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := tt.offset
			start, end := scrollWindow(tt.cursor, tt.total, tt.h, &offset)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("scrollWindow() = [%d,%d), want [%d,%d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{input: "My notes 1", width: 20, want: "My notes 1"},
		{input: "My notes 1", width: 6, want: "My no…"},
		{input: "中文中文", width: 5, want: "中文…"},
		{input: "ééé", width: 2, want: "é…"},
		{input: "anything", width: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := truncateString(tt.input, tt.width); got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}
