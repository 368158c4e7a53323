package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/GabrielSantos23/notepad/internal/config"
	"github.com/GabrielSantos23/notepad/internal/markdown"
)

// StyleManager encapsulates all TUI styles and provides methods for style operations
type StyleManager struct {
	// Block styles
	Text    lipgloss.Style
	Header  lipgloss.Style
	Todo    lipgloss.Style
	Checked lipgloss.Style
	Muted   lipgloss.Style

	// Inline styles, one per annotated kind
	Bold   lipgloss.Style
	Italic lipgloss.Style
	Strike lipgloss.Style
	Code   lipgloss.Style

	// Sidebar styles
	Note     lipgloss.Style
	Selected lipgloss.Style
	Pin      lipgloss.Style

	// Chrome styles
	Cursor  lipgloss.Style
	Gutter  lipgloss.Style
	Border  lipgloss.Style
	Divider lipgloss.Style
	Status  lipgloss.Style

	// Colors for direct access
	SelectedBg lipgloss.Color

	r *lipgloss.Renderer
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return NewStyles(lipgloss.DefaultRenderer())
}

// NewStyles returns default styles bound to the given renderer
func NewStyles(r *lipgloss.Renderer) *StyleManager {
	s := &StyleManager{r: r}
	s.apply(palette{
		text:     lipgloss.Color("252"),
		header:   lipgloss.Color("6"),
		muted:    lipgloss.Color("241"),
		selected: lipgloss.Color("236"),
		accent:   lipgloss.Color("212"),
		codeFg:   lipgloss.Color("203"),
		codeBg:   lipgloss.Color("235"),
	})
	return s
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	s.apply(palette{
		text:     parseANSIColor(config.GetColorText()),
		header:   parseANSIColor(config.GetColorHeader()),
		muted:    parseANSIColor(config.GetColorMuted()),
		selected: parseANSIColor(config.GetColorSelected()),
		accent:   parseANSIColor(config.GetColorAccent()),
		codeFg:   parseANSIColor(config.GetColorCodeFg()),
		codeBg:   parseANSIColor(config.GetColorCodeBg()),
	})
}

// palette is the set of colors every style is derived from
type palette struct {
	text, header, muted, selected, accent, codeFg, codeBg lipgloss.Color
}

func (s *StyleManager) apply(p palette) {
	s.Text = s.r.NewStyle().Foreground(p.text)
	s.Header = s.r.NewStyle().Bold(true).Foreground(p.header)
	s.Todo = s.r.NewStyle().Foreground(p.text)
	s.Checked = s.r.NewStyle().Strikethrough(true).Foreground(p.muted)
	s.Muted = s.r.NewStyle().Foreground(p.muted)

	s.Bold = s.r.NewStyle().Bold(true)
	s.Italic = s.r.NewStyle().Italic(true)
	s.Strike = s.r.NewStyle().Strikethrough(true)
	s.Code = s.r.NewStyle().Foreground(p.codeFg).Background(p.codeBg)

	s.Note = s.r.NewStyle().Foreground(p.text)
	s.Selected = s.r.NewStyle().Background(p.selected)
	s.Pin = s.r.NewStyle().Foreground(p.accent)

	s.Cursor = s.r.NewStyle().Reverse(true)
	s.Gutter = s.r.NewStyle().Foreground(p.accent)
	s.Border = s.r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.muted)
	s.Divider = s.r.NewStyle().Foreground(p.muted)
	s.Status = s.r.NewStyle().Foreground(p.muted)

	s.SelectedBg = p.selected
}

// Inline returns the style painted over text of the given kind
func (s *StyleManager) Inline(kind markdown.StyleKind) lipgloss.Style {
	switch kind {
	case markdown.Bold:
		return s.Bold
	case markdown.Italic:
		return s.Italic
	case markdown.Strikethrough:
		return s.Strike
	case markdown.InlineCode:
		return s.Code
	default:
		return s.r.NewStyle()
	}
}

// WithSelection returns a copy of the given style with the selected background applied
func (s *StyleManager) WithSelection(style lipgloss.Style) lipgloss.Style {
	return style.Background(s.SelectedBg)
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles rebuilds the global styles for the current default
// renderer and applies config colors
func RefreshStyles() {
	styles = DefaultStyles()
	styles.LoadFromConfig()
}
