package ui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GabrielSantos23/notepad/internal/note"
)

// getTTY picks the terminal the editor draws on. When stdout is redirected,
// as in `notepad > notes.txt`, the editor still needs a screen and a
// keyboard, so it opens /dev/tty for both and points the default lipgloss
// renderer at it. The returned cleanup closes whatever was opened.
func getTTY() (in *os.File, out *os.File, cleanup func()) {
	if isTerminal(os.Stdout) {
		return os.Stdin, os.Stdout, func() {}
	}

	var opened []*os.File
	out = openTTY(os.O_WRONLY, os.Stderr)
	in = openTTY(os.O_RDONLY, os.Stdin)
	for _, f := range []*os.File{out, in} {
		if f != os.Stderr && f != os.Stdin {
			opened = append(opened, f)
		}
	}

	// Detect colors on the terminal, not the redirect
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(out))

	return in, out, func() {
		for _, f := range opened {
			f.Close()
		}
	}
}

// openTTY opens /dev/tty with flag, or returns fallback when the process
// has no controlling terminal
func openTTY(flag int, fallback *os.File) *os.File {
	f, err := os.OpenFile("/dev/tty", flag, 0)
	if err != nil {
		return fallback
	}
	return f
}

// isTerminal reports whether f is a character device
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// Run launches the notepad on the given notebook and blocks until the
// user quits
func Run(nb *note.Notebook, opts Options) error {
	m := newMainModel(nb, opts)

	ttyIn, ttyOut, cleanup := getTTY()
	defer cleanup()
	RefreshStyles() // Refresh after getTTY sets up the renderer

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(ttyOut), tea.WithInput(ttyIn))
	_, err := p.Run()
	return err
}
