package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GabrielSantos23/notepad/internal/config"
	"github.com/GabrielSantos23/notepad/internal/note"
)

const placeholder = "Write something here..."

// View implements tea.Model
func (m mainModel) View() string {
	if m.quitting {
		return ""
	}

	width := max(m.width, 40)
	height := max(m.height, 10)
	bodyHeight := height - 2 // divider + status

	editorWidth := width
	var sidebar string
	if m.sidebarOpen {
		sw := min(config.GetSidebarWidth(), width/2)
		sidebar = m.renderSidebar(sw, bodyHeight)
		editorWidth = width - lipgloss.Width(sidebar)
	}
	editor := m.renderEditor(editorWidth, bodyHeight)

	b := getBuilder()
	defer putBuilder(b)
	if sidebar != "" {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, editor))
	} else {
		b.WriteString(editor)
	}
	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(m.renderStatus(width))
	return b.String()
}

// ============================================================================
// Sidebar
// ============================================================================

// renderSidebar renders the note list inside a border
func (m *mainModel) renderSidebar(width, height int) string {
	inner := max(width-2, 1) // border
	rows := max(height-2, 1) // border
	notes := m.notebook.Notes()

	b := getBuilder()
	defer putBuilder(b)

	lines := 0
	if len(notes) > 0 {
		cur := m.notebook.SelectedIndex()
		start, end := scrollWindow(cur, len(notes), rows, &m.noteOffset)
		for i := start; i < end; i++ {
			b.WriteString(m.renderNoteItem(notes[i], i == cur, inner))
			b.WriteString("\n")
			lines++
		}
	}
	for lines < rows {
		b.WriteString(strings.Repeat(" ", inner))
		b.WriteString("\n")
		lines++
	}

	border := styles.Border
	if m.focus == focusSidebar {
		border = border.BorderForeground(styles.Gutter.GetForeground())
	}
	return border.Render(strings.TrimSuffix(b.String(), "\n"))
}

// renderNoteItem renders one row of the note list
func (m mainModel) renderNoteItem(n *note.Note, selected bool, width int) string {
	mark := "  "
	if n.Pinned {
		mark = "• "
	}
	title := padRight(truncateString(n.Title, width-2), width-2)

	markStyle, titleStyle := styles.Pin, styles.Note
	if selected {
		markStyle = styles.WithSelection(markStyle)
		titleStyle = styles.WithSelection(titleStyle)
	}
	return markStyle.Render(mark) + titleStyle.Render(title)
}

// ============================================================================
// Editor
// ============================================================================

// renderEditor renders the title and blocks of the open note
func (m *mainModel) renderEditor(width, height int) string {
	n := m.notebook.Selected()
	if n == nil {
		return padBlock(styles.Muted.Render("No open notes. Open the sidebar and press n to create one."), width, height)
	}

	b := getBuilder()
	defer putBuilder(b)

	title := "  " + styles.Header.Render(truncateString(n.Title, max(width-6, 1)))
	if n.Pinned {
		title += styles.Pin.Render(" •")
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	textWidth := max(width-4, 1) // gutter + marker
	lines := 2
	if len(n.Blocks) > 0 {
		start, end := scrollWindow(m.cursor, len(n.Blocks), max((height-lines)/2, 1), &m.offset)
		for i := start; i < end && lines < height; i++ {
			block := m.renderBlock(n.Blocks[i], i == m.cursor, textWidth)
			for _, line := range strings.Split(block, "\n") {
				if lines >= height {
					break
				}
				b.WriteString(line)
				b.WriteString("\n")
				lines++
			}
		}
	}
	return padBlock(strings.TrimSuffix(b.String(), "\n"), width, height)
}

// renderBlock renders a single block with its gutter
func (m mainModel) renderBlock(blk note.Block, selected bool, width int) string {
	gutter := "  "
	if selected {
		if m.focus == focusEditor {
			gutter = styles.Gutter.Render("▌ ")
		} else {
			gutter = styles.Muted.Render("▌ ")
		}
	}

	marker := ""
	base := styles.Text
	switch b := blk.(type) {
	case note.HeaderBlock:
		base = styles.Header
	case note.TodoBlock:
		marker = "☐ "
		base = styles.Todo
		if b.Checked {
			marker = "☑ "
			base = styles.Checked
		}
	}

	content := m.renderBlockText(blk, selected, base)
	body := lipgloss.NewStyle().Width(width - lipgloss.Width(marker)).Render(content)

	indent := strings.Repeat(" ", lipgloss.Width(gutter)+lipgloss.Width(marker))
	lines := strings.Split(body, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = gutter + styles.Muted.Render(marker) + lines[i]
		} else {
			lines[i] = indent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// renderBlockText paints the text of a block, or the live input while it
// is being edited
func (m mainModel) renderBlockText(blk note.Block, selected bool, base lipgloss.Style) string {
	editing := selected && m.editing
	at, _ := note.Annotate(blk)
	if editing {
		// The block already holds the input value, only the cursor is added
		return styles.Paint(at, PaintOptions{Base: base, Cursor: m.editCursor()})
	}
	if at.Raw == "" {
		return styles.Muted.Render(placeholder)
	}
	return styles.Paint(at, PaintOptions{Base: base, Cursor: NoCursor})
}

// ============================================================================
// Status Line
// ============================================================================

// renderStatus renders the key hints or the latest status message
func (m mainModel) renderStatus(width int) string {
	if m.status != "" {
		return styles.Status.Render(truncateString(m.status, width))
	}

	var hints string
	switch {
	case m.editing:
		hints = "esc done • ctrl+b sidebar"
	case m.focus == focusSidebar:
		hints = "↑/↓ select • n new • p pin • w close • tab editor • q quit"
	default:
		hints = "↑/↓ move • enter edit • space check • o/t/h add • d delete • y copy • ctrl+b sidebar • q quit"
	}

	if n := m.notebook.Selected(); n != nil {
		hints = fmt.Sprintf("%s • %s", n.Title, hints)
	}
	return styles.Status.Render(truncateString(hints, width))
}

// padBlock pads s to exactly width x height cells
func padBlock(s string, width, height int) string {
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(s)
}
