package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GabrielSantos23/notepad/internal/clipboard"
	"github.com/GabrielSantos23/notepad/internal/logger"
	"github.com/GabrielSantos23/notepad/internal/markdown"
	"github.com/GabrielSantos23/notepad/internal/note"
)

// ============================================================================
// Options
// ============================================================================

// Options configures the editor
type Options struct {
	Sidebar   bool
	Clipboard clipboard.Clipboard
	Logger    *logger.Logger
}

// ============================================================================
// Main Model - sidebar of notes + block editor
// ============================================================================

// focusArea is the pane receiving keys
type focusArea int

const (
	focusEditor  focusArea = iota // Block list of the open note
	focusSidebar                  // Note list
)

// clearStatusMsg clears the status line after a delay
type clearStatusMsg struct{ id int }

// mainModel is the Bubble Tea model for the notepad
type mainModel struct {
	width    int
	height   int
	quitting bool

	notebook    *note.Notebook
	sidebarOpen bool
	focus       focusArea

	// Editor state
	cursor  int // selected block
	offset  int // block scroll offset
	editing bool
	input   textinput.Model

	// Sidebar state
	noteOffset int

	status   string
	statusID int

	clip clipboard.Clipboard
	log  *logger.Logger
}

// newMainModel creates a model over the given notebook
func newMainModel(nb *note.Notebook, opts Options) mainModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.System()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return mainModel{
		notebook:    nb,
		sidebarOpen: opts.Sidebar,
		focus:       focusEditor,
		input:       ti,
		clip:        clip,
		log:         log,
	}
}

// Init implements tea.Model
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches a key press to the focused pane
func (m mainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+b":
		m.toggleSidebar()
		return m, nil
	}

	if m.editing {
		return m.handleEditKey(msg)
	}
	if m.focus == focusSidebar {
		return m, m.handleSidebarKey(msg)
	}
	return m, m.handleEditorKey(msg)
}

// toggleSidebar opens or closes the note list
func (m *mainModel) toggleSidebar() {
	m.sidebarOpen = !m.sidebarOpen
	if !m.sidebarOpen {
		m.focus = focusEditor
	}
}

// ============================================================================
// Editor Pane
// ============================================================================

// handleEditorKey processes keys while browsing blocks
func (m *mainModel) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	n := m.notebook.Selected()

	if msg.Type == tea.KeySpace {
		return m.toggleTodo(n)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return tea.Quit
	case "tab":
		if m.sidebarOpen {
			m.focus = focusSidebar
		}
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.moveCursor(m.blockCount())
	case "enter", "i":
		return m.startEditing()
	case "x":
		return m.toggleTodo(n)
	case "o":
		return m.insertBlock(n, note.KindText)
	case "t":
		return m.insertBlock(n, note.KindTodo)
	case "h":
		return m.insertBlock(n, note.KindHeader)
	case "d":
		return m.removeBlock(n)
	case "y":
		return m.copyBlock()
	}
	return nil
}

// blockCount returns the number of blocks in the open note
func (m mainModel) blockCount() int {
	if n := m.notebook.Selected(); n != nil {
		return len(n.Blocks)
	}
	return 0
}

// currentBlock returns the block under the cursor, or nil
func (m mainModel) currentBlock() note.Block {
	n := m.notebook.Selected()
	if n == nil || m.cursor < 0 || m.cursor >= len(n.Blocks) {
		return nil
	}
	return n.Blocks[m.cursor]
}

// moveCursor moves the block cursor by delta, clamping to valid range
func (m *mainModel) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, max(0, m.blockCount()-1))
}

// startEditing opens the block under the cursor for text input
func (m *mainModel) startEditing() tea.Cmd {
	b := m.currentBlock()
	if b == nil {
		return nil
	}
	m.editing = true
	m.input.SetValue(b.Text())
	m.input.CursorEnd()
	return m.input.Focus()
}

// stopEditing leaves text input mode
func (m *mainModel) stopEditing() {
	m.editing = false
	m.input.Blur()
}

// toggleTodo flips the check state of the block under the cursor
func (m *mainModel) toggleTodo(n *note.Note) tea.Cmd {
	b := m.currentBlock()
	if b == nil || b.Kind() != note.KindTodo {
		return nil
	}
	checked, err := n.ToggleTodo(b.ID())
	if err != nil {
		m.log.BlockError("toggle", b.ID(), err)
		return m.setStatus(err.Error())
	}
	m.log.Debug("todo toggled", "block", b.ID(), "checked", checked)
	return nil
}

// insertBlock adds an empty block after the cursor and starts editing it
func (m *mainModel) insertBlock(n *note.Note, kind note.BlockKind) tea.Cmd {
	if n == nil {
		return nil
	}
	after := ""
	if b := m.currentBlock(); b != nil {
		after = b.ID()
	}
	inserted, err := n.InsertAfter(after, kind)
	if err != nil {
		m.log.BlockError("insert", after, err)
		return m.setStatus(err.Error())
	}
	m.cursor = n.Index(inserted.ID())
	return m.startEditing()
}

// removeBlock deletes the block under the cursor
func (m *mainModel) removeBlock(n *note.Note) tea.Cmd {
	b := m.currentBlock()
	if b == nil {
		return nil
	}
	if err := n.Remove(b.ID()); err != nil {
		m.log.BlockError("remove", b.ID(), err)
		return m.setStatus(err.Error())
	}
	m.moveCursor(0)
	return m.setStatus("Block deleted")
}

// copyBlock copies the raw markdown of the block under the cursor
func (m *mainModel) copyBlock() tea.Cmd {
	b := m.currentBlock()
	if b == nil {
		return nil
	}
	if err := m.clip.Copy(b.Text()); err != nil {
		m.log.ClipboardError(err)
		return m.setStatus("Copy failed: " + err.Error())
	}
	return m.setStatus("Copied to clipboard")
}

// ============================================================================
// Text Input
// ============================================================================

// handleEditKey forwards keys to the text input and writes every change
// back to the note, so styling follows each keystroke
func (m mainModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.stopEditing()
		return m, nil
	case "tab":
		return m, nil
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if value := m.input.Value(); value != prev {
		m.commitText(value)
	}
	return m, cmd
}

// commitText stores value in the block being edited
func (m *mainModel) commitText(value string) {
	n := m.notebook.Selected()
	b := m.currentBlock()
	if n == nil || b == nil {
		return
	}
	if err := n.SetText(b.ID(), value); err != nil {
		m.log.BlockError("edit", b.ID(), err)
		return
	}
	m.log.BlockEdited(n.ID, b.ID(), len(value))

	start := time.Now()
	if at, styled := note.Annotate(note.WithText(b, value)); styled {
		m.log.BlockAnnotated(b.ID(), len(at.Ranges), time.Since(start))
	}
}

// editCursor returns the byte offset of the input cursor in its value
func (m mainModel) editCursor() int {
	return markdown.ConvertOffset(m.input.Value(), m.input.Position(), markdown.Runes, markdown.Bytes)
}

// ============================================================================
// Sidebar Pane
// ============================================================================

// handleSidebarKey processes keys while the note list has focus
func (m *mainModel) handleSidebarKey(msg tea.KeyMsg) tea.Cmd {
	nb := m.notebook

	switch msg.String() {
	case "q":
		m.quitting = true
		return tea.Quit
	case "tab", "enter", "esc":
		m.focus = focusEditor
	case "up", "k":
		m.selectNote(nb.SelectedIndex() - 1)
	case "down", "j":
		m.selectNote(nb.SelectedIndex() + 1)
	case "n":
		n := nb.Add(fmt.Sprintf("My notes %d", nb.Len()+1))
		m.log.NoteSelected(n.ID, n.Title)
		m.resetEditor()
		m.focus = focusEditor
	case "p":
		if nb.Selected() == nil {
			return nil
		}
		pinned, err := nb.TogglePin(nb.SelectedIndex())
		if err != nil {
			return m.setStatus(err.Error())
		}
		if pinned {
			return m.setStatus("Pinned " + nb.Selected().Title)
		}
		return m.setStatus("Unpinned " + nb.Selected().Title)
	case "w":
		closed, err := nb.Close(nb.SelectedIndex())
		if err != nil {
			return m.setStatus(err.Error())
		}
		m.resetEditor()
		return m.setStatus("Closed " + closed.Title)
	}
	return nil
}

// selectNote switches the open note
func (m *mainModel) selectNote(i int) {
	prev := m.notebook.Selected()
	n := m.notebook.Select(i)
	if n == nil || n == prev {
		return
	}
	m.log.NoteSelected(n.ID, n.Title)
	m.resetEditor()
}

// resetEditor moves the block cursor to the top of the open note
func (m *mainModel) resetEditor() {
	m.cursor = 0
	m.offset = 0
	m.stopEditing()
}

// ============================================================================
// Status
// ============================================================================

// setStatus shows msg on the status line until it expires
func (m *mainModel) setStatus(msg string) tea.Cmd {
	m.statusID++
	m.status = msg
	id := m.statusID
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
