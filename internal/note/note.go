// Package note holds the in-memory, block-based note model.
package note

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrBlockNotFound is returned when a block ID is not part of a note.
	ErrBlockNotFound = errors.New("block not found")
	// ErrNoteNotFound is returned when a notebook index is out of range.
	ErrNoteNotFound = errors.New("note not found")
)

// Note is an ordered list of blocks under a title.
type Note struct {
	ID     string
	Title  string
	Pinned bool
	Blocks []Block
}

// New creates a note with a fresh ID.
func New(title string, blocks ...Block) *Note {
	return &Note{ID: NewID(), Title: title, Blocks: blocks}
}

// Index returns the position of the block with id, or -1.
func (n *Note) Index(id string) int {
	for i, b := range n.Blocks {
		if b.ID() == id {
			return i
		}
	}
	return -1
}

// Block returns the block with id.
func (n *Note) Block(id string) (Block, error) {
	i := n.Index(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}
	return n.Blocks[i], nil
}

// SetText replaces the raw text of a block.
func (n *Note) SetText(id, text string) error {
	i := n.Index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}
	n.Blocks[i] = WithText(n.Blocks[i], text)
	return nil
}

// ToggleTodo flips the check state of a checklist item and returns the new
// state. Toggling a block that is not a checklist item is a no-op.
func (n *Note) ToggleTodo(id string) (bool, error) {
	i := n.Index(id)
	if i < 0 {
		return false, fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}
	todo, ok := n.Blocks[i].(TodoBlock)
	if !ok {
		return false, nil
	}
	todo.Checked = !todo.Checked
	n.Blocks[i] = todo
	return todo.Checked, nil
}

// InsertAfter adds an empty block of kind after the block with id. An empty
// id appends to the end.
func (n *Note) InsertAfter(id string, kind BlockKind) (Block, error) {
	at := len(n.Blocks)
	if id != "" {
		i := n.Index(id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, id)
		}
		at = i + 1
	}

	b := NewBlock(kind, "")
	n.Blocks = append(n.Blocks, nil)
	copy(n.Blocks[at+1:], n.Blocks[at:])
	n.Blocks[at] = b
	return b, nil
}

// Remove deletes the block with id.
func (n *Note) Remove(id string) error {
	i := n.Index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}
	n.Blocks = append(n.Blocks[:i], n.Blocks[i+1:]...)
	return nil
}

// ============================================================================
// Notebook
// ============================================================================

// Notebook is the ordered set of open notes with one selected. Pinned notes
// are kept ahead of unpinned ones.
type Notebook struct {
	notes    []*Note
	selected int
}

// NewNotebook creates a notebook with the first note selected.
func NewNotebook(notes ...*Note) *Notebook {
	nb := &Notebook{notes: notes}
	nb.sortPinned()
	return nb
}

// Notes returns the notes in display order.
func (nb *Notebook) Notes() []*Note {
	return nb.notes
}

// Len returns the number of notes.
func (nb *Notebook) Len() int {
	return len(nb.notes)
}

// SelectedIndex returns the index of the selected note, or -1 when empty.
func (nb *Notebook) SelectedIndex() int {
	if len(nb.notes) == 0 {
		return -1
	}
	return nb.selected
}

// Selected returns the selected note, or nil when the notebook is empty.
func (nb *Notebook) Selected() *Note {
	if len(nb.notes) == 0 {
		return nil
	}
	return nb.notes[nb.selected]
}

// Select selects the note at i, clamped to the notebook.
func (nb *Notebook) Select(i int) *Note {
	if len(nb.notes) == 0 {
		return nil
	}
	nb.selected = clamp(i, 0, len(nb.notes)-1)
	return nb.notes[nb.selected]
}

// Add appends a note holding one empty paragraph and selects it.
func (nb *Notebook) Add(title string) *Note {
	n := New(title, NewBlock(KindText, ""))
	nb.notes = append(nb.notes, n)
	nb.selected = len(nb.notes) - 1
	return n
}

// Close removes the note at i. The selection stays on the same note when it
// survives, otherwise it moves to the nearest remaining note.
func (nb *Notebook) Close(i int) (*Note, error) {
	if i < 0 || i >= len(nb.notes) {
		return nil, fmt.Errorf("%w: index %d", ErrNoteNotFound, i)
	}
	closed := nb.notes[i]
	nb.notes = append(nb.notes[:i], nb.notes[i+1:]...)
	if i < nb.selected {
		nb.selected--
	}
	nb.selected = clamp(nb.selected, 0, max(len(nb.notes)-1, 0))
	return closed, nil
}

// TogglePin flips the pinned state of the note at i and reorders the
// notebook. The selection follows the selected note.
func (nb *Notebook) TogglePin(i int) (bool, error) {
	if i < 0 || i >= len(nb.notes) {
		return false, fmt.Errorf("%w: index %d", ErrNoteNotFound, i)
	}
	n := nb.notes[i]
	n.Pinned = !n.Pinned
	nb.sortPinned()
	return n.Pinned, nil
}

func (nb *Notebook) sortPinned() {
	current := nb.Selected()
	sort.SliceStable(nb.notes, func(i, j int) bool {
		return nb.notes[i].Pinned && !nb.notes[j].Pinned
	})
	for i, n := range nb.notes {
		if n == current {
			nb.selected = i
			break
		}
	}
}

func clamp(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// ============================================================================
// Sample content
// ============================================================================

// Sample returns the notebook the application starts with.
func Sample() *Notebook {
	quick := New("My notes 1",
		NewBlock(KindHeader, "Quick Note"),
		NewBlock(KindText, "Jot down some **bold** and *italic* text."),
		NewBlock(KindText, "They found Mary, as usual, deep in the study of thorough-bass and human nature; and had some extracts to admire, and some new observations of threadbare morality to listen to."),
		NewBlock(KindText, "Make a to-do list"),
		TodoBlock{BlockID: NewID(), Content: "Wake up", Checked: true},
		TodoBlock{BlockID: NewID(), Content: "Brush teeth", Checked: true},
		TodoBlock{BlockID: NewID(), Content: "Eat breakfast"},
	)

	notes := []*Note{quick}
	for i := 2; i <= 8; i++ {
		title := fmt.Sprintf("My notes %d", i)
		notes = append(notes, New(title, NewBlock(KindText, "")))
	}
	return NewNotebook(notes...)
}
