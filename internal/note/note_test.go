package note

import (
	"errors"
	"testing"

	"github.com/GabrielSantos23/notepad/internal/markdown"
)

func TestWithTextKeepsIdentity(t *testing.T) {
	tests := []struct {
		name  string
		block Block
	}{
		{name: "header", block: HeaderBlock{BlockID: "h", Content: "old"}},
		{name: "text", block: TextBlock{BlockID: "p", Content: "old"}},
		{name: "todo", block: TodoBlock{BlockID: "t", Content: "old", Checked: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithText(tt.block, "new")
			if got.ID() != tt.block.ID() {
				t.Errorf("ID = %q, want %q", got.ID(), tt.block.ID())
			}
			if got.Kind() != tt.block.Kind() {
				t.Errorf("Kind = %s, want %s", got.Kind(), tt.block.Kind())
			}
			if got.Text() != "new" {
				t.Errorf("Text = %q, want %q", got.Text(), "new")
			}
			if tt.block.Text() != "old" {
				t.Errorf("original block modified: %q", tt.block.Text())
			}
			if todo, ok := got.(TodoBlock); ok && !todo.Checked {
				t.Error("check state lost")
			}
		})
	}
}

func TestAnnotateBlock(t *testing.T) {
	tests := []struct {
		name       string
		block      Block
		wantStyled bool
		wantRanges int
	}{
		{name: "header is not styled", block: HeaderBlock{Content: "**Quick** Note"}, wantStyled: false, wantRanges: 0},
		{name: "paragraph is styled", block: TextBlock{Content: "some **bold** and *italic*"}, wantStyled: true, wantRanges: 2},
		{name: "todo is styled", block: TodoBlock{Content: "buy `milk`"}, wantStyled: true, wantRanges: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, styled := Annotate(tt.block)
			if styled != tt.wantStyled {
				t.Errorf("styled = %v, want %v", styled, tt.wantStyled)
			}
			if at.Raw != tt.block.Text() {
				t.Errorf("Raw = %q, want %q", at.Raw, tt.block.Text())
			}
			if len(at.Ranges) != tt.wantRanges {
				t.Errorf("got %d ranges, want %d", len(at.Ranges), tt.wantRanges)
			}
		})
	}
}

func TestNoteEditing(t *testing.T) {
	p := NewBlock(KindText, "first")
	todo := NewBlock(KindTodo, "task")
	n := New("test", p, todo)

	if err := n.SetText(p.ID(), "**edited**"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	b, err := n.Block(p.ID())
	if err != nil {
		t.Fatalf("Block: %v", err)
	}
	if b.Text() != "**edited**" {
		t.Errorf("Text = %q", b.Text())
	}
	at, _ := Annotate(b)
	if got := at.OfKind(markdown.Bold); len(got) != 1 || at.Text(got[0]) != "edited" {
		t.Errorf("bold ranges after edit = %v", got)
	}

	checked, err := n.ToggleTodo(todo.ID())
	if err != nil || !checked {
		t.Fatalf("ToggleTodo = %v, %v; want true, nil", checked, err)
	}
	checked, _ = n.ToggleTodo(todo.ID())
	if checked {
		t.Error("second toggle should uncheck")
	}
	if checked, err := n.ToggleTodo(p.ID()); err != nil || checked {
		t.Errorf("toggling a paragraph = %v, %v; want false, nil", checked, err)
	}

	inserted, err := n.InsertAfter(p.ID(), KindText)
	if err != nil {
		t.Fatalf("InsertAfter: %v", err)
	}
	if n.Index(inserted.ID()) != 1 || len(n.Blocks) != 3 {
		t.Errorf("inserted at %d of %d, want 1 of 3", n.Index(inserted.ID()), len(n.Blocks))
	}
	appended, _ := n.InsertAfter("", KindTodo)
	if n.Index(appended.ID()) != 3 {
		t.Errorf("appended at %d, want 3", n.Index(appended.ID()))
	}

	if err := n.Remove(inserted.ID()); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if n.Index(inserted.ID()) != -1 || len(n.Blocks) != 3 {
		t.Error("block not removed")
	}
}

func TestNoteUnknownBlock(t *testing.T) {
	n := New("empty")

	if _, err := n.Block("missing"); !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("Block error = %v, want ErrBlockNotFound", err)
	}
	if err := n.SetText("missing", "x"); !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("SetText error = %v, want ErrBlockNotFound", err)
	}
	if _, err := n.ToggleTodo("missing"); !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("ToggleTodo error = %v, want ErrBlockNotFound", err)
	}
	if _, err := n.InsertAfter("missing", KindText); !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("InsertAfter error = %v, want ErrBlockNotFound", err)
	}
	if err := n.Remove("missing"); !errors.Is(err, ErrBlockNotFound) {
		t.Errorf("Remove error = %v, want ErrBlockNotFound", err)
	}
}

func TestNotebookSelection(t *testing.T) {
	a, b, c := New("a"), New("b"), New("c")
	nb := NewNotebook(a, b, c)

	if nb.Selected() != a {
		t.Fatalf("initial selection = %q, want a", nb.Selected().Title)
	}
	if got := nb.Select(10); got != c {
		t.Errorf("Select(10) = %q, want c", got.Title)
	}

	// Closing a note before the selection keeps the selected note.
	if _, err := nb.Close(0); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if nb.Selected() != c {
		t.Errorf("after closing a, selected = %q, want c", nb.Selected().Title)
	}

	// Closing the selected last note moves to the previous one.
	if _, err := nb.Close(1); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if nb.Selected() != b {
		t.Errorf("after closing c, selected = %q, want b", nb.Selected().Title)
	}

	if _, err := nb.Close(5); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("Close(5) error = %v, want ErrNoteNotFound", err)
	}

	if _, err := nb.Close(0); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if nb.Selected() != nil || nb.SelectedIndex() != -1 {
		t.Error("empty notebook should have no selection")
	}
}

func TestNotebookAdd(t *testing.T) {
	nb := NewNotebook()
	if nb.Selected() != nil {
		t.Fatal("new notebook should be empty")
	}

	n := nb.Add("fresh")
	if nb.Selected() != n || nb.Len() != 1 {
		t.Errorf("Add did not select the new note")
	}
	if len(n.Blocks) != 1 || n.Blocks[0].Kind() != KindText || n.Blocks[0].Text() != "" {
		t.Errorf("new note blocks = %v, want one empty paragraph", n.Blocks)
	}
}

func TestNotebookPinning(t *testing.T) {
	a, b, c := New("a"), New("b"), New("c")
	nb := NewNotebook(a, b, c)
	nb.Select(1)

	pinned, err := nb.TogglePin(2)
	if err != nil || !pinned {
		t.Fatalf("TogglePin = %v, %v", pinned, err)
	}

	want := []*Note{c, a, b}
	for i, n := range nb.Notes() {
		if n != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, n.Title, want[i].Title)
		}
	}
	if nb.Selected() != b {
		t.Errorf("selection = %q, want b", nb.Selected().Title)
	}

	if pinned, _ := nb.TogglePin(0); pinned {
		t.Error("second toggle should unpin")
	}
	if _, err := nb.TogglePin(-1); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("TogglePin(-1) error = %v, want ErrNoteNotFound", err)
	}
}

func TestSample(t *testing.T) {
	nb := Sample()
	if nb.Len() != 8 {
		t.Fatalf("sample has %d notes, want 8", nb.Len())
	}

	quick := nb.Selected()
	if quick.Title != "My notes 1" {
		t.Errorf("selected = %q, want My notes 1", quick.Title)
	}
	if len(quick.Blocks) != 7 {
		t.Fatalf("quick note has %d blocks, want 7", len(quick.Blocks))
	}
	if quick.Blocks[0].Kind() != KindHeader || quick.Blocks[0].Text() != "Quick Note" {
		t.Errorf("first block = %s %q", quick.Blocks[0].Kind(), quick.Blocks[0].Text())
	}

	var checked []bool
	for _, b := range quick.Blocks {
		if todo, ok := b.(TodoBlock); ok {
			checked = append(checked, todo.Checked)
		}
	}
	if len(checked) != 3 || !checked[0] || !checked[1] || checked[2] {
		t.Errorf("todo states = %v, want [true true false]", checked)
	}

	seen := map[string]bool{}
	for _, b := range quick.Blocks {
		if seen[b.ID()] {
			t.Errorf("duplicate block ID %s", b.ID())
		}
		seen[b.ID()] = true
	}
}
