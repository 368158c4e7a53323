package note

import (
	"github.com/google/uuid"

	"github.com/GabrielSantos23/notepad/internal/markdown"
)

// BlockKind identifies a block variant.
type BlockKind int

const (
	KindHeader BlockKind = iota
	KindText
	KindTodo
)

func (k BlockKind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindText:
		return "text"
	case KindTodo:
		return "todo"
	default:
		return "unknown"
	}
}

// Block is one editable field of a note. The set of variants is closed:
// HeaderBlock, TextBlock and TodoBlock.
type Block interface {
	ID() string
	Kind() BlockKind
	Text() string
	sealed()
}

// HeaderBlock is a note heading.
type HeaderBlock struct {
	BlockID string
	Content string
}

func (b HeaderBlock) ID() string      { return b.BlockID }
func (b HeaderBlock) Kind() BlockKind { return KindHeader }
func (b HeaderBlock) Text() string    { return b.Content }
func (HeaderBlock) sealed()           {}

// TextBlock is a paragraph.
type TextBlock struct {
	BlockID string
	Content string
}

func (b TextBlock) ID() string      { return b.BlockID }
func (b TextBlock) Kind() BlockKind { return KindText }
func (b TextBlock) Text() string    { return b.Content }
func (TextBlock) sealed()           {}

// TodoBlock is a checklist item.
type TodoBlock struct {
	BlockID string
	Content string
	Checked bool
}

func (b TodoBlock) ID() string      { return b.BlockID }
func (b TodoBlock) Kind() BlockKind { return KindTodo }
func (b TodoBlock) Text() string    { return b.Content }
func (TodoBlock) sealed()           {}

// NewID returns a fresh block or note ID.
func NewID() string {
	return uuid.NewString()
}

// NewBlock creates an empty block of the given kind with a fresh ID.
func NewBlock(kind BlockKind, text string) Block {
	id := NewID()
	switch kind {
	case KindHeader:
		return HeaderBlock{BlockID: id, Content: text}
	case KindTodo:
		return TodoBlock{BlockID: id, Content: text}
	default:
		return TextBlock{BlockID: id, Content: text}
	}
}

// WithText returns a copy of b holding text. ID, kind and check state are kept.
func WithText(b Block, text string) Block {
	switch b := b.(type) {
	case HeaderBlock:
		b.Content = text
		return b
	case TextBlock:
		b.Content = text
		return b
	case TodoBlock:
		b.Content = text
		return b
	}
	return b
}

// Annotate returns the inline styling for a block's text. Paragraphs and
// checklist items are styled; headers are not.
func Annotate(b Block) (markdown.AnnotatedText, bool) {
	switch b.(type) {
	case TextBlock, TodoBlock:
		return markdown.Annotate(b.Text()), true
	default:
		return markdown.AnnotatedText{Raw: b.Text()}, false
	}
}
