package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no system clipboard is available.
var ErrUnsupported = errors.New("clipboard unavailable")

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard using the platform clipboard
type systemClipboard struct{}

// System returns the platform clipboard
func System() Clipboard {
	return systemClipboard{}
}

// Copy copies text to the system clipboard
func (systemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}

// ============================================================================
// In-memory Clipboard
// ============================================================================

// Memory records copied text (useful for testing)
type Memory struct {
	mu     sync.Mutex
	copies []string
	err    error
}

// FailWith makes every following Copy return err
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Copy records text
func (m *Memory) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.copies = append(m.copies, text)
	return nil
}

// Last returns the most recent copy and whether there was one
func (m *Memory) Last() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.copies) == 0 {
		return "", false
	}
	return m.copies[len(m.copies)-1], true
}
