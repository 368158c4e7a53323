package ui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if isTerminal(f) {
		t.Error("regular file reported as a terminal")
	}
}

func TestOpenTTYFallback(t *testing.T) {
	// Without a controlling terminal the fallback comes back unchanged
	if _, err := os.Stat("/dev/tty"); err == nil {
		if f, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0); err == nil {
			f.Close()
			t.Skip("process has a controlling terminal")
		}
	}
	if got := openTTY(os.O_RDONLY, os.Stdin); got != os.Stdin {
		t.Errorf("openTTY() = %v, want the fallback", got.Name())
	}
}
