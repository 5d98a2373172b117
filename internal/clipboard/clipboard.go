// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/kubepick/kubepick/internal/domain"
)

// System writes to the platform clipboard and implements domain.Clipboard.
type System struct{}

// NewSystem creates a clipboard backed by the platform clipboard service.
func NewSystem() *System {
	return &System{}
}

// Set replaces the clipboard contents with text.
func (s *System) Set(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Memory stores the last value set and implements domain.Clipboard. Tests
// use it to observe what would have been copied.
type Memory struct {
	Contents string
	Err      error
}

// NewMemory creates an in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Set records text as the clipboard contents.
func (m *Memory) Set(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Contents = text
	return nil
}

// Verify both implementations satisfy domain.Clipboard
var _ domain.Clipboard = (*System)(nil)
var _ domain.Clipboard = (*Memory)(nil)
