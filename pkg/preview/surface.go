// Package preview holds the render surfaces a composed document is handed to.
package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/atotto/clipboard"
)

// Surface displays a composed document. Implementations must not modify it.
type Surface interface {
	Render(doc string) error
}

// Memory keeps the most recently rendered document.
type Memory struct {
	mu      sync.Mutex
	doc     string
	renders int
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Render(doc string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = doc
	m.renders++
	return nil
}

// Document returns the last rendered document.
func (m *Memory) Document() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doc
}

// Renders counts how many documents have been rendered.
func (m *Memory) Renders() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.renders
}

// HTMLFile writes each document to Path, replacing the previous one, so a
// browser pointed at it acts as the sandboxed host.
type HTMLFile struct {
	Path string
}

func (f HTMLFile) Render(doc string) error {
	if f.Path == "" {
		return fmt.Errorf("preview file path is empty")
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create preview directory: %w", err)
		}
	}

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write preview %s: %w", f.Path, err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace preview %s: %w", f.Path, err)
	}
	return nil
}

// Clipboard copies each document to the system clipboard.
type Clipboard struct{}

func (Clipboard) Render(doc string) error {
	if err := clipboard.WriteAll(doc); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Multi renders to every surface in order and stops at the first error.
type Multi []Surface

func (m Multi) Render(doc string) error {
	for _, s := range m {
		if err := s.Render(doc); err != nil {
			return err
		}
	}
	return nil
}
