package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"unicode/utf8"
)

var (
	// ErrInvalidText is returned when a file is not valid UTF-8 text.
	ErrInvalidText = errors.New("stream did not contain valid UTF-8")
)

// Loader provides the full text of a named file.
type Loader interface {
	Load(path string) (string, error)
}

// FileLoader reads files from the local filesystem.
type FileLoader struct{}

// NewFileLoader returns a Loader backed by the local filesystem.
func NewFileLoader() FileLoader {
	return FileLoader{}
}

// Load reads the whole file at path. The file is closed before Load returns.
func (FileLoader) Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read file %s: %w", path, ErrInvalidText)
	}
	return string(data), nil
}

// MemoryLoader serves files from an in-memory map and guards access with a RWMutex.
type MemoryLoader struct {
	mu    sync.RWMutex
	files map[string]string
}

// NewMemoryLoader initialises a MemoryLoader with a copy of files.
func NewMemoryLoader(files map[string]string) *MemoryLoader {
	m := &MemoryLoader{files: make(map[string]string, len(files))}
	for path, text := range files {
		m.files[path] = text
	}
	return m
}

// Load returns the text stored under path.
func (m *MemoryLoader) Load(path string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	text, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("read file: %w", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist})
	}
	return text, nil
}

// Store adds or replaces the text stored under path.
func (m *MemoryLoader) Store(path, text string) {
	m.mu.Lock()
	m.files[path] = text
	m.mu.Unlock()
}
