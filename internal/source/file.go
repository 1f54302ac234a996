package source

import (
	"fmt"
	"os"
	"strings"
)

// File is a source file loaded fully into memory. The lexer walks Content
// byte by byte; the diagnostic renderer asks for individual lines.
type File struct {
	Name    string
	Content []byte

	lines []string
}

// Load reads path from disk into a File.
func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", path, err)
	}
	return &File{Name: path, Content: content}, nil
}

// NewVirtual wraps an in-memory buffer as a File. Tests and the
// interpolation sub-scanner use this.
func NewVirtual(name string, content []byte) *File {
	return &File{Name: name, Content: content}
}

// Line returns the one-based line n without its trailing newline.
// Out-of-range lines yield the empty string.
func (f *File) Line(n int) string {
	f.splitLines()
	if n < 1 || n > len(f.lines) {
		return ""
	}
	return f.lines[n-1]
}

// NumLines returns the number of lines in the file.
func (f *File) NumLines() int {
	f.splitLines()
	return len(f.lines)
}

func (f *File) splitLines() {
	if f.lines != nil {
		return
	}
	text := strings.ReplaceAll(string(f.Content), "\r\n", "\n")
	f.lines = strings.Split(text, "\n")
}
