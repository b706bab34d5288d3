package sourcefile

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/Azhovan/kvconf/internal/lex"
)

// CommentChar marks a line comment when it is the first non-whitespace character.
const CommentChar = '#'

// MaxLineSize bounds the length of a single line (1MB).
const MaxLineSize = 1024 * 1024

// Line is a non-blank, non-comment line with surrounding whitespace removed.
type Line struct {
	Number int // 1-based physical line number
	Text   string
}

// Reader yields the meaningful lines of a stream in order.
type Reader struct {
	scanner *bufio.Scanner
	closer  io.Closer
	number  int
	err     error
}

// NewReader wraps r. The caller keeps ownership of r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineSize)
	return &Reader{scanner: scanner}
}

// Open opens the file at path for reading. The returned error is the one
// reported by the operating system.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewReader(f)
	r.closer = f
	return r, nil
}

// Next returns the next meaningful line. It returns false at end of stream
// or on a read error; check Err afterwards.
func (r *Reader) Next() (Line, bool) {
	for r.scanner.Scan() {
		r.number++
		text := lex.TrimSpace(r.scanner.Text())
		if text == "" || text[0] == CommentChar {
			continue
		}
		return Line{Number: r.number, Text: text}, true
	}
	r.err = r.scanner.Err()
	return Line{}, false
}

// Err returns the first read error encountered, if any.
func (r *Reader) Err() error {
	return r.err
}

// Close releases the underlying file when the Reader was created by Open.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// ReadAll collects every remaining line.
func (r *Reader) ReadAll() ([]Line, error) {
	var lines []Line
	for line, ok := r.Next(); ok; line, ok = r.Next() {
		lines = append(lines, line)
	}
	return lines, r.Err()
}

// FileName returns the last element of path, or "" when path is empty.
func FileName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
