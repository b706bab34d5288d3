package kvconf

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching. Every error returned by the
// initialization and accessor methods matches exactly one of them.
var (
	// ErrKeyNotFound is matched by *KeyNotFoundError.
	ErrKeyNotFound = errors.New("kvconf: key not found")

	// ErrSyntax is matched by *SyntaxError.
	ErrSyntax = errors.New("kvconf: syntax error")

	// ErrInvalidKey is matched by *InvalidKeyError.
	ErrInvalidKey = errors.New("kvconf: invalid key")

	// ErrFileAccess is matched by *FileAccessError.
	ErrFileAccess = errors.New("kvconf: file access error")
)

// KeyNotFoundError is returned by accessors asked for an absent key.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("kvconf: key not found: %q", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool { return target == ErrKeyNotFound }

// SyntaxError reports an argument or line that is neither a key-value pair
// nor an option.
type SyntaxError struct {
	Text   string // Offending argument or line, verbatim
	Source string // "cli" or "file:<name>"
	Line   int    // 1-based line number; 0 for command-line arguments
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("kvconf: invalid syntax in %s line %d: %q", e.Source, e.Line, e.Text)
	}
	return fmt.Sprintf("kvconf: invalid syntax in %s: %q", e.Source, e.Text)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// InvalidKeyError reports a key or option rejected by the allow-list, or a
// duplicate passed to AddEntry.
type InvalidKeyError struct {
	Name      string
	Option    bool // Name was given as --option
	Duplicate bool // Rejected by AddEntry because the key already exists
}

func (e *InvalidKeyError) Error() string {
	switch {
	case e.Duplicate:
		return fmt.Sprintf("kvconf: invalid key %q: already exists", e.Name)
	case e.Option:
		return fmt.Sprintf("kvconf: invalid option %q: not allowed", e.Name)
	default:
		return fmt.Sprintf("kvconf: invalid key %q: not allowed", e.Name)
	}
}

func (e *InvalidKeyError) Is(target error) bool { return target == ErrInvalidKey }

// FileAccessError reports a configuration file that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("kvconf: cannot read config file %s", e.Path)
	}
	return fmt.Sprintf("kvconf: cannot read config file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Is(target error) bool { return target == ErrFileAccess }

func (e *FileAccessError) Unwrap() error { return e.Err }
