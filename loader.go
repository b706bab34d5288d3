package kvconf

import (
	"io"
	"log/slog"

	"github.com/Azhovan/kvconf/sourcefile"
)

// InitFromArgs loads command-line arguments, as found in os.Args. args[0],
// the program name, is skipped. Every other argument must be either
// "key=value" (the value ends at the first whitespace) or "--option" (stored
// under "option" with an empty value).
//
// Arguments are applied left to right and overwrite existing keys. The first
// bad argument aborts the call with a *SyntaxError or *InvalidKeyError;
// entries stored before it are kept, so a Config that failed to initialize
// should be discarded.
func (c *Config) InitFromArgs(args []string) error {
	if len(args) < 2 {
		return nil
	}
	for _, arg := range args[1:] {
		tok, ok := tokenizeArg(arg)
		if !ok {
			return &SyntaxError{Text: arg, Source: sourceCLI}
		}
		if err := c.admit(tok); err != nil {
			return err
		}
		c.set(tok.key, tok.value, Origin{Source: sourceCLI})
	}
	return nil
}

// InitFromFile loads "key=value" lines from the file at path. Blank lines and
// lines starting with '#' are ignored; the value is the rest of the line
// without surrounding whitespace. File values overwrite existing keys, so a
// file loaded after InitFromArgs takes precedence over the command line for
// the keys it sets.
//
// SourcePath and SourceFileName are updated before the file is opened. A file
// that cannot be opened or read yields a *FileAccessError.
func (c *Config) InitFromFile(path string) error {
	c.filePath = path
	c.fileName = sourcefile.FileName(path)

	r, err := sourcefile.Open(path)
	if err != nil {
		return &FileAccessError{Path: path, Err: err}
	}
	defer r.Close()

	n, err := c.load(r, fileSource(c.fileName))
	if re, isRead := err.(readError); isRead {
		return &FileAccessError{Path: path, Err: re.err}
	}
	if err != nil {
		return err
	}

	c.log.Info("config file loaded",
		slog.String("path", path),
		slog.Int("entries", n),
	)
	return nil
}

// InitFromReader loads file-format lines from r. name identifies the stream
// in errors and provenance. It does not change SourcePath. A read failure is
// reported as a *FileAccessError with Path set to name.
func (c *Config) InitFromReader(name string, r io.Reader) error {
	_, err := c.load(sourcefile.NewReader(r), fileSource(name))
	if re, isRead := err.(readError); isRead {
		return &FileAccessError{Path: name, Err: re.err}
	}
	return err
}

// readError marks a stream failure so callers can tell it from a
// line-level error.
type readError struct {
	err error
}

func (e readError) Error() string { return e.err.Error() }

// load applies every line of r and returns the number of entries stored.
func (c *Config) load(r *sourcefile.Reader, source string) (int, error) {
	n := 0
	for line, ok := r.Next(); ok; line, ok = r.Next() {
		tok, matched := tokenizeLine(line.Text)
		if !matched {
			return n, &SyntaxError{Text: line.Text, Source: source, Line: line.Number}
		}
		if err := c.admit(tok); err != nil {
			return n, err
		}
		c.set(tok.key, tok.value, Origin{Source: source, Line: line.Number})
		n++
	}
	if err := r.Err(); err != nil {
		return n, readError{err: err}
	}
	return n, nil
}
