package kvconf

import "strconv"

// Source names recorded in provenance.
const (
	sourceCLI   = "cli"
	sourceEntry = "entry"
)

// Origin describes where a stored value came from.
type Origin struct {
	Source string `json:"source"`         // "cli", "file:<name>" or "entry"
	Line   int    `json:"line,omitempty"` // 1-based line for file sources; 0 otherwise
}

// Origin returns the source that last set key.
func (c *Config) Origin(key string) (Origin, bool) {
	o, ok := c.origins[key]
	return o, ok
}

func fileSource(name string) string {
	return "file:" + name
}

// String renders o as "cli", "entry" or "file:<name>:<line>".
func (o Origin) String() string {
	if o.Line > 0 {
		return o.Source + ":" + strconv.Itoa(o.Line)
	}
	return o.Source
}
