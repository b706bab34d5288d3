package kvconf

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

type dumpFormat int

const (
	formatText dumpFormat = iota
	formatJSON
	formatYAML
	formatTOML
)

// dumpConfig holds options for Dump.
type dumpConfig struct {
	format      dumpFormat
	withSources bool   // Include the origin of each entry
	indent      string // Indentation for JSON output (default: "  ")
}

// WithSources includes the origin of each entry in the output.
func WithSources() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withSources = true
	}
}

// AsJSON outputs the store as a JSON object.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatJSON
	}
}

// AsYAML outputs the store as a YAML mapping.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatYAML
	}
}

// AsTOML outputs the store as a TOML document.
func AsTOML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatTOML
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  "); "" produces compact JSON.
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// dumpEntry is the structured form of an entry when sources are requested.
type dumpEntry struct {
	Value  string `json:"value" yaml:"value" toml:"value"`
	Source string `json:"source" yaml:"source" toml:"source"`
}

// Dump writes every stored entry to w, sorted by key.
//
// The default text format prints one "key=value" line per entry, and
// "--name" for entries with an empty value, so the output can be fed back
// through InitFromArgs or, without option lines, InitFromFile. WithSources
// appends the origin as a trailing "# ..." comment; such output is for
// reading only. AsJSON, AsYAML and AsTOML produce a flat mapping of key to
// value, or of key to {value, source} with WithSources.
func (c *Config) Dump(w io.Writer, opts ...DumpOption) error {
	config := dumpConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(&config)
	}

	switch config.format {
	case formatJSON:
		return c.dumpAsJSON(w, config)
	case formatYAML:
		return c.dumpAsYAML(w, config)
	case formatTOML:
		return c.dumpAsTOML(w, config)
	default:
		return c.dumpAsText(w, config)
	}
}

func (c *Config) dumpAsText(w io.Writer, config dumpConfig) error {
	for _, key := range c.Keys() {
		value := c.values[key]

		line := key + "=" + value
		if value == "" {
			line = "--" + key
		}
		if config.withSources {
			line += "  # " + c.origins[key].String()
		}

		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}
	return nil
}

func (c *Config) dumpAsJSON(w io.Writer, config dumpConfig) error {
	var data []byte
	var err error
	if config.indent != "" {
		data, err = json.MarshalIndent(c.structured(config), "", config.indent)
	} else {
		data, err = json.Marshal(c.structured(config))
	}
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

func (c *Config) dumpAsYAML(w io.Writer, config dumpConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.structured(config)); err != nil {
		return fmt.Errorf("yaml encode error: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

func (c *Config) dumpAsTOML(w io.Writer, config dumpConfig) error {
	if err := toml.NewEncoder(w).Encode(c.structured(config)); err != nil {
		return fmt.Errorf("toml encode error: %w", err)
	}
	return nil
}

// structured returns the entries as a map ready for the encoders, which all
// sort map keys.
func (c *Config) structured(config dumpConfig) any {
	if config.withSources {
		out := make(map[string]dumpEntry, len(c.values))
		for key, value := range c.values {
			out[key] = dumpEntry{Value: value, Source: c.origins[key].String()}
		}
		return out
	}

	out := make(map[string]string, len(c.values))
	for key, value := range c.values {
		out[key] = value
	}
	return out
}
