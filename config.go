package kvconf

import (
	"log/slog"
	"sort"
)

// AddEntry stores a key-value pair programmatically, for seeding values that
// are not read from arguments or files. Unlike argument and file loading it
// never overwrites: an existing key yields an *InvalidKeyError. The allow-list
// does not apply.
func (c *Config) AddEntry(key, value string) error {
	if _, exists := c.values[key]; exists {
		return &InvalidKeyError{Name: key, Duplicate: true}
	}
	c.set(key, value, Origin{Source: sourceEntry})
	return nil
}

// HasKey reports whether key is present, whatever its value.
func (c *Config) HasKey(key string) bool {
	_, ok := c.values[key]
	return ok
}

// HasOption reports whether the option was given. Pass the name without the
// leading "--". Any present key counts, whatever its value.
func (c *Config) HasOption(name string) bool {
	return c.HasKey(name)
}

// Keys returns all stored keys in lexical order.
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored entries.
func (c *Config) Len() int {
	return len(c.values)
}

// SourcePath returns the path given to the last InitFromFile call, or "".
func (c *Config) SourcePath() string {
	return c.filePath
}

// SourceFileName returns the final element of SourcePath, or "".
func (c *Config) SourceFileName() string {
	return c.fileName
}

// lookup returns the raw value for key or a *KeyNotFoundError.
func (c *Config) lookup(key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", &KeyNotFoundError{Key: key}
	}
	return v, nil
}

func (c *Config) set(key, value string, origin Origin) {
	c.values[key] = value
	c.origins[key] = origin
	c.log.Debug("config entry set",
		slog.String("key", key),
		slog.String("source", origin.Source),
	)
}
