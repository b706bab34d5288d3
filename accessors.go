package kvconf

import "github.com/Azhovan/kvconf/internal/lex"

// The numeric accessors keep the lenient C conversion behaviour callers rely
// on: only the leading numeric prefix counts and a value without one reads as
// zero. The only error they return is *KeyNotFoundError.

// GetUInt returns the value of key as an unsigned integer. "42abc" reads as
// 42, "abc" as 0. A leading minus sign wraps around ("-1" reads as the
// maximum uint64) and values too large for an int64 saturate.
func (c *Config) GetUInt(key string) (uint64, error) {
	v, err := c.lookup(key)
	if err != nil {
		return 0, err
	}
	return lex.LeadingUint(v), nil
}

// GetDouble returns the value of key as a float64, using the longest
// floating-point prefix ("2.5kg" reads as 2.5, "abc" as 0).
func (c *Config) GetDouble(key string) (float64, error) {
	v, err := c.lookup(key)
	if err != nil {
		return 0, err
	}
	return lex.LeadingFloat(v), nil
}

// GetBool returns true when the value of key is exactly "1" or "true".
// Any other value, including "", "yes" and "TRUE", is false.
func (c *Config) GetBool(key string) (bool, error) {
	v, err := c.lookup(key)
	if err != nil {
		return false, err
	}
	return v == "1" || v == "true", nil
}

// GetString returns the raw value of key.
func (c *Config) GetString(key string) (string, error) {
	return c.lookup(key)
}
