package kvconf

// gate decides which keys and options may enter the store. It is either open
// (everything accepted) or restricted to explicitly allowed names.
type gate interface {
	admits(tok token) bool
}

// openGate accepts every key and option. It is the initial state.
type openGate struct{}

func (openGate) admits(token) bool { return true }

// restrictedGate accepts only allowed names. Keys and options are checked
// against separate sets.
type restrictedGate struct {
	keys    map[string]struct{}
	options map[string]struct{}
}

func newRestrictedGate() *restrictedGate {
	return &restrictedGate{
		keys:    make(map[string]struct{}),
		options: make(map[string]struct{}),
	}
}

func (g *restrictedGate) admits(tok token) bool {
	set := g.keys
	if tok.option {
		set = g.options
	}
	_, ok := set[tok.key]
	return ok
}

// restrict returns the restricted gate of c, switching c to restricted mode
// on first use.
func (c *Config) restrict() *restrictedGate {
	if g, ok := c.gate.(*restrictedGate); ok {
		return g
	}
	g := newRestrictedGate()
	c.gate = g
	return g
}

// AllowKey declares key names as valid. The first call to AllowKey or
// AllowOption enables checking: from then on every key-value pair read from
// arguments or files must use an allowed key.
func (c *Config) AllowKey(names ...string) *Config {
	g := c.restrict()
	for _, name := range names {
		g.keys[name] = struct{}{}
	}
	return c
}

// AllowOption declares option names (without the leading "--") as valid.
// Like AllowKey, it enables checking.
func (c *Config) AllowOption(names ...string) *Config {
	g := c.restrict()
	for _, name := range names {
		g.options[name] = struct{}{}
	}
	return c
}

// Restricted reports whether key checking is enabled.
func (c *Config) Restricted() bool {
	_, ok := c.gate.(*restrictedGate)
	return ok
}

// admit applies the gate to tok.
func (c *Config) admit(tok token) error {
	if c.gate.admits(tok) {
		return nil
	}
	return &InvalidKeyError{Name: tok.key, Option: tok.option}
}
