package kvconf

import (
	"strings"

	"github.com/Azhovan/kvconf/internal/lex"
)

// ParseListInt interprets the value of key as a brace-delimited list of
// integers, e.g. "{5, 4, 3}". Each element is read by its leading numeric
// prefix, so non-numeric elements read as 0.
//
// found is false when the value has no "{...}" body. "{}" is found and empty.
// The only error is *KeyNotFoundError.
func (c *Config) ParseListInt(key string) (list []int64, found bool, err error) {
	elems, found, err := c.listElems(key)
	if !found {
		return nil, false, err
	}
	list = make([]int64, len(elems))
	for i, e := range elems {
		list[i] = lex.LeadingInt(e)
	}
	return list, true, nil
}

// ParseListDouble is ParseListInt for floating-point elements.
func (c *Config) ParseListDouble(key string) (list []float64, found bool, err error) {
	elems, found, err := c.listElems(key)
	if !found {
		return nil, false, err
	}
	list = make([]float64, len(elems))
	for i, e := range elems {
		list[i] = lex.LeadingFloat(e)
	}
	return list, true, nil
}

// ParseListString returns the elements of a brace-delimited list verbatim.
// Leading whitespace is stripped from every element, trailing whitespace is
// kept: "{a , b}" yields ["a " "b"].
func (c *Config) ParseListString(key string) (list []string, found bool, err error) {
	return c.listElems(key)
}

func (c *Config) listElems(key string) ([]string, bool, error) {
	v, err := c.lookup(key)
	if err != nil {
		return nil, false, err
	}
	body, ok := listBody(v)
	if !ok {
		return nil, false, nil
	}
	return lex.SplitList(body), true, nil
}

// listBody returns the text between the first '{' and the last '}' of v.
func listBody(v string) (string, bool) {
	open := strings.IndexByte(v, '{')
	if open < 0 {
		return "", false
	}
	end := strings.LastIndexByte(v, '}')
	if end < open {
		return "", false
	}
	return v[open+1 : end], true
}
