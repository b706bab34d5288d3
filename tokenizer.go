package kvconf

import "github.com/Azhovan/kvconf/internal/lex"

// token is one tokenized argument or line.
type token struct {
	key    string
	value  string
	option bool // --name form; value is always empty
}

// valueMode selects how far a value extends after '='.
type valueMode int

const (
	// valueWord stops the value at the first whitespace (command-line arguments).
	valueWord valueMode = iota
	// valueRest takes the rest of the line minus trailing whitespace (file lines).
	valueRest
)

// tokenizeArg tokenizes a command-line argument: key-value pairs first, then
// bare options.
func tokenizeArg(s string) (token, bool) {
	if tok, ok := matchKeyValue(s, valueWord); ok {
		return tok, true
	}
	return matchOption(s)
}

// tokenizeLine tokenizes a file line. Options are not recognized in files.
func tokenizeLine(s string) (token, bool) {
	return matchKeyValue(s, valueRest)
}

// matchKeyValue finds the leftmost "<key>[ws]*=[ws]*<value>" in s. The key is
// a maximal run of key characters and the value must be non-empty.
func matchKeyValue(s string, mode valueMode) (token, bool) {
	i := 0
	for i < len(s) {
		if !lex.IsKeyChar(s[i]) {
			i++
			continue
		}
		end := i
		for end < len(s) && lex.IsKeyChar(s[end]) {
			end++
		}
		if value, ok := matchValue(s, end, mode); ok {
			return token{key: s[i:end], value: value}, true
		}
		// A match starting inside the same run would end at the same place.
		i = end
	}
	return token{}, false
}

// matchValue expects optional whitespace, '=', optional whitespace and a
// value starting at s[pos:].
func matchValue(s string, pos int, mode valueMode) (string, bool) {
	pos = lex.SkipSpace(s, pos)
	if pos >= len(s) || s[pos] != '=' {
		return "", false
	}
	start := lex.SkipSpace(s, pos+1)
	if start >= len(s) {
		return "", false
	}

	if mode == valueRest {
		return lex.TrimSpace(s[start:]), true
	}
	end := start
	for end < len(s) && !lex.IsSpace(s[end]) {
		end++
	}
	return s[start:end], true
}

// matchOption matches "--<name>" followed only by whitespace, where name is
// letters and digits.
func matchOption(s string) (token, bool) {
	if len(s) < 3 || s[0] != '-' || s[1] != '-' {
		return token{}, false
	}
	end := 2
	for end < len(s) && lex.IsAlnum(s[end]) {
		end++
	}
	if end == 2 || lex.SkipSpace(s, end) != len(s) {
		return token{}, false
	}
	return token{key: s[2:end], option: true}, true
}
