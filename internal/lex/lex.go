// Package lex holds the byte-level helpers shared by the tokenizer, the line
// source and the value grammars. Everything here is ASCII only.
package lex

import (
	"math"
	"strconv"
)

// IsSpace reports whether c is ASCII whitespace (space, \t, \n, \v, \f, \r).
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsAlnum reports whether c is an ASCII letter or digit.
func IsAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || IsDigit(c)
}

// IsKeyChar reports whether c may appear in a key: letters, digits, '_' and ':'.
func IsKeyChar(c byte) bool {
	return IsAlnum(c) || c == '_' || c == ':'
}

// SkipSpace returns the index of the first non-whitespace byte of s at or
// after i, or len(s).
func SkipSpace(s string, i int) int {
	for i < len(s) && IsSpace(s[i]) {
		i++
	}
	return i
}

// TrimSpace removes leading and trailing ASCII whitespace.
func TrimSpace(s string) string {
	start := SkipSpace(s, 0)
	end := len(s)
	for end > start && IsSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// LeadingInt parses the longest integer prefix of s the way C's atoi does:
// leading whitespace is skipped, one optional sign is accepted, then decimal
// digits are consumed. A string without such a prefix yields 0. Values that
// do not fit an int64 saturate.
func LeadingInt(s string) int64 {
	i := SkipSpace(s, 0)
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}

	var n uint64
	for ; i < len(s) && IsDigit(s[i]); i++ {
		d := uint64(s[i] - '0')
		if n > (limit-d)/10 {
			n = limit
			break
		}
		n = n*10 + d
	}

	if neg {
		return int64(-n)
	}
	return int64(n)
}

// LeadingUint is LeadingInt converted to unsigned. Negative prefixes wrap
// around to their two's-complement value, as a C unsigned conversion would.
func LeadingUint(s string) uint64 {
	return uint64(LeadingInt(s))
}

// LeadingFloat parses the longest floating-point prefix of s the way C's atof
// does: optional sign, decimal mantissa with optional fraction, optional
// exponent, or the words inf, infinity and nan (any case). A string without
// such a prefix yields 0.
func LeadingFloat(s string) float64 {
	i := SkipSpace(s, 0)
	sign := 1.0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}

	rest := s[i:]
	switch {
	case hasPrefixFold(rest, "inf"):
		return math.Inf(int(sign))
	case hasPrefixFold(rest, "nan"):
		return math.NaN()
	}

	start := i
	digits := 0
	for ; i < len(s) && IsDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		for i++; i < len(s) && IsDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && IsDigit(s[j]) {
			for j < len(s) && IsDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	// The prefix is well formed by construction; a range error still
	// returns the saturated value.
	f, _ := strconv.ParseFloat(s[start:i], 64)
	return sign * f
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != prefix[i] {
			return false
		}
	}
	return true
}

// SplitList splits a list body on commas. Leading whitespace is stripped
// before every element; trailing whitespace is kept. A trailing comma does
// not produce an extra element, but two adjacent commas produce an empty one.
// Examples:
//   - "5, 4,3" → ["5" "4" "3"]
//   - "a ,b"   → ["a " "b"]
//   - "1,,2"   → ["1" "" "2"]
//   - ""       → []
func SplitList(body string) []string {
	elems := make([]string, 0)
	pos := SkipSpace(body, 0)
	for pos < len(body) {
		end := pos
		for end < len(body) && body[end] != ',' {
			end++
		}
		elems = append(elems, body[pos:end])
		if end == len(body) {
			break
		}
		pos = SkipSpace(body, end+1)
	}
	return elems
}
