package kvconf

import "github.com/Azhovan/kvconf/internal/lex"

// seqParams holds the three textual parameters of a sequence.
type seqParams struct {
	start string
	step  string // increment (linear) or multiplier (exponential)
	end   string
}

// ParseSequenceUInt interprets the value of key as a linear sequence of
// unsigned integers, "<start>:<incr>:<end>", e.g. "1:1:5" → [1 2 3 4 5] and
// "5:-1:1" → [5 4 3 2 1]. Start and end are plain digits; the increment may
// carry a sign. An increment of 0 yields [start].
//
// found is false when the value does not follow the syntax, or when the
// increment points away from end ("5:1:1"). The only error is
// *KeyNotFoundError.
func (c *Config) ParseSequenceUInt(key string) (seq []uint64, found bool, err error) {
	v, err := c.lookup(key)
	if err != nil {
		return nil, false, err
	}
	p, ok := scanLinear(v, false)
	if !ok {
		return nil, false, nil
	}
	seq, found = linearUInt(lex.LeadingInt(p.start), lex.LeadingInt(p.step), lex.LeadingInt(p.end))
	return seq, found, nil
}

// ParseSequenceDouble interprets the value of key as a sequence of real
// numbers. Two forms are accepted, tried in this order:
//
//   - exponential "<start>*<mult>:<end>": start, start*mult, ... while <= end,
//     e.g. "2*2:20" → [2 4 8 16]
//   - linear "<start>:<incr>:<end>", as in ParseSequenceUInt
//
// Numbers are digits with an optional fraction; only the linear increment may
// carry a sign. found is false for unknown syntax, for a multiplier <= 0, for
// an increment pointing away from end, and for sequences that would never
// reach their end (e.g. "0*2:10" or "1*0.5:10"). The only error is
// *KeyNotFoundError.
func (c *Config) ParseSequenceDouble(key string) (seq []float64, found bool, err error) {
	v, err := c.lookup(key)
	if err != nil {
		return nil, false, err
	}
	if p, ok := scanExponential(v); ok {
		seq, found = exponential(lex.LeadingFloat(p.start), lex.LeadingFloat(p.step), lex.LeadingFloat(p.end))
		return seq, found, nil
	}
	if p, ok := scanLinear(v, true); ok {
		seq, found = linearDouble(lex.LeadingFloat(p.start), lex.LeadingFloat(p.step), lex.LeadingFloat(p.end))
		return seq, found, nil
	}
	return nil, false, nil
}

func linearUInt(start, incr, end int64) ([]uint64, bool) {
	switch {
	case incr == 0:
		return []uint64{uint64(start)}, true
	case incr > 0:
		if end < start {
			return nil, false
		}
		seq := make([]uint64, 0)
		for x := start; ; x += incr {
			seq = append(seq, uint64(x))
			if end-x < incr {
				return seq, true
			}
		}
	default:
		if start < end {
			return nil, false
		}
		step := uint64(-incr)
		seq := make([]uint64, 0)
		for x := start; ; x += incr {
			seq = append(seq, uint64(x))
			if uint64(x-end) < step {
				return seq, true
			}
		}
	}
}

func linearDouble(start, incr, end float64) ([]float64, bool) {
	switch {
	case incr == 0:
		return []float64{start}, true
	case incr > 0:
		if end < start {
			return nil, false
		}
		seq := make([]float64, 0)
		for x := start; x <= end; x += incr {
			if x+incr == x {
				// The increment is lost to rounding.
				return nil, false
			}
			seq = append(seq, x)
		}
		return seq, true
	default:
		if start < end {
			return nil, false
		}
		seq := make([]float64, 0)
		for x := start; x >= end; x += incr {
			if x+incr == x {
				return nil, false
			}
			seq = append(seq, x)
		}
		return seq, true
	}
}

func exponential(start, mult, end float64) ([]float64, bool) {
	if mult <= 0 {
		return nil, false
	}
	seq := make([]float64, 0)
	for x := start; x <= end; {
		seq = append(seq, x)
		next := x * mult
		if next <= x {
			return nil, false
		}
		x = next
	}
	return seq, true
}

// scanLinear matches the whole of s against "<num>:<[+-]num>:<num>". With
// frac set, numbers may carry a ".digits" fraction.
func scanLinear(s string, frac bool) (seqParams, bool) {
	a := scanNumber(s, 0, frac)
	if a < 0 || a >= len(s) || s[a] != ':' {
		return seqParams{}, false
	}
	stepStart := a + 1
	i := stepStart
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	b := scanNumber(s, i, frac)
	if b < 0 || b >= len(s) || s[b] != ':' {
		return seqParams{}, false
	}
	if scanNumber(s, b+1, frac) != len(s) {
		return seqParams{}, false
	}
	return seqParams{start: s[:a], step: s[stepStart:b], end: s[b+1:]}, true
}

// scanExponential matches the whole of s against "<num>*<num>:<num>".
func scanExponential(s string) (seqParams, bool) {
	a := scanNumber(s, 0, true)
	if a < 0 || a >= len(s) || s[a] != '*' {
		return seqParams{}, false
	}
	b := scanNumber(s, a+1, true)
	if b < 0 || b >= len(s) || s[b] != ':' {
		return seqParams{}, false
	}
	if scanNumber(s, b+1, true) != len(s) {
		return seqParams{}, false
	}
	return seqParams{start: s[:a], step: s[a+1 : b], end: s[b+1:]}, true
}

// scanNumber consumes one or more digits at s[i:], followed, when frac is
// set, by an optional '.' and one or more digits. It returns the index just
// past the number, or -1 if s[i] is not a digit.
func scanNumber(s string, i int, frac bool) int {
	j := i
	for j < len(s) && lex.IsDigit(s[j]) {
		j++
	}
	if j == i {
		return -1
	}
	if frac && j+1 < len(s) && s[j] == '.' && lex.IsDigit(s[j+1]) {
		j += 2
		for j < len(s) && lex.IsDigit(s[j]) {
			j++
		}
	}
	return j
}
