package kvconf

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseSequenceUInt(t *testing.T) {
	tests := []struct {
		value     string
		want      []uint64
		wantFound bool
	}{
		{"1:1:5", []uint64{1, 2, 3, 4, 5}, true},
		{"5:-1:1", []uint64{5, 4, 3, 2, 1}, true},
		{"0:5:12", []uint64{0, 5, 10}, true},
		{"10:-4:0", []uint64{10, 6, 2}, true},
		{"1:+2:5", []uint64{1, 3, 5}, true},
		{"1:0:5", []uint64{1}, true},
		{"3:1:3", []uint64{3}, true},
		{"5:1:1", nil, false},
		{"1:-1:5", nil, false},
		{"1:1", nil, false},
		{"1:1:5:", nil, false},
		{"a:1:5", nil, false},
		{"1.5:1:5", nil, false},
		{"1*2:8", nil, false},
		{"", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := newConfig(t, "seq", tt.value)
			got, found, err := cfg.ParseSequenceUInt("seq")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSequenceDouble(t *testing.T) {
	tests := []struct {
		value     string
		want      []float64
		wantFound bool
	}{
		// exponential
		{"2*2:20", []float64{2, 4, 8, 16}, true},
		{"1*10:1000", []float64{1, 10, 100, 1000}, true},
		{"0.5*4:8", []float64{0.5, 2, 8}, true},
		{"30*2:20", []float64{}, true},
		{"2*0:20", nil, false},
		{"0*2:20", nil, false},
		{"1*1:20", nil, false},
		{"1*0.5:20", nil, false},

		// linear
		{"0:0.5:2", []float64{0, 0.5, 1, 1.5, 2}, true},
		{"1:1:3", []float64{1, 2, 3}, true},
		{"3:-1:1", []float64{3, 2, 1}, true},
		{"1.5:0:9", []float64{1.5}, true},
		{"5:1:1", nil, false},
		{"1:-1:5", nil, false},

		// malformed
		{"1.:1:3", nil, false},
		{"2*2", nil, false},
		{"-1:1:3", nil, false},
		{"abc", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := newConfig(t, "seq", tt.value)
			got, found, err := cfg.ParseSequenceDouble("seq")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSequence_MissingKey(t *testing.T) {
	cfg := New()

	if _, _, err := cfg.ParseSequenceUInt("nope"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("ParseSequenceUInt: expected ErrKeyNotFound, got %v", err)
	}
	if _, _, err := cfg.ParseSequenceDouble("nope"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("ParseSequenceDouble: expected ErrKeyNotFound, got %v", err)
	}
}

func TestParseSequenceDouble_LostIncrement(t *testing.T) {
	cfg := newConfig(t, "seq", "100000000000000000000:1:100000000000000000010")

	_, found, err := cfg.ParseSequenceDouble("seq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected a sequence whose increment is lost to rounding to be rejected")
	}
}
