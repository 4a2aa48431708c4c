package argparse

import (
	"errors"
	"strings"
	"testing"
)

func TestBoundsPhrasing(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds[int]
		value  int
		want   string // empty means the check passes
	}{
		{"open lower violated", GreaterThan(0), 0, "strictly greater than 0"},
		{"open lower ok", GreaterThan(0), 1, ""},
		{"closed lower violated", AtLeast(10), 9, "at least 10"},
		{"closed lower ok", AtLeast(10), 10, ""},
		{"open upper violated", LessThan[int](100), 100, "strictly less than 100"},
		{"closed upper violated", AtMost(5), 6, "at most 5"},
		{"both violated", AtLeast(10).AtMost(5), 7, "at least 10 and at most 5"},
		{"within ok", AtLeast(0).LessThan(100), 50, ""},
	}

	for _, tt := range tests {
		err := tt.bounds.Check(tt.value, "n")
		if tt.want == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tt.name, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("%s: expected range error", tt.name)
			continue
		}
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("%s: expected RangeError, got %T", tt.name, err)
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: message %q should contain %q", tt.name, err, tt.want)
		}
	}
}

func TestBoundsFloat(t *testing.T) {
	b := AtLeast(0.0).AtMost(1.0)

	if err := b.Check(0.5, "fraction"); err != nil {
		t.Errorf("0.5 should pass: %v", err)
	}
	err := b.Check(1.5, "fraction")
	if err == nil || !strings.Contains(err.Error(), "at most 1") {
		t.Errorf("expected upper bound violation, got %v", err)
	}
	if !strings.Contains(err.Error(), "--fraction") {
		t.Errorf("message should carry the option spelling: %v", err)
	}
}

func TestBoundsWiredIntoParse(t *testing.T) {
	p := New("test")
	iters := Option(p, Decl[int]{
		Names:   []string{"iterations", "i"},
		Default: 10,
		Check:   GreaterThan(0).Check,
	})

	if err := p.Parse([]string{"-i", "3"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if iters.Get() != 3 {
		t.Errorf("got %d", iters.Get())
	}

	err := p.Parse([]string{"--iterations", "0"})
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected RangeError, got %v", err)
	}
	if !strings.Contains(err.Error(), "strictly greater than 0") {
		t.Errorf("unexpected message: %v", err)
	}
}
