package argparse

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConvBoolSpellings(t *testing.T) {
	truthy := []string{"yes", "y", "true", "t", "on", "1", "YES", "True", "ON"}
	falsy := []string{"no", "n", "false", "f", "off", "0", "NO", "False", "OFF"}

	for _, raw := range truthy {
		v, err := convBool(raw, "flagval", nil)
		if err != nil || !v {
			t.Errorf("%q should convert to true (err=%v)", raw, err)
		}
	}
	for _, raw := range falsy {
		v, err := convBool(raw, "flagval", nil)
		if err != nil || v {
			t.Errorf("%q should convert to false (err=%v)", raw, err)
		}
	}

	_, err := convBool("maybe", "flagval", nil)
	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Errorf("expected ConversionError, got %v", err)
	}
}

func TestConvNumeric(t *testing.T) {
	if v, err := convInt(" 42 ", "n", nil); err != nil || v != 42 {
		t.Errorf("convInt: v=%d err=%v", v, err)
	}
	if _, err := convInt("4.5", "n", nil); err == nil {
		t.Error("convInt should reject fractions")
	}

	if v, err := convFloat("2.5", "x", nil); err != nil || v != 2.5 {
		t.Errorf("convFloat: v=%f err=%v", v, err)
	}
	if _, err := convFloat("abc", "x", nil); err == nil {
		t.Error("convFloat should reject non-numbers")
	}
}

func TestCustomConverter(t *testing.T) {
	type level struct {
		name  string
		value int
	}

	conv := func(raw, name string, p *Parser) (level, error) {
		switch strings.ToLower(raw) {
		case "low":
			return level{"low", 1}, nil
		case "high":
			return level{"high", 9}, nil
		}
		return level{}, conversionErrorf("invalid level %q for %s", raw, displayName(name))
	}

	p := New("test")
	lvl := Option(p, Decl[level]{
		Names:   []string{"level"},
		Default: level{"low", 1},
		Convert: conv,
	})

	if err := p.Parse([]string{"--level", "HIGH"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := lvl.Get(); got.value != 9 {
		t.Errorf("got %+v", got)
	}

	err := p.Parse([]string{"--level", "medium"})
	if !errors.Is(err, ErrParse) {
		t.Errorf("custom conversion failure should match ErrParse: %v", err)
	}
}

func TestCustomTypeWithoutConverterPanics(t *testing.T) {
	defer func() {
		if _, ok := recover().(*CodingError); !ok {
			t.Fatal("expected *CodingError panic")
		}
	}()

	Option(New("test"), Decl[struct{ X int }]{Names: []string{"broken"}})
}

func TestDisplayName(t *testing.T) {
	if got := displayName("f"); got != "-f" {
		t.Errorf("got %q", got)
	}
	if got := displayName("foo"); got != "--foo" {
		t.Errorf("got %q", got)
	}
}

func ExampleOption() {
	p := New("example")
	foo := Option(p, Decl[int]{
		Names:   []string{"foo", "f"},
		Default: 5,
	})

	p.MustParse([]string{"--foo", "7"})
	fmt.Println(foo.Get())
	// Output: 7
}
