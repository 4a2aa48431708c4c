package argparse

import (
	"strconv"
	"strings"
)

// Conv converts a raw command-line token into a typed value. Implementations
// signal failure by returning a *ConversionError (or any error wrapping
// ErrParse). The parser is passed through so custom converters can consult
// other arguments already resolved in the same invocation.
type Conv[T any] func(raw, name string, p *Parser) (T, error)

func convString(raw, name string, p *Parser) (string, error) {
	return raw, nil
}

func convInt(raw, name string, p *Parser) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, conversionErrorf("invalid integer value %q for %s", raw, displayName(name))
	}
	return v, nil
}

func convFloat(raw, name string, p *Parser) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, conversionErrorf("invalid numeric value %q for %s", raw, displayName(name))
	}
	return v, nil
}

func convBool(raw, name string, p *Parser) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "t", "on", "1":
		return true, nil
	case "no", "n", "false", "f", "off", "0":
		return false, nil
	}
	return false, conversionErrorf("invalid boolean value %q for %s (use yes/no, true/false, on/off)",
		raw, displayName(name))
}

// builtinConv returns the built-in converter for T, or nil when T is not
// one of the supported scalar kinds.
func builtinConv[T any]() Conv[T] {
	var zero T
	switch any(zero).(type) {
	case string:
		return any(Conv[string](convString)).(Conv[T])
	case int:
		return any(Conv[int](convInt)).(Conv[T])
	case float64:
		return any(Conv[float64](convFloat)).(Conv[T])
	case bool:
		return any(Conv[bool](convBool)).(Conv[T])
	}
	return nil
}

// displayName renders an argument name the way it appears on the command
// line, so error messages match what the user typed.
func displayName(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}
