package argparse

import (
	"errors"
	"fmt"
)

// ErrParse is the shared match target for every value-level parse error.
// Callers that do not care which kind of failure occurred can test with
// errors.Is(err, ErrParse); callers that do can use errors.As with one of
// the concrete error types below.
var ErrParse = errors.New("argparse: parse error")

// UsageError reports a malformed invocation: an unknown option, a missing
// option value, a missing required positional, or a stray token.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func (e *UsageError) Is(target error) bool { return target == ErrParse }

// ConversionError reports a raw token that could not be converted to the
// declared type of its argument.
type ConversionError struct {
	Msg string
}

func (e *ConversionError) Error() string { return e.Msg }

func (e *ConversionError) Is(target error) bool { return target == ErrParse }

// RangeError reports a converted numeric value that violated a declared
// restriction.
type RangeError struct {
	Msg string
}

func (e *RangeError) Error() string { return e.Msg }

func (e *RangeError) Is(target error) bool { return target == ErrParse }

// InvalidChoiceError reports a converted value that is not among the
// declared choices or their aliases. It is a kind of ConversionError:
// errors.As(err, &convErr) matches it for *ConversionError targets.
type InvalidChoiceError struct {
	ConversionError
}

func (e *InvalidChoiceError) As(target any) bool {
	if t, ok := target.(**ConversionError); ok {
		*t = &e.ConversionError
		return true
	}
	return false
}

// CodingError reports misuse of the package by the integrating program:
// an empty name list, a duplicate declaration with a conflicting shape,
// parsing before anything was declared. It is delivered by panic and is
// never swallowed by MustParse, since it indicates a bug to fix rather
// than bad user input.
type CodingError struct {
	Msg string
}

func (e *CodingError) Error() string { return e.Msg }

func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

func conversionErrorf(format string, args ...any) *ConversionError {
	return &ConversionError{Msg: fmt.Sprintf(format, args...)}
}

func rangeErrorf(format string, args ...any) *RangeError {
	return &RangeError{Msg: fmt.Sprintf(format, args...)}
}

func invalidChoiceErrorf(format string, args ...any) *InvalidChoiceError {
	return &InvalidChoiceError{ConversionError{Msg: fmt.Sprintf(format, args...)}}
}

func codingErrorf(format string, args ...any) *CodingError {
	return &CodingError{Msg: fmt.Sprintf(format, args...)}
}
