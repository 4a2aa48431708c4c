package argparse

import (
	"cmp"
	"strings"
)

// Bounds restricts a converted numeric value to an optionally open or
// closed interval. A nil bound is unchecked. Use the constructors below
// and pass the Check method as Decl.Check:
//
//	argparse.Option(p, argparse.Decl[int]{
//		Names:   []string{"iterations", "i"},
//		Default: 10,
//		Check:   argparse.GreaterThan(0).Check,
//	})
type Bounds[T cmp.Ordered] struct {
	Min          *T
	Max          *T
	MinExclusive bool
	MaxExclusive bool
}

// AtLeast restricts values to v >= n.
func AtLeast[T cmp.Ordered](n T) Bounds[T] {
	return Bounds[T]{Min: &n}
}

// GreaterThan restricts values to v > n.
func GreaterThan[T cmp.Ordered](n T) Bounds[T] {
	return Bounds[T]{Min: &n, MinExclusive: true}
}

// AtMost restricts values to v <= n.
func AtMost[T cmp.Ordered](n T) Bounds[T] {
	return Bounds[T]{Max: &n}
}

// LessThan restricts values to v < n.
func LessThan[T cmp.Ordered](n T) Bounds[T] {
	return Bounds[T]{Max: &n, MaxExclusive: true}
}

// AtMost adds a closed upper bound, so bounds can be chained:
// AtLeast(0).AtMost(100).
func (b Bounds[T]) AtMost(n T) Bounds[T] {
	b.Max = &n
	b.MaxExclusive = false
	return b
}

// LessThan adds an open upper bound.
func (b Bounds[T]) LessThan(n T) Bounds[T] {
	b.Max = &n
	b.MaxExclusive = true
	return b
}

// Check validates v against the bounds, returning a *RangeError that
// phrases every violated bound in natural language.
func (b Bounds[T]) Check(v T, name string) error {
	var violated []string
	if b.Min != nil {
		if b.MinExclusive && v <= *b.Min {
			violated = append(violated, describeBound("strictly greater than", *b.Min))
		} else if !b.MinExclusive && v < *b.Min {
			violated = append(violated, describeBound("at least", *b.Min))
		}
	}
	if b.Max != nil {
		if b.MaxExclusive && v >= *b.Max {
			violated = append(violated, describeBound("strictly less than", *b.Max))
		} else if !b.MaxExclusive && v > *b.Max {
			violated = append(violated, describeBound("at most", *b.Max))
		}
	}
	if len(violated) == 0 {
		return nil
	}
	return rangeErrorf("value %v for %s must be %s",
		v, displayName(name), strings.Join(violated, " and "))
}

func describeBound[T any](phrase string, bound T) string {
	return phrase + " " + formatValue(bound)
}
