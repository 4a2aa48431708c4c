package collections

import "math"

// RangeTable groups numeric keys into ranges delimited by a sorted
// boundary list. One range covers keys below the first boundary (from
// LowestBound), one covers keys at or above the last, and one runs from
// each boundary up to, but not including, the next. Instead of storing
// values directly, each range lazily owns a collector created by the
// factory; the caller decides whether that is a counter, a list, or
// anything else.
type RangeTable[C any] struct {
	bounds     []float64
	lowest     float64
	factory    func() C
	collectors *SortedMap[float64, C]
}

// Range describes one boundary-delimited interval during iteration.
// Upper is math.Inf(1) for the final open-ended range. Seen reports
// whether any key was ever collected into it.
type Range[C any] struct {
	Lower     float64
	Upper     float64
	Collector C
	Seen      bool
}

// UnseenPolicy controls which never-collected ranges Ranges returns.
type UnseenPolicy int

const (
	// UnseenBetween includes unseen ranges only between the lowest and
	// highest ranges actually collected into.
	UnseenBetween UnseenPolicy = iota
	// UnseenAll includes every range.
	UnseenAll
	// UnseenNone includes only ranges that were collected into.
	UnseenNone
)

// NewRangeTable creates a table with the given sorted boundaries. The
// lowest range is reported as starting at lowest, which is cosmetic: any
// key below the first boundary lands in it.
func NewRangeTable[C any](bounds []float64, lowest float64, factory func() C) *RangeTable[C] {
	return &RangeTable[C]{
		bounds:     bounds,
		lowest:     lowest,
		factory:    factory,
		collectors: NewSortedMap[float64, C](),
	}
}

// Collector returns the collector owning key's range, creating it on
// first use.
func (t *RangeTable[C]) Collector(key float64) C {
	lower := t.lowerOf(key)
	if c, ok := t.collectors.Get(lower); ok {
		return c
	}
	c := t.factory()
	t.collectors.Set(lower, c)
	return c
}

// lowerOf finds the greatest boundary <= key, or the lowest bound when
// the key precedes every boundary.
func (t *RangeTable[C]) lowerOf(key float64) float64 {
	lower := t.lowest
	for _, b := range t.bounds {
		if b > key {
			break
		}
		lower = b
	}
	return lower
}

// Ranges iterates the table in boundary order. Unseen ranges carry a
// fresh collector that is not retained.
func (t *RangeTable[C]) Ranges(policy UnseenPolicy) []Range[C] {
	lowers := append([]float64{t.lowest}, t.bounds...)

	highestSeen := math.Inf(-1)
	for i, lower := range lowers {
		if _, ok := t.collectors.Get(lower); ok {
			highestSeen = t.upperOf(lowers, i)
		}
	}

	var out []Range[C]
	seenAny := false
	for i, lower := range lowers {
		upper := t.upperOf(lowers, i)
		collector, seen := t.collectors.Get(lower)
		if !seen {
			switch policy {
			case UnseenNone:
				continue
			case UnseenBetween:
				if !seenAny || upper > highestSeen {
					continue
				}
			}
			collector = t.factory()
		} else {
			seenAny = true
		}
		out = append(out, Range[C]{
			Lower:     lower,
			Upper:     upper,
			Collector: collector,
			Seen:      seen,
		})
	}
	return out
}

func (t *RangeTable[C]) upperOf(lowers []float64, i int) float64 {
	if i+1 < len(lowers) {
		return lowers[i+1]
	}
	return math.Inf(1)
}
