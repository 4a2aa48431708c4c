package argparse

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// maxAliases caps the number of names one argument may carry.
const maxAliases = 9

type argKind int

const (
	kindOption argKind = iota
	kindMultiOption
	kindFlag
	kindPositional
	kindMultiPositional
)

func (k argKind) String() string {
	switch k {
	case kindOption:
		return "option"
	case kindMultiOption:
		return "multi-option"
	case kindFlag:
		return "flag"
	case kindPositional:
		return "positional"
	case kindMultiPositional:
		return "multi-positional"
	}
	return "unknown"
}

// Decl describes one argument to declare. Names is required; everything
// else is optional. For multi-valued declarations Defaults replaces
// Default, and an absent Defaults means the empty sequence rather than nil.
type Decl[T any] struct {
	// Names lists 1-9 command-line spellings. The canonical name is the
	// first entry longer than one character, or the first entry when all
	// are single characters.
	Names []string

	// Default is returned when a single-valued argument is never supplied.
	Default T

	// Defaults is the unsupplied value of a multi-valued argument.
	Defaults []T

	// Metavar labels the value placeholder in help text. Empty means the
	// canonical name uppercased.
	Metavar string

	// Help is a template string; %default, %choices, %allchoices,
	// %metavar, %prog and %% are expanded at declaration time.
	Help string

	// Choices restricts values to a closed set. ChoiceAliases maps the
	// string form of a canonical choice to alternate spellings that
	// resolve to it. When Choices is empty and ChoiceAliases is not, the
	// choice set is derived from the alias table's keys.
	Choices       []T
	ChoiceAliases map[string][]string

	// Check validates a converted value, typically a Bounds check.
	Check func(v T, name string) error

	// Convert overrides the built-in conversion for T. Required when T is
	// not string, int, float64 or bool.
	Convert Conv[T]

	// Optional marks a positional argument as omittable. Ignored for
	// options and flags.
	Optional bool
}

// argSpec is the registry record for one declared argument. The typed
// declaration is erased into closures at registration time so the parser
// core stays monomorphic.
type argSpec struct {
	canonical string
	aliases   []string
	kind      argKind
	metavar   string
	help      string
	optional  bool

	parse        func(raw string) (any, error)
	appendValue  func(cur, v any) any // multi kinds only
	cloneValue   func(cur any) any    // multi kinds only
	emptyValue   any                  // multi kinds only
	defaultValue any
	defaultText  string

	choices *choiceSet

	value      any
	specified  bool
	override   any
	overridden bool
}

// current resolves the value visible to callers: an explicit Set override
// wins over a parsed value, which wins over the default. Multi-valued
// results are copied so a caller cannot reach the stored slices.
func (s *argSpec) current() any {
	var v any
	switch {
	case s.overridden:
		v = s.override
	case s.specified:
		v = s.value
	default:
		v = s.defaultValue
	}
	if s.cloneValue != nil {
		return s.cloneValue(v)
	}
	return v
}

func (s *argSpec) reset() {
	s.value = nil
	s.specified = false
	s.override = nil
	s.overridden = false
}

func (s *argSpec) isPositional() bool {
	return s.kind == kindPositional || s.kind == kindMultiPositional
}

// canonicalName picks the registry key from an ordered alias list: the
// first multi-character entry, else the first entry.
func canonicalName(names []string) string {
	for _, n := range names {
		if utf8.RuneCountInString(n) > 1 {
			return n
		}
	}
	return names[0]
}

// Handle reads the resolved value of a single-valued argument after Parse.
// Handles for the same canonical name share one registry record, so
// re-declaring an argument yields an equivalent handle rather than a
// second registration.
type Handle[T any] struct {
	p    *Parser
	spec *argSpec
}

// Get returns the resolved value: the Set override if present, else the
// parsed value, else the declared default.
func (h *Handle[T]) Get() T {
	return h.spec.current().(T)
}

// Specified reports whether Parse stored an explicit value, distinguishing
// "user passed the zero value" from "user passed nothing".
func (h *Handle[T]) Specified() bool {
	return h.spec.specified
}

// Name returns the canonical name.
func (h *Handle[T]) Name() string {
	return h.spec.canonical
}

// MultiHandle reads the accumulated values of a multi-valued argument.
type MultiHandle[T any] struct {
	p    *Parser
	spec *argSpec
}

// Get returns the accumulated sequence, the declared default sequence, or
// an empty slice. It never returns nil.
func (h *MultiHandle[T]) Get() []T {
	v := h.spec.current().([]T)
	if v == nil {
		return []T{}
	}
	return v
}

func (h *MultiHandle[T]) Specified() bool {
	return h.spec.specified
}

func (h *MultiHandle[T]) Name() string {
	return h.spec.canonical
}

// Option declares a single-valued option and returns its handle. Declaring
// an already-registered canonical name is an idempotent lookup: metadata is
// not touched and the existing record backs the returned handle.
func Option[T any](p *Parser, d Decl[T]) *Handle[T] {
	return &Handle[T]{p: p, spec: register(p, kindOption, d)}
}

// MultiOption declares an option that accumulates every occurrence into an
// ordered sequence.
func MultiOption[T any](p *Parser, d Decl[T]) *MultiHandle[T] {
	return &MultiHandle[T]{p: p, spec: register(p, kindMultiOption, d)}
}

// Flag declares a boolean flag set by presence alone; it takes no value
// token on the command line.
func Flag(p *Parser, d Decl[bool]) *Handle[bool] {
	return &Handle[bool]{p: p, spec: register(p, kindFlag, d)}
}

// Positional declares an argument bound by position, after all options are
// matched. Positionals bind in declaration order; required ones must come
// before optional ones.
func Positional[T any](p *Parser, d Decl[T]) *Handle[T] {
	return &Handle[T]{p: p, spec: register(p, kindPositional, d)}
}

// MultiPositional declares a final positional that consumes every
// remaining token. No further positional may be declared after it.
func MultiPositional[T any](p *Parser, d Decl[T]) *MultiHandle[T] {
	return &MultiHandle[T]{p: p, spec: register(p, kindMultiPositional, d)}
}

func register[T any](p *Parser, kind argKind, d Decl[T]) *argSpec {
	if len(d.Names) == 0 {
		panic(codingErrorf("argument declared with an empty name list"))
	}
	if len(d.Names) > maxAliases {
		panic(codingErrorf("argument declared with %d names; at most %d are allowed",
			len(d.Names), maxAliases))
	}
	canonical := canonicalName(d.Names)

	if existing, ok := p.specs[canonical]; ok {
		if existing.kind != kind {
			panic(codingErrorf("argument %q redeclared as a %s; originally a %s",
				canonical, kind, existing.kind))
		}
		return existing
	}

	conv := d.Convert
	if conv == nil {
		if conv = builtinConv[T](); conv == nil {
			var zero T
			panic(codingErrorf("argument %q: no built-in conversion for %T and no Convert given",
				canonical, zero))
		}
	}

	s := &argSpec{
		canonical: canonical,
		aliases:   slices.Clone(d.Names),
		kind:      kind,
		metavar:   d.Metavar,
		optional:  d.Optional,
	}
	if s.metavar == "" {
		s.metavar = strings.ToUpper(canonical)
	}

	multi := kind == kindMultiOption || kind == kindMultiPositional
	if multi {
		defaults := slices.Clone(d.Defaults)
		if defaults == nil {
			defaults = []T{}
		}
		s.defaultValue = defaults
		s.defaultText = joinValues(defaults)
		s.emptyValue = []T{}
		s.appendValue = func(cur, v any) any {
			return append(cur.([]T), v.(T))
		}
		s.cloneValue = func(cur any) any {
			return slices.Clone(cur.([]T))
		}
	} else {
		s.defaultValue = d.Default
		s.defaultText = formatValue(d.Default)
	}

	if len(d.Choices) > 0 || len(d.ChoiceAliases) > 0 {
		s.choices = newChoiceSet(d.Choices, d.ChoiceAliases, canonical)
	}
	valueFor := make(map[string]T, len(d.Choices))
	for _, c := range d.Choices {
		valueFor[formatValue(c)] = c
	}

	s.parse = func(raw string) (any, error) {
		v, err := conv(raw, canonical, p)
		if err != nil {
			return nil, err
		}
		if d.Check != nil {
			if err := d.Check(v, canonical); err != nil {
				return nil, err
			}
		}
		if s.choices != nil {
			canon := s.choices.canonicalize(formatValue(v))
			if !s.choices.contains(canon) {
				return nil, invalidChoiceErrorf("invalid choice %q for %s (choices are %s)",
					formatValue(v), displayName(canonical), s.choices.list(true))
			}
			if cv, ok := valueFor[canon]; ok {
				v = cv
			} else if v, err = conv(canon, canonical, p); err != nil {
				return nil, err
			}
		}
		return v, nil
	}

	s.help = expandHelp(d.Help, s, p.prog)

	p.add(s)
	return s
}
