// Package argparse provides a declarative command-line argument registry:
// typed options, multi-valued options, boolean flags and positional
// arguments are declared once against a Parser, which canonicalizes their
// names, validates choice restrictions, expands help-text templates and
// binds raw tokens to typed values during Parse.
//
// Declarations return typed handles that are dereferenced after Parse:
//
//	p := argparse.New("mytool")
//	iters := argparse.Option(p, argparse.Decl[int]{
//		Names:   []string{"iterations", "i"},
//		Default: 10,
//		Help:    "Number of iterations. Default %default.",
//	})
//	p.MustParse(os.Args[1:])
//	run(iters.Get())
//
// The registry is not safe for concurrent use; it is built and consumed
// within a single command invocation on one goroutine.
package argparse

import (
	"fmt"
	"io"
	"os"
	"slices"
)

// Parser owns the mapping from canonical argument names to their
// declarations and resolved values.
type Parser struct {
	prog        string
	specs       map[string]*argSpec
	order       []*argSpec // declaration order, drives help output
	positionals []*argSpec // declaration order
	byAlias     map[string]*argSpec

	out  io.Writer
	exit func(int)
}

// ParserOption configures a Parser at construction.
type ParserOption func(*Parser)

// WithOutput redirects help and caught-error output, which otherwise goes
// to standard output.
func WithOutput(w io.Writer) ParserOption {
	return func(p *Parser) { p.out = w }
}

// WithExitFunc replaces the process-exit call made by MustParse on a
// caught error.
func WithExitFunc(exit func(code int)) ParserOption {
	return func(p *Parser) { p.exit = exit }
}

// New creates an empty registry for the named program.
func New(prog string, opts ...ParserOption) *Parser {
	p := &Parser{
		prog:    prog,
		specs:   make(map[string]*argSpec),
		byAlias: make(map[string]*argSpec),
		out:     os.Stdout,
		exit:    os.Exit,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prog returns the program name given to New.
func (p *Parser) Prog() string { return p.prog }

// add stores a freshly built spec, wiring alias and positional indexes.
// Called exactly once per canonical name.
func (p *Parser) add(s *argSpec) {
	if s.isPositional() {
		if n := len(p.positionals); n > 0 && p.positionals[n-1].kind == kindMultiPositional {
			panic(codingErrorf("argument %q declared after a multi-positional argument",
				s.canonical))
		}
		p.positionals = append(p.positionals, s)
	} else {
		for _, alias := range s.aliases {
			if taken, ok := p.byAlias[alias]; ok {
				panic(codingErrorf("alias %q of argument %q already belongs to %q",
					alias, s.canonical, taken.canonical))
			}
			p.byAlias[alias] = s
		}
	}
	p.specs[s.canonical] = s
	p.order = append(p.order, s)
}

// lookup resolves a canonical name or alias to its spec. Unknown names are
// a defect in the calling program.
func (p *Parser) lookup(name string) *argSpec {
	if s, ok := p.specs[name]; ok {
		return s
	}
	if s, ok := p.byAlias[name]; ok {
		return s
	}
	panic(codingErrorf("argument %q was never declared", name))
}

// Parse resets all resolved state and binds args against the registered
// arguments. Value-level failures (usage, conversion, range, choice) are
// returned; calling Parse before declaring anything panics with a
// *CodingError, since it means the declarations never executed.
func (p *Parser) Parse(args []string) error {
	if len(p.specs) == 0 {
		panic(codingErrorf("Parse called before any arguments were declared"))
	}
	p.Clear()
	return p.scan(args)
}

// MustParse is Parse with catch-errors semantics: a value-level error is
// printed and the process exits with status 1. CodingErrors still
// propagate.
func (p *Parser) MustParse(args []string) {
	if err := p.Parse(args); err != nil {
		fmt.Fprintln(p.out, err)
		p.exit(1)
	}
}

// Get returns the resolved value for a declared name or alias, untyped.
// Prefer handle Get methods where the declaration is in scope.
func (p *Parser) Get(name string) any {
	return p.lookup(name).current()
}

// Set records an explicit override that takes precedence over both the
// default and any parsed value until Clear. The value must have the
// argument's declared type.
func (p *Parser) Set(name string, value any) {
	s := p.lookup(name)
	s.override = value
	s.overridden = true
}

// Specified reports whether the argument received an explicit value from
// the last Parse.
func (p *Parser) Specified(name string) bool {
	return p.lookup(name).specified
}

// Clear resets every argument to its unspecified state, discarding parsed
// values and Set overrides but keeping all declarations.
func (p *Parser) Clear() {
	for _, s := range p.specs {
		s.reset()
	}
}

// Names enumerates the canonical names in the registry, sorted.
func (p *Parser) Names() []string {
	names := make([]string, 0, len(p.specs))
	for name := range p.specs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
