package argparse

import "strings"

// scan walks the raw token list, matching options by alias and collecting
// positional tokens, then binds the positionals in declaration order.
// Grammar: "--name value", "--name=value", "-n value", bundled short flags
// ("-abc", with the first value-taking short consuming the token rest),
// and "--" terminating option processing.
func (p *Parser) scan(args []string) error {
	var positionals []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}

		if strings.HasPrefix(arg, "--") {
			name, inline, hasInline := splitLong(arg)
			s, ok := p.byAlias[name]
			if !ok {
				return usageErrorf("unknown option: --%s", name)
			}

			if s.kind == kindFlag {
				if hasInline {
					return usageErrorf("flag %s takes no value", displayName(s.canonical))
				}
				p.setFlag(s)
				continue
			}

			var value string
			if hasInline {
				value = inline
			} else if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				value = args[i+1]
				i++
			} else {
				return usageErrorf("option --%s requires a value", name)
			}
			if err := p.assign(s, value); err != nil {
				return err
			}
			continue
		}

		if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			shorts := arg[1:]
			for j, r := range shorts {
				short := string(r)
				s, ok := p.byAlias[short]
				if !ok {
					return usageErrorf("unknown option: -%s", short)
				}

				if s.kind == kindFlag {
					p.setFlag(s)
					continue
				}

				// A value-taking short consumes the rest of the token,
				// or the next token when it stands alone.
				var value string
				if j+len(short) < len(shorts) {
					value = shorts[j+len(short):]
				} else if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
					value = args[i+1]
					i++
				} else {
					return usageErrorf("option -%s requires a value", short)
				}
				if err := p.assign(s, value); err != nil {
					return err
				}
				break
			}
			continue
		}

		positionals = append(positionals, arg)
	}

	return p.bindPositionals(positionals)
}

// splitLong separates "--name=value" into its parts.
func splitLong(arg string) (name, value string, hasValue bool) {
	arg = strings.TrimPrefix(arg, "--")
	if idx := strings.Index(arg, "="); idx >= 0 {
		return arg[:idx], arg[idx+1:], true
	}
	return arg, "", false
}

// bindPositionals assigns collected tokens to positional specs in
// declaration order. A multi-positional consumes everything left.
func (p *Parser) bindPositionals(tokens []string) error {
	i := 0
	for _, s := range p.positionals {
		switch s.kind {
		case kindPositional:
			if i < len(tokens) {
				if err := p.assign(s, tokens[i]); err != nil {
					return err
				}
				i++
			} else if !s.optional {
				return usageErrorf("missing required argument: %s", s.metavar)
			}
		case kindMultiPositional:
			if i >= len(tokens) && !s.optional {
				return usageErrorf("missing required argument: %s", s.metavar)
			}
			for ; i < len(tokens); i++ {
				if err := p.assign(s, tokens[i]); err != nil {
					return err
				}
			}
		}
	}
	if i < len(tokens) {
		return usageErrorf("unrecognized argument: %q", tokens[i])
	}
	return nil
}

// assign converts, validates and stores one raw value into a spec.
func (p *Parser) assign(s *argSpec, raw string) error {
	v, err := s.parse(raw)
	if err != nil {
		return err
	}
	switch s.kind {
	case kindMultiOption, kindMultiPositional:
		if !s.specified {
			s.value = s.emptyValue
		}
		s.value = s.appendValue(s.value, v)
	default:
		s.value = v
	}
	s.specified = true
	return nil
}

func (p *Parser) setFlag(s *argSpec) {
	s.value = true
	s.specified = true
}
