package argparse

import "strings"

// Help directives recognized in Decl.Help templates. Longer names are
// matched before their prefixes.
var helpDirectives = []string{
	"%allchoices", "%choices", "%default", "%metavar", "%prog", "%%",
}

// expandHelp substitutes directives into a raw help template. Whitespace
// runs are collapsed first, so multi-line literals format consistently.
func expandHelp(raw string, s *argSpec, prog string) string {
	collapsed := strings.Join(strings.Fields(raw), " ")

	var b strings.Builder
	for i := 0; i < len(collapsed); {
		if collapsed[i] != '%' {
			b.WriteByte(collapsed[i])
			i++
			continue
		}
		directive := matchDirective(collapsed[i:])
		switch directive {
		case "%%":
			b.WriteByte('%')
		case "%default":
			b.WriteString(s.defaultText)
		case "%metavar":
			b.WriteString(s.metavar)
		case "%prog":
			b.WriteString(prog)
		case "%choices", "%allchoices":
			if s.choices == nil {
				panic(codingErrorf("help for %q uses %s but the argument declares no choices",
					s.canonical, directive))
			}
			b.WriteString(s.choices.list(directive == "%allchoices"))
		default:
			panic(codingErrorf("help for %q contains unrecognized directive at %q",
				s.canonical, truncate(collapsed[i:], 12)))
		}
		i += len(directive)
	}
	return b.String()
}

func matchDirective(rest string) string {
	for _, d := range helpDirectives {
		if strings.HasPrefix(rest, d) {
			return d
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// Help renders the usage banner and per-argument descriptions, options in
// declaration order followed by positionals.
func (p *Parser) Help() string {
	var b strings.Builder

	b.WriteString("Usage: ")
	b.WriteString(p.prog)
	if len(p.positionals) < len(p.specs) {
		b.WriteString(" [options]")
	}
	for _, s := range p.positionals {
		b.WriteByte(' ')
		b.WriteString(positionalUsage(s))
	}
	b.WriteByte('\n')

	var options []*argSpec
	for _, s := range p.order {
		if !s.isPositional() {
			options = append(options, s)
		}
	}

	if len(options) > 0 {
		b.WriteString("\nOptions:\n")
		for _, s := range options {
			b.WriteString("  ")
			b.WriteString(optionUsage(s))
			b.WriteByte('\n')
			if s.help != "" {
				b.WriteString("      ")
				b.WriteString(s.help)
				b.WriteByte('\n')
			}
		}
	}

	if len(p.positionals) > 0 {
		b.WriteString("\nArguments:\n")
		for _, s := range p.positionals {
			b.WriteString("  ")
			b.WriteString(s.metavar)
			b.WriteByte('\n')
			if s.help != "" {
				b.WriteString("      ")
				b.WriteString(s.help)
				b.WriteByte('\n')
			}
		}
	}

	return b.String()
}

func positionalUsage(s *argSpec) string {
	usage := s.metavar
	if s.kind == kindMultiPositional {
		usage += " ..."
	}
	if s.optional {
		usage = "[" + usage + "]"
	}
	return usage
}

func optionUsage(s *argSpec) string {
	parts := make([]string, 0, len(s.aliases))
	for _, alias := range s.aliases {
		form := displayName(alias)
		if s.kind != kindFlag {
			form += " " + s.metavar
		}
		parts = append(parts, form)
	}
	return strings.Join(parts, ", ")
}
