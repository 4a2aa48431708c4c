package argparse

import (
	"fmt"
	"slices"
	"strings"
)

// choiceSet holds the closed set of legal values for a choice-restricted
// argument. Canonicalization happens in string space: a converted value is
// rendered with formatValue, mapped through the reverse alias table, and
// the result must be a member of the canonical set.
type choiceSet struct {
	canon   []string            // canonical string forms, declaration order
	reverse map[string]string   // spelling (alias or canonical) -> canonical
	aliases map[string][]string // canonical -> alternate spellings
}

// newChoiceSet normalizes choices and aliases together. When choices is
// empty the canonical set is derived from the alias table's keys. An alias
// bound to a canonical value absent from the choice set is a defect in the
// declaring program.
func newChoiceSet[T any](choices []T, aliases map[string][]string, argName string) *choiceSet {
	cs := &choiceSet{
		reverse: make(map[string]string),
		aliases: aliases,
	}
	for _, c := range choices {
		s := formatValue(c)
		cs.canon = append(cs.canon, s)
		cs.reverse[s] = s
	}
	if len(cs.canon) == 0 {
		for canonical := range aliases {
			cs.canon = append(cs.canon, canonical)
			cs.reverse[canonical] = canonical
		}
		slices.Sort(cs.canon)
	}
	for canonical, spellings := range aliases {
		if _, ok := cs.reverse[canonical]; !ok {
			panic(codingErrorf("argument %s: alias target %q is not a declared choice",
				argName, canonical))
		}
		for _, spelling := range spellings {
			cs.reverse[spelling] = canonical
		}
	}
	return cs
}

// canonicalize maps a spelling to its canonical choice, defaulting to the
// spelling itself when no alias matches.
func (cs *choiceSet) canonicalize(s string) string {
	if canonical, ok := cs.reverse[s]; ok {
		return canonical
	}
	return s
}

func (cs *choiceSet) contains(canonical string) bool {
	_, ok := cs.reverse[canonical]
	return ok && cs.reverse[canonical] == canonical
}

// list renders the choice set for help text and error messages, sorted
// lexicographically. With aliases enabled, alternate spellings follow each
// canonical choice in parentheses.
func (cs *choiceSet) list(withAliases bool) string {
	sorted := slices.Clone(cs.canon)
	slices.Sort(sorted)

	parts := make([]string, 0, len(sorted))
	for _, canonical := range sorted {
		if withAliases && len(cs.aliases[canonical]) > 0 {
			parts = append(parts, fmt.Sprintf("%s (%s)",
				canonical, strings.Join(cs.aliases[canonical], ", ")))
		} else {
			parts = append(parts, canonical)
		}
	}
	return strings.Join(parts, ", ")
}

// formatValue is the single string rendering used for choice membership,
// help-text defaults, and range messages, so all three stay consistent.
func formatValue(v any) string {
	return fmt.Sprint(v)
}

// joinValues renders a default sequence for help text, comma-joined like
// a choice listing rather than Go slice syntax.
func joinValues[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, ", ")
}
