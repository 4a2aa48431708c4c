// Package textfmt formats numbers, words and durations for human-facing
// toolkit output.
package textfmt

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IntWithCommas renders n with thousands separators: 1234567 becomes
// "1,234,567".
func IntWithCommas(n int64) string {
	if n < 0 {
		return "-" + IntWithCommas(-n)
	}
	var result string
	for n >= 1000 {
		result = fmt.Sprintf(",%03d%s", n%1000, result)
		n /= 1000
	}
	return fmt.Sprintf("%d%s", n, result)
}

// FloatWithCommas renders x with a comma-grouped integer part and two
// decimal places.
func FloatWithCommas(x float64) string {
	intPart := math.Floor(x)
	fracPart := x - intPart
	return IntWithCommas(int64(intPart)) + fmt.Sprintf("%.2f", fracPart)[1:]
}

// Pluralize applies naive English pluralization rules: trailing y after a
// consonant becomes ies, sibilant endings take es, everything else takes s.
func Pluralize(word string) string {
	if word == "" {
		return word
	}
	if strings.HasSuffix(word, "y") && len(word) >= 2 && !isVowel(rune(word[len(word)-2])) {
		return word[:len(word)-1] + "ies"
	}
	for _, suffix := range []string{"s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(word, suffix) {
			return word + "es"
		}
	}
	return word + "s"
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiouAEIOU", r)
}

// CapFirst upper-cases the first rune, leaving the rest untouched.
func CapFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// MinutesSeconds phrases an elapsed duration in natural language:
// 3754.2 seconds becomes "1 hour 2 minutes 34.2 seconds".
func MinutesSeconds(secs float64) string {
	mins := int(secs / 60)
	secs = math.Mod(secs, 60)
	hours := mins / 60
	mins = mins % 60

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%d %s ", hours, countNoun(hours, "hour"))
	}
	fmt.Fprintf(&b, "%d %s ", mins, countNoun(mins, "minute"))

	secstr := fmt.Sprintf("%.1f", secs)
	singular := secstr == "1.0"
	if secs == math.Trunc(secs) {
		secstr = fmt.Sprintf("%d", int(secs))
		singular = secstr == "1"
	}
	word := "seconds"
	if singular {
		word = "second"
	}
	fmt.Fprintf(&b, "%s %s", secstr, word)
	return b.String()
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return Pluralize(noun)
}
