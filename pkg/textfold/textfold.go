// Package textfold reduces human names and company names to plain lowercase
// ASCII so they can be used in host names and email local parts.
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters that do not decompose into a base letter plus combining marks.
var specialLetters = strings.NewReplacer( //nolint: gochecknoglobals
	"ß", "ss", "æ", "ae", "Æ", "ae", "ø", "o", "Ø", "o", "œ", "oe", "Œ", "oe",
	"ł", "l", "Ł", "l", "đ", "d", "Đ", "d", "þ", "th", "Þ", "th", "ı", "i",
)

// Fold lowercases s and strips diacritics, e.g. "José Müller" -> "jose muller".
// Characters without an ASCII base are kept as they are.
func Fold(s string) string {
	s = specialLetters.Replace(s)
	// transformer chains are stateful, build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.ToLower(folded)
}

// Alnum folds s and keeps only ASCII letters and digits.
func Alnum(s string) string {
	folded := Fold(s)

	var sb strings.Builder
	sb.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// Words folds s and splits it into ASCII alphanumeric words. Any other
// character acts as a separator.
func Words(s string) []string {
	return strings.FieldsFunc(Fold(s), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
}
