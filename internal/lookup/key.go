package lookup

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"

	"emailfinder/internal/resolver"
	"emailfinder/pkg/domain"
	"emailfinder/pkg/textfold"
)

// Key derives the deduplication key of a normalized query. Queries that only
// differ in case, accents, punctuation, extra domain order or the headless
// flag share a key.
func Key(q domain.PersonQuery) string {
	extras := make([]string, 0, len(q.ExtraDomains))
	for _, d := range q.ExtraDomains {
		if n, ok := resolver.NormalizeDomain(d); ok {
			extras = append(extras, n)
		} else {
			extras = append(extras, strings.ToLower(d))
		}
	}
	slices.Sort(extras)
	extras = slices.Compact(extras)

	parts := []string{
		textfold.Alnum(q.FirstName),
		textfold.Alnum(q.LastName),
		strings.Join(textfold.Words(q.Company), " "),
		strings.Join(extras, ","),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))

	return hex.EncodeToString(sum[:])
}
