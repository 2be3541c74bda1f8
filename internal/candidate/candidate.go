// Package candidate turns a person's name, the domains in scope and their
// formats into the ordered list of addresses to verify.
package candidate

import (
	"slices"

	"emailfinder/pkg/domain"
	"emailfinder/pkg/textfold"

	"github.com/badoux/checkmail"
)

// Names reduces first and last names to the ASCII letters and digits used in
// local parts.
func Names(first, last string) (string, string) {
	return textfold.Alnum(first), textfold.Alnum(last)
}

// Order returns formats with discovered ones first, each group keeping its
// relative order. Duplicate formats keep their first occurrence.
func Order(formats []domain.FormatEvidence) []domain.FormatEvidence {
	out := make([]domain.FormatEvidence, 0, len(formats))
	seen := make(map[domain.EmailFormat]struct{}, len(formats))
	for _, f := range formats {
		if _, dup := seen[f.Format]; dup {
			continue
		}
		seen[f.Format] = struct{}{}
		out = append(out, f)
	}
	slices.SortStableFunc(out, func(a, b domain.FormatEvidence) int {
		return evidenceRank(a.Evidence) - evidenceRank(b.Evidence)
	})

	return out
}

// Expand appends every assumed format missing from formats, in the fixed
// fallback order.
func Expand(formats []domain.FormatEvidence) []domain.FormatEvidence {
	out := slices.Clone(formats)
	for _, f := range domain.AssumedFormats() {
		if !slices.ContainsFunc(out, func(e domain.FormatEvidence) bool { return e.Format == f }) {
			out = append(out, domain.FormatEvidence{Format: f, Evidence: domain.EvidenceAssumed})
		}
	}

	return out
}

// Generate returns the candidates for one domain in priority order. Formats
// that cannot be rendered for the given names, and addresses that are not
// syntactically valid, are skipped.
func Generate(first, last, domainName string, formats []domain.FormatEvidence) []domain.Candidate {
	return generate(first, last, domainName, formats, make(map[string]struct{}))
}

// GenerateAll generates candidates for every domain, in domain order, without
// repeating an address already produced for an earlier domain.
func GenerateAll(first, last string, domains []string, formatsByDomain map[string][]domain.FormatEvidence) []domain.Candidate {
	seen := make(map[string]struct{})

	var out []domain.Candidate
	for _, d := range domains {
		out = append(out, generate(first, last, d, formatsByDomain[d], seen)...)
	}

	return out
}

func generate(first, last, domainName string, formats []domain.FormatEvidence, seen map[string]struct{}) []domain.Candidate {
	first, last = Names(first, last)

	var out []domain.Candidate
	for _, f := range Order(formats) {
		local := f.Format.LocalPart(first, last)
		if local == "" {
			continue
		}
		email := local + "@" + domainName
		if _, dup := seen[email]; dup {
			continue
		}
		if err := checkmail.ValidateFormat(email); err != nil {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, domain.Candidate{
			Email:    email,
			Domain:   domainName,
			Format:   f.Format,
			Evidence: f.Evidence,
		})
	}

	return out
}

func evidenceRank(e domain.Evidence) int {
	if e == domain.EvidenceDiscovered {
		return 0
	}

	return 1
}
