package finder

import (
	"fmt"
	"slices"
	"strings"

	"emailfinder/pkg/domain"
)

// Score maps a probe result to a confidence tier. It returns false for
// rejected addresses, which are dropped.
//
//   - HIGH: accepted and the format was discovered
//   - MEDIUM: accepted with an assumed format, or inconclusive (catch-all and
//     abandoned domains included) with a discovered format and an existing
//     mail exchanger
//   - LOW: anything else
func Score(r domain.ProbeResult) (domain.Confidence, bool) {
	discovered := r.Candidate.Evidence == domain.EvidenceDiscovered

	switch {
	case r.Response == domain.SMTPRejected:
		return "", false
	case r.Response == domain.SMTPAccepted && discovered:
		return domain.ConfidenceHigh, true
	case r.Response == domain.SMTPAccepted:
		return domain.ConfidenceMedium, true
	case r.Response == domain.SMTPUnknown && discovered && r.MXExists:
		return domain.ConfidenceMedium, true
	default:
		return domain.ConfidenceLow, true
	}
}

// Describe explains which signals contributed to the score of r.
func Describe(d domain.CompanyDomain, formatSource string, r domain.ProbeResult) string {
	parts := make([]string, 0, 3)

	if r.Candidate.Evidence == domain.EvidenceDiscovered {
		parts = append(parts, fmt.Sprintf("format %s discovered via %s", r.Candidate.Format, formatSource))
	} else {
		parts = append(parts, fmt.Sprintf("format %s assumed", r.Candidate.Format))
	}

	switch {
	case !r.MXExists && r.Response == domain.SMTPUnknown:
		parts = append(parts, "no mail exchanger")
	case r.Abandoned:
		parts = append(parts, "probing abandoned")
	case r.CatchAll:
		parts = append(parts, "smtp accepted by catch-all domain")
	case r.Code > 0:
		parts = append(parts, fmt.Sprintf("smtp %s (%d)", strings.ToLower(string(r.Response)), r.Code))
	default:
		parts = append(parts, "smtp "+strings.ReplaceAll(strings.ToLower(string(r.Response)), "_", " "))
	}

	if d.Source != "" {
		parts = append(parts, "domain "+strings.ReplaceAll(strings.ToLower(string(d.Source)), "_", " "))
	}

	return strings.Join(parts, "; ")
}

// Rank removes duplicate addresses, keeping the highest confidence, and sorts
// by confidence, then discovered before assumed, then by order, which gives
// the generation position of each address.
func Rank(results []domain.ScoredResult, order map[string]int) []domain.ScoredResult {
	best := make(map[string]int, len(results))
	out := make([]domain.ScoredResult, 0, len(results))
	for _, r := range results {
		i, dup := best[r.Email]
		if !dup {
			best[r.Email] = len(out)
			out = append(out, r)

			continue
		}
		if r.Confidence.Rank() > out[i].Confidence.Rank() {
			out[i] = r
		}
	}

	slices.SortStableFunc(out, func(a, b domain.ScoredResult) int {
		if a.Confidence.Rank() != b.Confidence.Rank() {
			return b.Confidence.Rank() - a.Confidence.Rank()
		}
		if a.Evidence != b.Evidence {
			if a.Evidence == domain.EvidenceDiscovered {
				return -1
			}

			return 1
		}

		return position(order, a.Email) - position(order, b.Email)
	})

	return out
}

func position(order map[string]int, email string) int {
	if i, ok := order[email]; ok {
		return i
	}

	return len(order)
}
