package resolver

import (
	"net"
	"net/url"
	"strings"

	"emailfinder/pkg/textfold"

	"golang.org/x/net/publicsuffix"
)

// legal entity suffixes dropped from company names
var legalSuffixes = map[string]struct{}{ //nolint: gochecknoglobals
	"inc": {}, "incorporated": {}, "llc": {}, "llp": {}, "lp": {}, "ltd": {}, "limited": {},
	"corp": {}, "corporation": {}, "co": {}, "company": {}, "gmbh": {}, "ag": {}, "plc": {},
	"sa": {}, "sas": {}, "sarl": {}, "srl": {}, "spa": {}, "bv": {}, "nv": {}, "pty": {},
	"oy": {}, "ab": {}, "as": {}, "kk": {}, "pvt": {}, "pte": {},
}

// NormalizeCompany returns the host label guessed from a company name:
//   - Fold accents and lower-case
//   - Drop legal entity suffixes ("Inc", "LLC", "GmbH"...) at the end of the name
//   - Remove whitespace and punctuation
//
// "Acme Widgets, Inc." becomes "acmewidgets". An empty string is returned when
// nothing usable is left.
func NormalizeCompany(company string) string {
	words := textfold.Words(company)
	// keep at least one word so "The Company" style names survive
	for len(words) > 1 {
		if _, ok := legalSuffixes[words[len(words)-1]]; !ok {
			break
		}
		words = words[:len(words)-1]
	}

	return strings.Join(words, "")
}

// NormalizeDomain extracts a bare lower-case host name from user input that
// may be a host, a URL or an address:
//   - Strip scheme, credentials, path, query and port
//   - Strip a leading "@" or "www." and a trailing dot
//
// It returns false when the result does not look like a domain name.
func NormalizeDomain(raw string) (string, bool) {
	s := strings.TrimSpace(strings.ToLower(raw))
	if i := strings.LastIndex(s, "@"); i >= 0 {
		s = s[i+1:]
	}
	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil {
			return "", false
		}
		s = u.Host
	}
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if h, _, err := net.SplitHostPort(s); err == nil {
		s = h
	}
	s = strings.TrimSuffix(s, ".")
	s = strings.TrimPrefix(s, "www.")

	if !strings.Contains(s, ".") || strings.HasPrefix(s, ".") || strings.Contains(s, "..") {
		return "", false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' && r != '.' {
			return "", false
		}
	}

	return s, true
}

// RegistrableDomain returns the registrable part (eTLD+1) of a URL or host,
// e.g. "https://careers.acme.co.uk/jobs" gives "acme.co.uk".
func RegistrableDomain(rawURL string) (string, bool) {
	host, ok := NormalizeDomain(rawURL)
	if !ok {
		return "", false
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", false
	}

	return registrable, true
}
