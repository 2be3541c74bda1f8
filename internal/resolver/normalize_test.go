package resolver_test

import (
	"testing"

	"emailfinder/internal/resolver"
)

func TestNormalizeCompany(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "plain", in: "Acme", out: "acme"},
		{name: "legal suffix with punctuation", in: "Acme Widgets, Inc.", out: "acmewidgets"},
		{name: "stacked suffixes", in: "Globex Corporation Ltd", out: "globex"},
		{name: "accents", in: "Société Générale SA", out: "societegenerale"},
		{name: "suffix only name is kept", in: "Company", out: "company"},
		{name: "suffix in the middle is kept", in: "Co Op Bank", out: "coopbank"},
		{name: "ampersand", in: "Procter & Gamble Co.", out: "proctergamble"},
		{name: "empty", in: "  ", out: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolver.NormalizeCompany(tc.in); got != tc.out {
				t.Fatalf("NormalizeCompany(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestNormalizeDomain(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{name: "bare", in: "Acme.com", out: "acme.com", ok: true},
		{name: "url with path and port", in: "https://www.acme.com:443/about?x=1", out: "acme.com", ok: true},
		{name: "at prefix", in: "@acme.io", out: "acme.io", ok: true},
		{name: "address", in: "john@mail.acme.com", out: "mail.acme.com", ok: true},
		{name: "trailing dot", in: "acme.com.", out: "acme.com", ok: true},
		{name: "no dot", in: "localhost", ok: false},
		{name: "spaces inside", in: "ac me.com", ok: false},
		{name: "empty", in: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := resolver.NormalizeDomain(tc.in)
			if ok != tc.ok {
				t.Fatalf("NormalizeDomain(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if ok && got != tc.out {
				t.Fatalf("NormalizeDomain(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestRegistrableDomain(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{in: "https://careers.acme.co.uk/jobs", out: "acme.co.uk", ok: true},
		{in: "https://www.linkedin.com/company/acme", out: "linkedin.com", ok: true},
		{in: "acme.com", out: "acme.com", ok: true},
		{in: "co.uk", ok: false},
		{in: "not a url", ok: false},
	}

	for _, tc := range cases {
		got, ok := resolver.RegistrableDomain(tc.in)
		if ok != tc.ok || got != tc.out {
			t.Fatalf("RegistrableDomain(%q) = %q, %v, want %q, %v", tc.in, got, ok, tc.out, tc.ok)
		}
	}
}
