package lookup_test

import (
	"testing"

	"emailfinder/internal/lookup"
	"emailfinder/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	base := lookup.Key(domain.PersonQuery{
		FirstName:    "José",
		LastName:     "Doe",
		Company:      "Acme, Inc.",
		ExtraDomains: []string{"acme.io", "acme.dev"},
	})

	same := []domain.PersonQuery{
		{FirstName: "jose", LastName: "DOE", Company: "acme inc", ExtraDomains: []string{"acme.dev", "acme.io"}},
		{FirstName: "Jose", LastName: "Doe", Company: "Acme Inc", ExtraDomains: []string{"https://www.acme.io/", "ACME.dev", "acme.dev"}},
		{FirstName: "José", LastName: "Doe", Company: "Acme, Inc.", ExtraDomains: []string{"acme.io", "acme.dev"}, Headless: true},
	}
	for _, q := range same {
		require.Equal(t, base, lookup.Key(q), q)
	}

	different := []domain.PersonQuery{
		{FirstName: "Jane", LastName: "Doe", Company: "Acme, Inc.", ExtraDomains: []string{"acme.io", "acme.dev"}},
		{FirstName: "José", LastName: "Doe", Company: "Acme Labs", ExtraDomains: []string{"acme.io", "acme.dev"}},
		{FirstName: "José", LastName: "Doe", Company: "Acme, Inc.", ExtraDomains: []string{"acme.io"}},
	}
	for _, q := range different {
		require.NotEqual(t, base, lookup.Key(q), q)
	}

	require.Len(t, base, 64)
}
