package dnsresolve

import (
	"net"
	"slices"
	"strings"
)

// normalizeMX drops null MX records (RFC 7505), trims trailing dots and
// lower-cases hosts, then sorts by preference keeping the server order for
// equal preferences.
func normalizeMX(records []*net.MX) []*net.MX {
	out := make([]*net.MX, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		host := strings.ToLower(strings.TrimSuffix(r.Host, "."))
		if host == "" {
			continue
		}
		out = append(out, &net.MX{Host: host, Pref: r.Pref})
	}

	slices.SortStableFunc(out, func(a, b *net.MX) int {
		return int(a.Pref) - int(b.Pref)
	})

	return out
}
