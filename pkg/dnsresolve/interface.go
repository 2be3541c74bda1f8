// Package dnsresolve defines the DNS capability used to verify company domains
// and to find mail exchangers, together with a system resolver, a
// DNS-over-HTTPS resolver and a caching decorator.
//
//go:generate mockgen -package mockdnsresolve -source=interface.go -destination=mock/mockdnsresolve.go *
package dnsresolve

import (
	"context"
	"net"
)

// Resolver looks up host addresses and mail exchangers.
//
// Implementations return an empty result and a nil error when the name does
// not exist or has no records of the requested type. A non-nil error means the
// lookup itself failed (network, server failure, malformed response).
type Resolver interface {
	// LookupHost returns the A and AAAA addresses of host.
	LookupHost(ctx context.Context, host string) ([]string, error)
	// LookupMX returns the mail exchangers of domain sorted by preference,
	// lowest (most preferred) first. Host names carry no trailing dot.
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
}
