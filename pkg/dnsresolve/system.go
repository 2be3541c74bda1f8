package dnsresolve

import (
	"context"
	"errors"
	"net"

	ferrors "github.com/go-faster/errors"
)

// System resolves names through the operating system resolver.
type System struct {
	resolver *net.Resolver
}

var _ Resolver = (*System)(nil)

// NewSystem returns a Resolver backed by net.DefaultResolver when r is nil.
func NewSystem(r *net.Resolver) *System {
	if r == nil {
		r = net.DefaultResolver
	}

	return &System{resolver: r}
}

// LookupHost implements Resolver.
func (s *System) LookupHost(ctx context.Context, host string) ([]string, error) {
	addrs, err := s.resolver.LookupHost(ctx, host)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}

		return nil, ferrors.Wrapf(err, "lookup host %q", host)
	}

	return addrs, nil
}

// LookupMX implements Resolver.
func (s *System) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	records, err := s.resolver.LookupMX(ctx, domain)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}

		return nil, ferrors.Wrapf(err, "lookup mx %q", domain)
	}

	return normalizeMX(records), nil
}

func isNotFound(err error) bool {
	var dnsErr *net.DNSError

	return errors.As(err, &dnsErr) && dnsErr.IsNotFound
}
