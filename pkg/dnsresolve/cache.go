package dnsresolve

import (
	"context"
	"net"
	"sync"
	"time"
)

type cachedMX struct {
	records   []*net.MX
	expiresAt time.Time
}

// Cached decorates a Resolver with an in-memory MX cache. Host lookups are
// passed through. Failed lookups are not cached.
type Cached struct {
	Resolver

	ttl time.Duration
	now func() time.Time

	mu sync.RWMutex
	mx map[string]cachedMX
}

// NewCached wraps r. A non-positive ttl disables caching.
func NewCached(r Resolver, ttl time.Duration) *Cached {
	return &Cached{
		Resolver: r,
		ttl:      ttl,
		now:      time.Now,
		mx:       make(map[string]cachedMX),
	}
}

// LookupMX implements Resolver.
func (c *Cached) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	if c.ttl <= 0 {
		return c.Resolver.LookupMX(ctx, domain)
	}

	c.mu.RLock()
	entry, ok := c.mx[domain]
	c.mu.RUnlock()
	if ok && c.now().Before(entry.expiresAt) {
		return entry.records, nil
	}

	records, err := c.Resolver.LookupMX(ctx, domain)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	c.mu.Lock()
	c.mx[domain] = cachedMX{records: records, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()

	return records, nil
}
