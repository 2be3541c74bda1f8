package prober

import (
	"context"
	"sync"
	"time"
)

// hostGate serializes probes per mail exchanger and keeps at least delay
// between the end of one probe and the start of the next.
type hostGate struct {
	delay time.Duration

	mu    sync.Mutex
	hosts map[string]*hostSlot
}

type hostSlot struct {
	// sem holds a token while a probe runs against the host
	sem  chan struct{}
	last time.Time
}

func newHostGate(delay time.Duration) *hostGate {
	return &hostGate{delay: delay, hosts: make(map[string]*hostSlot)}
}

func (g *hostGate) slot(host string) *hostSlot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.hosts[host]
	if !ok {
		s = &hostSlot{sem: make(chan struct{}, 1)}
		g.hosts[host] = s
	}

	return s
}

// reserve blocks until the caller may probe host. The returned func must be
// called once the probe is over.
func (g *hostGate) reserve(ctx context.Context, host string) (func(), error) {
	s := g.slot(host)

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if wait := time.Until(s.last.Add(g.delay)); !s.last.IsZero() && wait > 0 {
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			<-s.sem

			return nil, ctx.Err()
		}
	}

	return func() {
		s.last = time.Now()
		<-s.sem
	}, nil
}
