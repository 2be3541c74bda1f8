package prober

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHostGate_SerializesPerHost(t *testing.T) {
	g := newHostGate(0)

	var (
		mu      sync.Mutex
		running int
		maxSeen int
		wg      sync.WaitGroup
	)
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := g.reserve(context.Background(), "mx.acme.com")
			if err != nil {
				t.Error(err)

				return
			}
			mu.Lock()
			running++
			maxSeen = max(maxSeen, running)
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			running--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()

	require.Equal(t, 1, maxSeen)
}

func TestHostGate_IndependentHosts(t *testing.T) {
	g := newHostGate(time.Hour)

	releaseA, err := g.reserve(context.Background(), "mx.a.test")
	require.NoError(t, err)
	defer releaseA()

	releaseB, err := g.reserve(context.Background(), "mx.b.test")
	require.NoError(t, err)
	releaseB()
}

func TestHostGate_WaitHonoursContext(t *testing.T) {
	g := newHostGate(time.Hour)

	release, err := g.reserve(context.Background(), "mx.acme.com")
	require.NoError(t, err)
	release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = g.reserve(ctx, "mx.acme.com")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// the slot was handed back
	s := g.slot("mx.acme.com")
	require.Empty(t, s.sem)
}
