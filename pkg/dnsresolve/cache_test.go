package dnsresolve

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingResolver struct {
	calls int
	err   error
}

func (c *countingResolver) LookupHost(context.Context, string) ([]string, error) {
	return []string{"127.0.0.1"}, nil
}

func (c *countingResolver) LookupMX(context.Context, string) ([]*net.MX, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}

	return []*net.MX{{Host: "mx.acme.com", Pref: 10}}, nil
}

func TestCached_LookupMX_HitsAndExpires(t *testing.T) {
	inner := &countingResolver{}
	c := NewCached(inner, time.Minute)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	for range 3 {
		mx, err := c.LookupMX(context.Background(), "acme.com")
		require.NoError(t, err)
		require.Len(t, mx, 1)
	}
	require.Equal(t, 1, inner.calls)

	now = now.Add(2 * time.Minute)
	_, err := c.LookupMX(context.Background(), "acme.com")
	require.NoError(t, err)
	require.Equal(t, 2, inner.calls)
}

func TestCached_LookupMX_ErrorsAreNotCached(t *testing.T) {
	inner := &countingResolver{err: errors.New("servfail")}
	c := NewCached(inner, time.Minute)

	_, err := c.LookupMX(context.Background(), "acme.com")
	require.Error(t, err)
	_, err = c.LookupMX(context.Background(), "acme.com")
	require.Error(t, err)
	require.Equal(t, 2, inner.calls)
}

func TestCached_DisabledAndHostPassthrough(t *testing.T) {
	inner := &countingResolver{}
	c := NewCached(inner, 0)

	_, _ = c.LookupMX(context.Background(), "acme.com")
	_, _ = c.LookupMX(context.Background(), "acme.com")
	require.Equal(t, 2, inner.calls)

	addrs, err := c.LookupHost(context.Background(), "acme.com")
	require.NoError(t, err)
	require.Equal(t, []string{"127.0.0.1"}, addrs)
}

func TestNormalizeMX(t *testing.T) {
	out := normalizeMX([]*net.MX{
		{Host: "b.example.", Pref: 20},
		nil,
		{Host: ".", Pref: 0},
		{Host: "A.example.", Pref: 10},
		{Host: "c.example.", Pref: 20},
	})
	require.Len(t, out, 3)
	require.Equal(t, "a.example", out[0].Host)
	require.Equal(t, "b.example", out[1].Host)
	require.Equal(t, "c.example", out[2].Host)
}
