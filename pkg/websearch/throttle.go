package websearch

import (
	"context"
	"time"

	"emailfinder/pkg/logger"
	"emailfinder/pkg/metrics"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Throttled shares one rate limiter between every search and fetch of the
// wrapped provider so the process never exceeds the configured request rate,
// and records request metrics.
type Throttled struct {
	provider Provider
	name     string
	limiter  *rate.Limiter

	requests metric.Int64Counter
	latency  metric.Float64Histogram
}

var _ Provider = (*Throttled)(nil)

// NewThrottled wraps p. rps <= 0 disables limiting. burst is clamped to 1.
func NewThrottled(p Provider, name string, rps float64, burst int) (*Throttled, error) {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	if burst < 1 {
		burst = 1
	}

	meter := otel.Meter("emailfinder/websearch")
	requests, err := meter.Int64Counter(metrics.Namespace+"_search_requests_total",
		metric.WithDescription("Search and fetch requests by provider, operation and outcome"))
	if err != nil {
		return nil, errors.Wrap(err, "create requests counter")
	}
	latency, err := meter.Float64Histogram(metrics.Namespace+"_search_request_duration_seconds",
		metric.WithDescription("Search and fetch request latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.NetworkBuckets...))
	if err != nil {
		return nil, errors.Wrap(err, "create latency histogram")
	}

	return &Throttled{
		provider: p,
		name:     name,
		limiter:  rate.NewLimiter(limit, burst),
		requests: requests,
		latency:  latency,
	}, nil
}

// Search implements Engine.
func (t *Throttled) Search(ctx context.Context, query string) ([]Result, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "wait for search slot")
	}

	start := time.Now()
	results, err := t.provider.Search(ctx, query)
	t.record(ctx, "search", start, err)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	logger.Debug(ctx, "search finished", zap.String("query", query), zap.Int("results", len(results)))

	return results, nil
}

// Fetch implements Fetcher.
func (t *Throttled) Fetch(ctx context.Context, url string) (Document, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return Document{}, errors.Wrap(err, "wait for fetch slot")
	}

	start := time.Now()
	doc, err := t.provider.Fetch(ctx, url)
	t.record(ctx, "fetch", start, err)

	return doc, err //nolint: wrapcheck
}

func (t *Throttled) record(ctx context.Context, op string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, ErrBlocked):
		outcome = "blocked"
	case err != nil:
		outcome = "error"
	}

	attrs := metric.WithAttributes(
		attribute.String("provider", t.name),
		attribute.String("op", op),
		attribute.String("outcome", outcome),
	)
	t.requests.Add(ctx, 1, attrs)
	t.latency.Record(ctx, time.Since(start).Seconds(), attrs)
}
