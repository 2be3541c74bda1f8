package finder_test

import (
	"context"
	"testing"

	"emailfinder/internal/finder"
	"emailfinder/pkg/domain"
	"emailfinder/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return recorder
}

func spanNames(spans []sdktrace.ReadOnlySpan) []string {
	names := make([]string, 0, len(spans))
	for _, s := range spans {
		names = append(names, s.Name())
	}

	return names
}

func TestFind_RecordsStageSpans(t *testing.T) {
	recorder := recordSpans(t)
	f, m := newFinder(t, finder.Options{})

	m.resolver.EXPECT().ResolveAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.CompanyDomain{domain.NewCompanyDomain("acme.com", domain.DomainSourceDirect)}, nil)
	m.inferrer.EXPECT().Infer(gomock.Any(), gomock.Any(), gomock.Any()).Return(firstDotLast())
	m.prober.EXPECT().ProbeDomain(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respond(func(domain.Candidate) domain.ProbeResult {
			return domain.ProbeResult{MXExists: true, Response: domain.SMTPAccepted, Code: 250}
		}))

	_, err := f.Find(context.Background(), johnDoe)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.ElementsMatch(t, []string{"finder.infer", "finder.probe", "finder.Find"}, spanNames(spans))

	for _, s := range spans {
		if s.Name() != "finder.Find" {
			continue
		}
		attrs := map[string]int64{}
		for _, kv := range s.Attributes() {
			attrs[string(kv.Key)] = kv.Value.AsInt64()
		}
		require.EqualValues(t, 1, attrs["results"])
	}
}

func TestFind_UnresolvableMarksSpanFailed(t *testing.T) {
	recorder := recordSpans(t)
	f, m := newFinder(t, finder.Options{})

	m.resolver.EXPECT().ResolveAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnresolvable, "no domain"))

	_, err := f.Find(context.Background(), johnDoe)
	require.ErrorIs(t, err, serrors.ErrUnresolvable)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, codes.Error, spans[0].Status().Code)
}
