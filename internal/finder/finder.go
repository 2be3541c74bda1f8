// Package finder orchestrates a lookup: it resolves the company domains,
// infers their email formats, generates candidate addresses, probes them and
// ranks the outcome by confidence.
package finder

import (
	"context"
	"strings"
	"time"

	"emailfinder/internal/candidate"
	"emailfinder/internal/config"
	"emailfinder/internal/format"
	"emailfinder/pkg/domain"
	"emailfinder/pkg/logger"
	"emailfinder/pkg/serrors"
	"emailfinder/pkg/websearch"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// tracer is resolved on use so a provider installed after start up is honored.
func tracer() trace.Tracer {
	return otel.Tracer("emailfinder/finder")
}

// Options configure a Finder.
type Options struct {
	// MaxParallelDomains bounds how many domains are inferred and probed at
	// once. Zero means no bound.
	MaxParallelDomains int
	// ExpandDiscovered also tries every assumed format after the discovered
	// ones of a domain.
	ExpandDiscovered bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxParallelDomains: cfg.Finder.MaxParallelDomains,
		ExpandDiscovered:   cfg.Finder.ExpandDiscovered,
	}
}

type finder struct {
	resolver DomainResolver
	inferrer FormatInferrer
	prober   MailboxProber
	options  Options
}

// New creates a Finder from its stages.
func New(resolver DomainResolver, inferrer FormatInferrer, prober MailboxProber, options Options) Finder {
	return &finder{
		resolver: resolver,
		inferrer: inferrer,
		prober:   prober,
		options:  options,
	}
}

// NormalizeQuery trims the query and checks it can be looked up: both names
// must carry at least one usable character, and a company or an extra domain
// is required.
func NormalizeQuery(q domain.PersonQuery) (domain.PersonQuery, error) {
	q.FirstName = strings.TrimSpace(q.FirstName)
	q.LastName = strings.TrimSpace(q.LastName)
	q.Company = strings.TrimSpace(q.Company)

	extras := make([]string, 0, len(q.ExtraDomains))
	for _, d := range q.ExtraDomains {
		if d = strings.TrimSpace(d); d != "" {
			extras = append(extras, d)
		}
	}
	q.ExtraDomains = extras

	first, last := candidate.Names(q.FirstName, q.LastName)
	switch {
	case first == "":
		return q, serrors.With(serrors.ErrBadRequest, "first name is required")
	case last == "":
		return q, serrors.With(serrors.ErrBadRequest, "last name is required")
	case q.Company == "" && len(q.ExtraDomains) == 0:
		return q, serrors.With(serrors.ErrBadRequest, "company or at least one domain is required")
	}

	return q, nil
}

// Find runs a lookup. Only invalid input, the absence of any domain and a done
// ctx are errors; every other failure degrades the confidence of the results.
func (f *finder) Find(ctx context.Context, query domain.PersonQuery) (*domain.FindResult, error) {
	q, err := NormalizeQuery(query)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer().Start(ctx, "finder.Find", trace.WithAttributes(
		attribute.String("company", q.Company),
		attribute.Int("extra_domains", len(q.ExtraDomains)),
	))
	defer span.End()

	ctx = websearch.WithHeadless(ctx, q.Headless)
	ctx = logger.WithFields(ctx, zap.String("person", q.FullName()), zap.String("company", q.Company))
	start := time.Now()

	domains, err := f.resolver.ResolveAll(ctx, q.Company, q.ExtraDomains)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "domain resolution failed")

		return nil, err //nolint: wrapcheck
	}
	span.AddEvent("domains resolved", trace.WithAttributes(attribute.Int("domains", len(domains))))

	if err := ctx.Err(); err != nil {
		return nil, abandoned(span, err)
	}

	inferences := f.infer(ctx, q.Company, domains)

	names := make([]string, 0, len(domains))
	formats := make(map[string][]domain.FormatEvidence, len(domains))
	for i, d := range domains {
		names = append(names, d.Domain)
		formats[d.Domain] = inferences[i].Formats
		if f.options.ExpandDiscovered && inferences[i].Discovered() {
			formats[d.Domain] = candidate.Expand(inferences[i].Formats)
		}
	}

	candidates := candidate.GenerateAll(q.FirstName, q.LastName, names, formats)
	order := make(map[string]int, len(candidates))
	byDomain := make(map[string][]domain.Candidate, len(domains))
	for i, c := range candidates {
		order[c.Email] = i
		byDomain[c.Domain] = append(byDomain[c.Domain], c)
	}

	probed := f.probe(ctx, domains, byDomain)
	if err := ctx.Err(); err != nil {
		return nil, abandoned(span, err)
	}

	var scored []domain.ScoredResult
	for i, d := range domains {
		for _, r := range probed[i] {
			confidence, ok := Score(r)
			if !ok {
				continue
			}
			scored = append(scored, domain.ScoredResult{
				Email:      r.Candidate.Email,
				Domain:     d.Domain,
				Confidence: confidence,
				Evidence:   r.Candidate.Evidence,
				Source:     Describe(d, inferences[i].Source, r),
			})
		}
	}
	emails := Rank(scored, order)
	span.SetAttributes(attribute.Int("candidates", len(candidates)), attribute.Int("results", len(emails)))

	logger.Info(ctx, "lookup finished",
		zap.Int("domains", len(domains)),
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(emails)),
		zap.Duration("took", time.Since(start)))

	return &domain.FindResult{
		Profile: domain.Profile{
			Name:      q.FullName(),
			FirstName: q.FirstName,
			LastName:  q.LastName,
			Company:   q.Company,
			Domain:    domains[0].Domain,
		},
		Domains: domains,
		Emails:  emails,
	}, nil
}

// abandoned records a lookup cut short by its context. Partial results are
// dropped since probes interrupted by cancellation look like failures.
func abandoned(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, "lookup canceled")

	return errors.Wrap(err, "lookup canceled")
}

// infer runs format inference for every domain concurrently. The result is
// indexed like domains.
func (f *finder) infer(ctx context.Context, company string, domains []domain.CompanyDomain) []format.Inference {
	ctx, span := tracer().Start(ctx, "finder.infer")
	defer span.End()

	out := make([]format.Inference, len(domains))

	var g errgroup.Group
	if f.options.MaxParallelDomains > 0 {
		g.SetLimit(f.options.MaxParallelDomains)
	}
	for i, d := range domains {
		g.Go(func() error {
			out[i] = f.inferrer.Infer(ctx, company, d.Domain)

			return nil
		})
	}
	_ = g.Wait()

	return out
}

// probe verifies the candidates of every domain concurrently. The result is
// indexed like domains.
func (f *finder) probe(ctx context.Context, domains []domain.CompanyDomain, byDomain map[string][]domain.Candidate) [][]domain.ProbeResult {
	ctx, span := tracer().Start(ctx, "finder.probe")
	defer span.End()

	out := make([][]domain.ProbeResult, len(domains))

	var g errgroup.Group
	if f.options.MaxParallelDomains > 0 {
		g.SetLimit(f.options.MaxParallelDomains)
	}
	for i, d := range domains {
		candidates := byDomain[d.Domain]
		if len(candidates) == 0 {
			continue
		}
		g.Go(func() error {
			out[i] = f.prober.ProbeDomain(ctx, d.Domain, candidates)

			return nil
		})
	}
	_ = g.Wait()

	return out
}
