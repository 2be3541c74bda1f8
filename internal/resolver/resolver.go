// Package resolver maps a company name to the mail domains searched for a
// person: a direct "{name}.com" guess verified through DNS, the top organic
// search result that is not an aggregator, and caller supplied domains.
package resolver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"emailfinder/internal/config"
	"emailfinder/pkg/dnsresolve"
	"emailfinder/pkg/domain"
	"emailfinder/pkg/logger"
	"emailfinder/pkg/serrors"
	"emailfinder/pkg/websearch"

	"go.uber.org/zap"
)

// DefaultDenylist holds registrable domains of social networks, directories
// and data brokers that rank high for company names but never host a
// company's mail.
func DefaultDenylist() []string {
	return []string{
		"linkedin.com", "facebook.com", "twitter.com", "x.com", "instagram.com", "youtube.com",
		"tiktok.com", "reddit.com", "medium.com", "wikipedia.org", "wikidata.org",
		"crunchbase.com", "bloomberg.com", "glassdoor.com", "indeed.com", "ziprecruiter.com",
		"zoominfo.com", "rocketreach.co", "leadiq.com", "apollo.io", "signalhire.com",
		"contactout.com", "lusha.com", "hunter.io", "dnb.com", "owler.com", "pitchbook.com",
		"craft.co", "cbinsights.com", "tracxn.com", "comparably.com", "builtin.com",
		"yelp.com", "bbb.org", "yellowpages.com", "mapquest.com", "opencorporates.com",
		"forbes.com", "reuters.com", "wsj.com", "nytimes.com", "sec.gov",
		"google.com", "bing.com", "duckduckgo.com", "yahoo.com",
	}
}

// Options configure a Resolver.
type Options struct {
	// ReachabilityCheck accepts a direct guess whose website answers, even
	// without DNS evidence from the configured resolver.
	ReachabilityCheck bool
	// SearchResults is the number of ranked results scanned. Zero means 5.
	SearchResults int
	// ExtraDenylist is appended to DefaultDenylist.
	ExtraDenylist []string
	// LookupTimeout bounds each DNS lookup. Zero disables the bound.
	LookupTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ReachabilityCheck: cfg.Resolver.ReachabilityCheck,
		SearchResults:     cfg.Resolver.SearchResults,
		ExtraDenylist:     cfg.Resolver.ExtraDenylist,
		LookupTimeout:     cfg.DNS.Timeout,
	}
}

// Resolver resolves company names to domains. It is safe for concurrent use.
type Resolver struct {
	dns        dnsresolve.Resolver
	search     websearch.Engine
	httpClient *http.Client
	opts       Options
	denylist   map[string]struct{}
}

// New creates a Resolver. search may be nil, in which case only the direct
// guess is attempted. httpClient is only used for the reachability check.
func New(dns dnsresolve.Resolver, search websearch.Engine, httpClient *http.Client, opts Options) *Resolver {
	if opts.SearchResults <= 0 {
		opts.SearchResults = 5
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}

	denylist := make(map[string]struct{})
	for _, d := range append(DefaultDenylist(), opts.ExtraDenylist...) {
		if n, ok := NormalizeDomain(d); ok {
			denylist[n] = struct{}{}
		}
	}

	return &Resolver{dns: dns, search: search, httpClient: httpClient, opts: opts, denylist: denylist}
}

// Resolve returns the canonical domain of company. It tries the direct
// "{normalized}.com" guess first and falls back to web search. A not-found
// semantic error is returned when neither yields a domain; search transport
// failures are logged and treated the same way. A done ctx is reported as is.
func (r *Resolver) Resolve(ctx context.Context, company string) (domain.CompanyDomain, error) {
	normalized := NormalizeCompany(company)
	if normalized == "" {
		return domain.CompanyDomain{}, serrors.With(serrors.ErrNotFound, "company name %q has no usable characters", company)
	}

	guess := normalized + ".com"
	if r.exists(ctx, guess) {
		logger.Debug(ctx, "direct domain guess verified", zap.String("domain", guess))

		return domain.NewCompanyDomain(guess, domain.DomainSourceDirect), nil
	}

	if found, ok := r.searchDomain(ctx, company); ok {
		logger.Debug(ctx, "domain inferred from search", zap.String("domain", found))

		return domain.NewCompanyDomain(found, domain.DomainSourceSearchInferred), nil
	}

	if err := ctx.Err(); err != nil {
		return domain.CompanyDomain{}, err
	}

	return domain.CompanyDomain{}, serrors.With(serrors.ErrNotFound, "no domain found for %q", company)
}

// ResolveAll returns every domain in scope for a lookup: the resolved company
// domain (when company is not empty and resolution succeeds) followed by the
// normalized extra domains, de-duplicated. An unresolvable semantic error is
// returned when the list would be empty.
func (r *Resolver) ResolveAll(ctx context.Context, company string, extras []string) ([]domain.CompanyDomain, error) {
	var out []domain.CompanyDomain
	seen := make(map[string]struct{})

	if company != "" {
		resolved, err := r.Resolve(ctx, company)
		switch {
		case err == nil:
			out = append(out, resolved)
			seen[resolved.Domain] = struct{}{}
		case errors.Is(err, serrors.ErrNotFound):
			logger.Info(ctx, "company domain not resolved", zap.String("company", company), zap.Error(err))
		default:
			return nil, err
		}
	}

	for _, extra := range extras {
		d, ok := NormalizeDomain(extra)
		if !ok {
			logger.Warn(ctx, "ignoring invalid extra domain", zap.String("domain", extra))

			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, domain.NewCompanyDomain(d, domain.DomainSourceSupplied))
	}

	if len(out) == 0 {
		return nil, serrors.With(serrors.ErrUnresolvable, "no domain could be resolved for %q", company)
	}

	return out, nil
}

// exists reports whether host has address or mail exchanger records, or when
// enabled, answers over HTTP.
func (r *Resolver) exists(ctx context.Context, host string) bool {
	lookupCtx := ctx
	if r.opts.LookupTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, r.opts.LookupTimeout)
		defer cancel()
	}

	addrs, err := r.dns.LookupHost(lookupCtx, host)
	if err != nil {
		logger.Debug(ctx, "host lookup failed", zap.String("host", host), zap.Error(err))
	}
	if len(addrs) > 0 {
		return true
	}

	mx, err := r.dns.LookupMX(lookupCtx, host)
	if err != nil {
		logger.Debug(ctx, "mx lookup failed", zap.String("host", host), zap.Error(err))
	}
	if len(mx) > 0 {
		return true
	}

	if !r.opts.ReachabilityCheck {
		return false
	}

	return r.reachable(ctx, host)
}

func (r *Resolver) reachable(ctx context.Context, host string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, "https://"+host, nil)
	if err != nil {
		return false
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		logger.Debug(ctx, "reachability check failed", zap.String("host", host), zap.Error(err))

		return false
	}
	_ = resp.Body.Close()

	return resp.StatusCode < http.StatusInternalServerError
}

func (r *Resolver) searchDomain(ctx context.Context, company string) (string, bool) {
	if r.search == nil {
		return "", false
	}

	results, err := r.search.Search(ctx, company+" official website")
	if err != nil {
		logger.Warn(ctx, "company website search failed", zap.String("company", company), zap.Error(err))

		return "", false
	}

	for i, res := range results {
		if i >= r.opts.SearchResults {
			break
		}
		registrable, ok := RegistrableDomain(res.URL)
		if !ok {
			continue
		}
		if _, denied := r.denylist[registrable]; denied {
			continue
		}

		return registrable, true
	}

	return "", false
}
