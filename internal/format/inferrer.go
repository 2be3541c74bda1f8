// Package format infers the email naming convention of a domain from web
// search evidence, falling back to every known convention when there is none.
package format

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"emailfinder/internal/config"
	"emailfinder/pkg/domain"
	"emailfinder/pkg/logger"
	"emailfinder/pkg/websearch"

	"go.uber.org/zap"
)

// Where an inference came from.
const (
	SourceMemo    = "memo"
	SourceSnippet = "search snippet"
	SourcePage    = "search result page"
	SourceAssumed = "assumed"
)

// Options configure an Inferrer.
type Options struct {
	// MaxDiscovered caps the number of distinct discovered formats. Zero means 1.
	MaxDiscovered int
	// FetchPages is the number of result pages fetched when snippets carry no
	// evidence. Zero disables fetching.
	FetchPages int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxDiscovered: cfg.Format.MaxDiscovered,
		FetchPages:    cfg.Format.FetchPages,
	}
}

// Inference is the outcome of format inference for one domain.
type Inference struct {
	Formats []domain.FormatEvidence
	Source  string
}

// Discovered reports whether the inference is backed by evidence.
func (i Inference) Discovered() bool {
	return len(i.Formats) > 0 && i.Formats[0].Evidence == domain.EvidenceDiscovered
}

// Assumed returns the inference used when there is no evidence: every known
// format in the fixed fallback order.
func Assumed() Inference {
	formats := domain.AssumedFormats()
	out := make([]domain.FormatEvidence, 0, len(formats))
	for _, f := range formats {
		out = append(out, domain.FormatEvidence{Format: f, Evidence: domain.EvidenceAssumed})
	}

	return Inference{Formats: out, Source: SourceAssumed}
}

// Inferrer infers formats. It is safe for concurrent use.
type Inferrer struct {
	search   websearch.Engine
	fetch    websearch.Fetcher
	memo     Memo
	matchers []Matcher
	opts     Options
}

// New creates an Inferrer. fetch and memo are optional.
func New(search websearch.Engine, fetch websearch.Fetcher, memo Memo, opts Options) *Inferrer {
	if opts.MaxDiscovered <= 0 {
		opts.MaxDiscovered = 1
	}

	return &Inferrer{
		search:   search,
		fetch:    fetch,
		memo:     memo,
		matchers: DefaultMatchers(),
		opts:     opts,
	}
}

// Query returns the search query used to find format evidence.
func Query(company, domainName string) string {
	if company == "" {
		return fmt.Sprintf("email format @%s", domainName)
	}

	return fmt.Sprintf("%q email format @%s", company, domainName)
}

// Infer returns the formats of domainName. It never fails: missing evidence
// and transport failures both yield Assumed.
func (i *Inferrer) Infer(ctx context.Context, company, domainName string) Inference {
	ctx = logger.WithFields(ctx, zap.String("domain", domainName))

	if i.memo != nil {
		if formats, ok := i.memo.Get(ctx, domainName); ok {
			logger.Debug(ctx, "formats found in memo", zap.Any("formats", formats))

			return discovered(formats, SourceMemo)
		}
	}

	if i.search == nil {
		return Assumed()
	}

	results, err := i.search.Search(ctx, Query(company, domainName))
	if err != nil {
		logger.Warn(ctx, "format search failed, assuming all formats", zap.Error(err))

		return Assumed()
	}

	docs := make([]websearch.Document, 0, len(results))
	for _, r := range results {
		docs = append(docs, websearch.ResultDocument(r))
	}
	if formats := i.scan(docs); len(formats) > 0 {
		return i.remember(ctx, domainName, discovered(formats, SourceSnippet))
	}

	if formats := i.scan(i.fetchPages(ctx, results)); len(formats) > 0 {
		return i.remember(ctx, domainName, discovered(formats, SourcePage))
	}

	logger.Debug(ctx, "no format evidence found, assuming all formats")

	return Assumed()
}

// scan applies the matchers to docs, documents quoting the LeadIQ phrase
// first, and collects distinct formats in discovery order.
func (i *Inferrer) scan(docs []websearch.Document) []domain.EmailFormat {
	ordered := make([]websearch.Document, 0, len(docs))
	rest := make([]websearch.Document, 0, len(docs))
	for _, d := range docs {
		if strings.Contains(Prepare(d), LeadIQPhrase) {
			ordered = append(ordered, d)
		} else {
			rest = append(rest, d)
		}
	}
	ordered = append(ordered, rest...)

	var found []domain.EmailFormat
	for _, d := range ordered {
		f, ok := MatchDocument(i.matchers, d)
		if !ok || slices.Contains(found, f) {
			continue
		}
		found = append(found, f)
		if len(found) >= i.opts.MaxDiscovered {
			break
		}
	}

	return found
}

func (i *Inferrer) fetchPages(ctx context.Context, results []websearch.Result) []websearch.Document {
	if i.fetch == nil || i.opts.FetchPages <= 0 {
		return nil
	}

	var docs []websearch.Document
	for _, r := range results {
		if len(docs) >= i.opts.FetchPages || ctx.Err() != nil {
			break
		}
		if r.URL == "" {
			continue
		}

		doc, err := i.fetch.Fetch(ctx, r.URL)
		if err != nil {
			logger.Debug(ctx, "could not fetch result page", zap.String("url", r.URL), zap.Error(err))
			if errors.Is(err, websearch.ErrBlocked) {
				break
			}

			continue
		}
		docs = append(docs, doc)
	}

	return docs
}

func (i *Inferrer) remember(ctx context.Context, domainName string, inf Inference) Inference {
	logger.Info(ctx, "email format discovered", zap.String("source", inf.Source), zap.Any("formats", inf.Formats))

	if i.memo != nil {
		formats := make([]domain.EmailFormat, 0, len(inf.Formats))
		for _, f := range inf.Formats {
			formats = append(formats, f.Format)
		}
		i.memo.Put(ctx, domainName, formats)
	}

	return inf
}

func discovered(formats []domain.EmailFormat, source string) Inference {
	out := make([]domain.FormatEvidence, 0, len(formats))
	for _, f := range formats {
		out = append(out, domain.FormatEvidence{Format: f, Evidence: domain.EvidenceDiscovered})
	}

	return Inference{Formats: out, Source: source}
}
