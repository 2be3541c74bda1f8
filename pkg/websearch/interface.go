// Package websearch defines the search and fetch capabilities used to resolve
// company domains and to find email format evidence. Concrete transports live
// in sub-packages: duckduckgo (plain HTTP) and browser (rendered with a
// headless Chromium).
//
//go:generate mockgen -package mockwebsearch -source=interface.go -destination=mock/mockwebsearch.go *
package websearch

import (
	"context"
	"errors"
)

// ErrBlocked is returned when the search provider answered with a CAPTCHA or
// bot-detection page instead of results.
var ErrBlocked = errors.New("search provider blocked the request")

// Result is a single organic search result.
type Result struct {
	Title   string
	URL     string
	Snippet string
}

// Document is the textual content of a search result or fetched page that
// matchers can inspect.
type Document struct {
	URL   string
	Title string
	Text  string
}

// Engine performs web searches.
type Engine interface {
	// Search returns ranked organic results for query, best first.
	Search(ctx context.Context, query string) ([]Result, error)
}

// Fetcher downloads a page and extracts its visible text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Document, error)
}

// Provider is a transport that can both search and fetch.
type Provider interface {
	Engine
	Fetcher
}

type headlessKey struct{}

// WithHeadless returns a context carrying the caller's headless preference for
// transports that drive a browser.
func WithHeadless(ctx context.Context, headless bool) context.Context {
	return context.WithValue(ctx, headlessKey{}, headless)
}

// HeadlessFromContext returns the headless preference stored in ctx and
// whether one was set.
func HeadlessFromContext(ctx context.Context) (bool, bool) {
	v, ok := ctx.Value(headlessKey{}).(bool)

	return v, ok
}

// ResultDocument converts a search result into a Document made of its title
// and snippet.
func ResultDocument(r Result) Document {
	return Document{URL: r.URL, Title: r.Title, Text: r.Title + "\n" + r.Snippet}
}
