// Package browser implements websearch.Provider by rendering pages in a
// Chromium instance driven through the DevTools protocol. It is slower than
// plain HTTP but sees the same page a user would, including client-side
// rendered content.
package browser

import (
	"context"
	"strings"
	"sync"
	"time"

	"emailfinder/pkg/logger"
	"emailfinder/pkg/serrors"
	"emailfinder/pkg/websearch"
	"emailfinder/pkg/websearch/duckduckgo"

	"github.com/go-faster/errors"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// Options configure the browser transport.
type Options struct {
	// Bin is the Chromium executable. Empty lets the launcher find or download one.
	Bin string
	// Headless is the default mode when the request context carries no preference.
	Headless bool
	// NavigationTimeout bounds loading a single page.
	NavigationTimeout time.Duration
	// SearchBaseURL is the DuckDuckGo HTML endpoint used for searches.
	SearchBaseURL string
	// MaxResults caps the number of results returned by Search.
	MaxResults int
	// UserAgent overrides the browser user agent when set.
	UserAgent string
}

type instance struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// Browser lazily starts one Chromium per display mode (headless or visible) and
// reuses it for every request. Each page is opened in its own incognito
// context. It is safe for concurrent use.
type Browser struct {
	opts Options

	mu        sync.Mutex
	instances map[bool]*instance
}

var _ websearch.Provider = (*Browser)(nil)

// New creates a Browser. No process is started until the first request.
func New(opts Options) *Browser {
	if opts.NavigationTimeout <= 0 {
		opts.NavigationTimeout = 30 * time.Second
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = 10
	}

	return &Browser{opts: opts, instances: make(map[bool]*instance)}
}

// Search implements websearch.Engine.
func (b *Browser) Search(ctx context.Context, query string) ([]websearch.Result, error) {
	html, err := b.render(ctx, duckduckgo.SearchURL(b.opts.SearchBaseURL, query))
	if err != nil {
		return nil, err
	}
	if websearch.LooksBlocked(html) {
		return nil, serrors.Wrap(serrors.ErrRateLimited, websearch.ErrBlocked, "rendered search")
	}

	return duckduckgo.ParseResults(strings.NewReader(html), b.opts.MaxResults)
}

// Fetch implements websearch.Fetcher.
func (b *Browser) Fetch(ctx context.Context, url string) (websearch.Document, error) {
	html, err := b.render(ctx, url)
	if err != nil {
		return websearch.Document{}, err
	}

	return websearch.DocumentFromHTML(url, strings.NewReader(html))
}

// Close shuts down every started Chromium process.
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var firstErr error
	for headless, inst := range b.instances {
		if err := inst.browser.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrap(err, "close browser")
		}
		inst.launcher.Kill()
		inst.launcher.Cleanup()
		delete(b.instances, headless)
	}

	return firstErr
}

func (b *Browser) headlessFor(ctx context.Context) bool {
	if headless, ok := websearch.HeadlessFromContext(ctx); ok {
		return headless
	}

	return b.opts.Headless
}

func (b *Browser) instance(ctx context.Context, headless bool) (*rod.Browser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if inst, ok := b.instances[headless]; ok {
		return inst.browser, nil
	}

	l := launcher.New().Headless(headless)
	if b.opts.Bin != "" {
		l = l.Bin(b.opts.Bin)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not launch chromium")
	}

	// the browser outlives the request that started it
	br := rod.New().ControlURL(controlURL)
	if err := br.Connect(); err != nil {
		l.Kill()

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not connect to chromium")
	}
	logger.Info(ctx, "chromium started", zap.Bool("headless", headless))

	b.instances[headless] = &instance{launcher: l, browser: br}

	return br, nil
}

func (b *Browser) render(ctx context.Context, url string) (string, error) {
	br, err := b.instance(ctx, b.headlessFor(ctx))
	if err != nil {
		return "", err
	}

	incognito, err := br.Context(ctx).Incognito()
	if err != nil {
		return "", errors.Wrap(err, "create incognito context")
	}
	defer func() {
		_ = incognito.Close()
	}()

	page, err := incognito.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", errors.Wrap(err, "create page")
	}
	defer func() {
		_ = page.Close()
	}()

	if b.opts.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: b.opts.UserAgent}); err != nil {
			return "", errors.Wrap(err, "set user agent")
		}
	}

	loading := page.Timeout(b.opts.NavigationTimeout)
	if err := loading.Navigate(url); err != nil {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, "could not navigate to %s", url)
	}
	if err := loading.WaitLoad(); err != nil {
		return "", serrors.Wrap(serrors.ErrTimeout, err, "page did not load")
	}

	html, err := loading.HTML()
	if err != nil {
		return "", errors.Wrap(err, "read page html")
	}

	return html, nil
}
