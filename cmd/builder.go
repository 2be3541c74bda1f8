package main

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"emailfinder/internal/config"
	"emailfinder/internal/finder"
	"emailfinder/internal/format"
	"emailfinder/internal/prober"
	"emailfinder/internal/resolver"
	"emailfinder/pkg/dnsresolve"
	"emailfinder/pkg/logger"
	"emailfinder/pkg/storage"
	"emailfinder/pkg/websearch"
	"emailfinder/pkg/websearch/browser"
	"emailfinder/pkg/websearch/duckduckgo"

	"go.uber.org/zap"
)

const (
	engineDuckDuckGo = "duckduckgo"
	engineBrowser    = "browser"

	dnsProviderSystem = "system"
	dnsProviderDoH    = "doh"
)

// newDNSResolver builds the configured resolver. MX answers are cached when
// a TTL is set since every candidate of a domain asks for them.
func newDNSResolver(cfg *config.Config) (dnsresolve.Resolver, error) {
	var r dnsresolve.Resolver
	switch cfg.DNS.Provider {
	case dnsProviderSystem, "":
		r = dnsresolve.NewSystem(net.DefaultResolver)
	case dnsProviderDoH:
		r = dnsresolve.NewDoH(&http.Client{Timeout: cfg.DNS.Timeout}, cfg.DNS.DoHEndpoint)
	default:
		return nil, fmt.Errorf("unknown dns provider %q", cfg.DNS.Provider)
	}

	if cfg.DNS.MXCacheTTL > 0 {
		r = dnsresolve.NewCached(r, cfg.DNS.MXCacheTTL)
	}

	return r, nil
}

// newSearchProvider builds the configured search transport wrapped in the
// process wide rate limit. The returned func releases browser processes.
func newSearchProvider(cfg *config.Config) (websearch.Provider, func(), error) {
	var (
		p       websearch.Provider
		release = func() {}
	)
	switch cfg.Search.Engine {
	case engineDuckDuckGo, "":
		p = duckduckgo.New(&http.Client{Timeout: cfg.Search.Timeout}, duckduckgo.Options{
			BaseURL:    cfg.Search.BaseURL,
			UserAgent:  cfg.Search.UserAgent,
			MaxResults: cfg.Search.MaxResults,
		})
	case engineBrowser:
		b := browser.New(browser.Options{
			Bin:               cfg.Browser.Bin,
			Headless:          cfg.Browser.Headless,
			NavigationTimeout: cfg.Browser.NavigationTimeout,
			SearchBaseURL:     cfg.Search.BaseURL,
			MaxResults:        cfg.Search.MaxResults,
			UserAgent:         cfg.Search.UserAgent,
		})
		p = b
		release = func() {
			if err := b.Close(); err != nil {
				logger.Warn(context.Background(), "could not close browser", zap.Error(err))
			}
		}
	default:
		return nil, nil, fmt.Errorf("unknown search engine %q", cfg.Search.Engine)
	}

	throttled, err := websearch.NewThrottled(p, cfg.Search.Engine, cfg.Search.RateLimit, cfg.Search.Burst)
	if err != nil {
		release()

		return nil, nil, fmt.Errorf("could not create search throttle: %w", err)
	}

	return throttled, release, nil
}

// newMemo returns the format memo, nil when disabled. The database backed
// memo is used when formats is set and persistence is enabled.
func newMemo(cfg *config.Config, formats storage.FormatStorage) format.Memo {
	if !cfg.Format.Memo {
		return nil
	}
	if cfg.Format.PersistMemo && formats != nil {
		return format.NewStoreMemo(formats)
	}

	return format.NewMemoryMemo()
}

// buildFinder wires the lookup pipeline from configuration. formats may be
// nil when no database is available. The returned func releases resources
// held by the search transport.
func buildFinder(cfg *config.Config, formats storage.FormatStorage) (finder.Finder, func(), error) {
	dns, err := newDNSResolver(cfg)
	if err != nil {
		return nil, nil, err
	}

	search, release, err := newSearchProvider(cfg)
	if err != nil {
		return nil, nil, err
	}

	mailboxProber, err := prober.New(dns, &net.Dialer{Timeout: cfg.Prober.Timeout}, prober.NewOptions(cfg))
	if err != nil {
		release()

		return nil, nil, fmt.Errorf("could not create prober: %w", err)
	}

	f := finder.New(
		resolver.New(dns, search, &http.Client{Timeout: cfg.DNS.Timeout}, resolver.NewOptions(cfg)),
		format.New(search, search, newMemo(cfg, formats), format.NewOptions(cfg)),
		mailboxProber,
		finder.NewOptions(cfg),
	)

	return f, release, nil
}
