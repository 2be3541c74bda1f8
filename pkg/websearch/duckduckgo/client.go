// Package duckduckgo implements websearch.Provider on top of the DuckDuckGo
// HTML endpoint, which needs no API key.
package duckduckgo

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"emailfinder/pkg/serrors"
	"emailfinder/pkg/websearch"

	"github.com/go-faster/errors"
	"golang.org/x/net/html"
)

const (
	// DefaultBaseURL is the DuckDuckGo HTML search endpoint.
	DefaultBaseURL = "https://html.duckduckgo.com/html/"
	// DefaultUserAgent mimics a desktop browser; the HTML endpoint rejects
	// obvious bots.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	maxBodyBytes = 2 << 20
)

// Options configure the client.
type Options struct {
	// BaseURL overrides DefaultBaseURL.
	BaseURL string
	// UserAgent overrides DefaultUserAgent.
	UserAgent string
	// MaxResults caps the number of results returned by Search. Zero means 10.
	MaxResults int
}

// Client talks to DuckDuckGo over plain HTTP. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options
}

var _ websearch.Provider = (*Client)(nil)

// New creates a Client.
func New(httpClient *http.Client, opts Options) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = 10
	}

	return &Client{httpClient: httpClient, opts: opts}
}

// SearchURL returns the HTML endpoint URL for query.
func SearchURL(baseURL, query string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return baseURL + "?" + url.Values{"q": []string{query}}.Encode()
}

// Search implements websearch.Engine.
func (c *Client) Search(ctx context.Context, query string) ([]websearch.Result, error) {
	body, err := c.get(ctx, SearchURL(c.opts.BaseURL, query))
	if err != nil {
		return nil, err
	}
	if websearch.LooksBlocked(string(body)) {
		return nil, serrors.Wrap(serrors.ErrRateLimited, websearch.ErrBlocked, "duckduckgo")
	}

	return ParseResults(bytes.NewReader(body), c.opts.MaxResults)
}

// Fetch implements websearch.Fetcher.
func (c *Client) Fetch(ctx context.Context, pageURL string) (websearch.Document, error) {
	body, err := c.get(ctx, pageURL)
	if err != nil {
		return websearch.Document{}, err
	}

	return websearch.DocumentFromHTML(pageURL, bytes.NewReader(body))
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden:
		return nil, serrors.Wrap(serrors.ErrRateLimited, websearch.ErrBlocked, "status %d", resp.StatusCode)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, serrors.With(serrors.ErrUnavailable, "upstream status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, serrors.With(serrors.ErrInternal, "unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	return body, nil
}

// ParseResults extracts organic results from a DuckDuckGo HTML result page.
// Ads are skipped and redirect links are unwrapped to their target.
func ParseResults(r io.Reader, maxResults int) ([]websearch.Result, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse html")
	}

	var results []websearch.Result
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if maxResults > 0 && len(results) >= maxResults {
			return
		}
		if n.Type == html.ElementNode && n.Data == "div" && websearch.HasClass(n, "result") {
			if !websearch.HasClass(n, "result--ad") {
				if res := extractResult(n); res.URL != "" && res.Title != "" {
					results = append(results, res)
				}
			}

			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return results, nil
}

func extractResult(n *html.Node) websearch.Result {
	var res websearch.Result
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case websearch.HasClass(n, "result__a"):
				res.URL = unwrapRedirect(websearch.Attr(n, "href"))
				res.Title = websearch.TextContent(n)

				return
			case websearch.HasClass(n, "result__snippet"):
				res.Snippet = websearch.TextContent(n)

				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return res
}

// unwrapRedirect turns "//duckduckgo.com/l/?uddg=<target>&rut=..." into target.
func unwrapRedirect(href string) string {
	if !strings.Contains(href, "duckduckgo.com/l/") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}

	return href
}
