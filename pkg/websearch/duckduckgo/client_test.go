package duckduckgo_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"emailfinder/pkg/serrors"
	"emailfinder/pkg/websearch"
	"emailfinder/pkg/websearch/duckduckgo"

	"github.com/stretchr/testify/require"
)

const resultsPage = `<!DOCTYPE html>
<html><head><title>acme at DuckDuckGo</title></head>
<body>
<div class="results">
  <div class="result results_links results_links_deep result--ad">
    <h2 class="result__title"><a class="result__a" href="https://ads.example/click">Buy Acme</a></h2>
    <a class="result__snippet" href="https://ads.example/click">Sponsored</a>
  </div>
  <div class="result results_links results_links_deep web-result">
    <h2 class="result__title">
      <a rel="nofollow" class="result__a"
         href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fwww.linkedin.com%2Fcompany%2Facme&amp;rut=abc">Acme | LinkedIn</a>
    </h2>
    <a class="result__snippet" href="#">Acme Corp. <b>Acme</b> makes everything.</a>
  </div>
  <div class="result results_links results_links_deep web-result">
    <h2 class="result__title"><a class="result__a" href="https://www.acme.com/">Acme Corporation - Official Site</a></h2>
    <a class="result__snippet" href="https://www.acme.com/">Welcome to Acme.</a>
  </div>
  <div class="result results_links results_links_deep web-result">
    <h2 class="result__title"><a class="result__a" href="https://acme.example.org/">Third</a></h2>
  </div>
</div>
</body></html>`

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func htmlResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"text/html"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestClient(fn rtFunc, maxResults int) *duckduckgo.Client {
	return duckduckgo.New(&http.Client{Transport: fn}, duckduckgo.Options{
		BaseURL:    "https://ddg.test/html/",
		MaxResults: maxResults,
	})
}

func TestClient_Search_ParsesOrganicResults(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "ddg.test", r.URL.Host)
		require.Equal(t, "acme official website", r.URL.Query().Get("q"))
		require.NotEmpty(t, r.Header.Get("User-Agent"))

		return htmlResponse(200, resultsPage), nil
	}, 10)

	results, err := c.Search(context.Background(), "acme official website")
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, "https://www.linkedin.com/company/acme", results[0].URL)
	require.Equal(t, "Acme | LinkedIn", results[0].Title)
	require.Equal(t, "Acme Corp. Acme makes everything.", results[0].Snippet)

	require.Equal(t, "https://www.acme.com/", results[1].URL)
	require.Equal(t, "Welcome to Acme.", results[1].Snippet)

	require.Empty(t, results[2].Snippet)
}

func TestClient_Search_MaxResults(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return htmlResponse(200, resultsPage), nil
	}, 1)

	results, err := c.Search(context.Background(), "acme")
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestClient_Search_Blocked(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return htmlResponse(200, `<html><body><div class="anomaly-modal__title">
			Unfortunately, bots use DuckDuckGo too.</div></body></html>`), nil
	}, 10)

	_, err := c.Search(context.Background(), "acme")
	require.ErrorIs(t, err, websearch.ErrBlocked)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_Search_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   serrors.Kind
	}{
		{"too many requests", http.StatusTooManyRequests, serrors.ErrRateLimited},
		{"server error", http.StatusBadGateway, serrors.ErrUnavailable},
		{"unexpected", http.StatusNotFound, serrors.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(func(*http.Request) (*http.Response, error) {
				return htmlResponse(tt.status, ""), nil
			}, 10)

			_, err := c.Search(context.Background(), "acme")
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestClient_Search_TransportError(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection reset")
	}, 10)

	_, err := c.Search(context.Background(), "acme")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestClient_Fetch_ExtractsVisibleText(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "https://www.leadiq.com/c/acme/email-format", r.URL.String())

		return htmlResponse(200, `<html><head><title>Acme Email Format</title>
			<script>var x = "first.last@";</script><style>p{}</style></head>
			<body><h1>Acme email format</h1><p>Acme uses <b>jdoe@acme.com</b> (82%)</p></body></html>`), nil
	}, 10)

	doc, err := c.Fetch(context.Background(), "https://www.leadiq.com/c/acme/email-format")
	require.NoError(t, err)
	require.Equal(t, "Acme Email Format", doc.Title)
	require.Contains(t, doc.Text, "jdoe@acme.com")
	require.NotContains(t, doc.Text, "first.last@")
}

func TestSearchURL(t *testing.T) {
	require.Equal(t, duckduckgo.DefaultBaseURL+"?q=acme+email+format", duckduckgo.SearchURL("", "acme email format"))
}
