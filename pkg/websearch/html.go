package websearch

import (
	"io"
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/net/html"
)

// pages served instead of results when a provider suspects automation
var captchaMarkers = []string{ //nolint: gochecknoglobals
	"please click here if you are not redirected",
	"if you're having trouble accessing google search",
	"unfortunately, bots use duckduckgo too",
	"anomaly-modal",
	"our systems have detected unusual traffic",
}

// LooksBlocked reports whether a page body is a CAPTCHA or bot wall.
func LooksBlocked(body string) bool {
	lower := strings.ToLower(body)
	for _, marker := range captchaMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}

// DocumentFromHTML parses an HTML page and returns its title and visible text.
// Script, style and template contents are skipped.
func DocumentFromHTML(url string, r io.Reader) (Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return Document{}, errors.Wrap(err, "parse html")
	}

	doc := Document{URL: url}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "template", "svg":
				return
			case "title":
				if doc.Title == "" {
					doc.Title = TextContent(n)
				}

				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				sb.WriteString(text)
				sb.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	doc.Text = sb.String()

	return doc, nil
}

// TextContent returns the whitespace-joined text below n.
func TextContent(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(parts, " ")
}

// Attr returns the value of the named attribute of n.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}

// HasClass reports whether n has class among its space separated classes.
func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}

	return false
}
