package timeline

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"

	"crypto-pulse/metrics"
	"crypto-pulse/models"
)

// RSSClient reads an account timeline from an RSS mirror exposing
// {base}/{handle}/rss, the feed layout used by Nitter-style frontends.
// Item descriptions arrive as HTML and are flattened to plain text.
type RSSClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRSSClient(baseURL string) *RSSClient {
	return &RSSClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // some mirrors run with self-signed certs
			},
		},
	}
}

func (c *RSSClient) Name() string {
	return "rss"
}

// viewsSuffixRe matches a trailing view-count marker some mirrors append
// to item descriptions, e.g. "... · 1,234 views".
var viewsSuffixRe = regexp.MustCompile(`·?\s*([\d,]+)\s+views?\s*$`)

func (c *RSSClient) FetchTimeline(ctx context.Context, handle string) ([]models.Post, error) {
	fp := gofeed.NewParser()
	fp.Client = c.httpClient

	feed, err := fp.ParseURLWithContext(fmt.Sprintf("%s/%s/rss", c.baseURL, handle), ctx)
	if err != nil {
		metrics.TimelineFetchesTotal.WithLabelValues(c.Name(), "error").Inc()
		return nil, err
	}

	displayName := feedDisplayName(feed.Title, handle)

	posts := make([]models.Post, 0, len(feed.Items))
	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		text, views := splitViews(flattenHTML(item.Description))

		posts = append(posts, models.Post{
			ID:   item.GUID,
			Text: text,
			Author: models.Author{
				Username:    handle,
				DisplayName: displayName,
			},
			CreatedAt: published,
			Views:     views,
		})
	}

	metrics.TimelineFetchesTotal.WithLabelValues(c.Name(), "ok").Inc()
	return posts, nil
}

// feedDisplayName extracts the author name from a feed title of the form
// "Display Name / @handle", falling back to the handle.
func feedDisplayName(title, handle string) string {
	if idx := strings.Index(title, " / @"); idx > 0 {
		return strings.TrimSpace(title[:idx])
	}
	if title != "" {
		return title
	}
	return handle
}

// splitViews strips a trailing view-count marker from text, returning the
// remaining text and the parsed count (0 when absent).
func splitViews(text string) (string, int64) {
	m := viewsSuffixRe.FindStringSubmatch(text)
	if m == nil {
		return text, 0
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64)
	if err != nil {
		return text, 0
	}
	return strings.TrimSpace(strings.TrimSuffix(text, m[0])), n
}

// flattenHTML extracts the text content of an HTML fragment.
func flattenHTML(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(strings.Join(strings.Fields(sb.String()), " "))
}
