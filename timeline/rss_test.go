package timeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Michael Saylor / @saylor</title>
    <link>https://mirror.example.com/saylor</link>
    <description>Twitter feed for @saylor</description>
    <item>
      <title>Bitcoin is hope</title>
      <guid>https://mirror.example.com/saylor/status/1700000000000000001</guid>
      <pubDate>Thu, 27 Aug 2026 11:02:00 GMT</pubDate>
      <description>&lt;p&gt;Bitcoin is &lt;b&gt;hope&lt;/b&gt; · 1,234 views&lt;/p&gt;</description>
    </item>
    <item>
      <title>gm</title>
      <guid>https://mirror.example.com/saylor/status/1700000000000000002</guid>
      <pubDate>Wed, 26 Aug 2026 08:00:00 GMT</pubDate>
      <description>&lt;p&gt;gm&lt;/p&gt;</description>
    </item>
  </channel>
</rss>`

func TestRSSClientFetchTimeline(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, testFeed)
	}))
	defer srv.Close()

	client := NewRSSClient(srv.URL)
	posts, err := client.FetchTimeline(context.Background(), "saylor")

	assert.NoError(t, err)
	assert.Equal(t, "/saylor/rss", gotPath)
	assert.Len(t, posts, 2)

	first := posts[0]
	assert.Equal(t, "https://mirror.example.com/saylor/status/1700000000000000001", first.ID)
	assert.Equal(t, "Bitcoin is hope", first.Text)
	assert.Equal(t, int64(1234), first.Views)
	assert.Equal(t, "saylor", first.Author.Username)
	assert.Equal(t, "Michael Saylor", first.Author.DisplayName)
	assert.Equal(t, 2026, first.CreatedAt.Year())

	second := posts[1]
	assert.Equal(t, "gm", second.Text)
	assert.Equal(t, int64(0), second.Views)
}

func TestRSSClientUnknownHandle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewRSSClient(srv.URL).FetchTimeline(context.Background(), "ghost")
	assert.Error(t, err)
}

func TestFeedDisplayName(t *testing.T) {
	assert.Equal(t, "Michael Saylor", feedDisplayName("Michael Saylor / @saylor", "saylor"))
	assert.Equal(t, "Some Feed", feedDisplayName("Some Feed", "saylor"))
	assert.Equal(t, "saylor", feedDisplayName("", "saylor"))
}

func TestSplitViews(t *testing.T) {
	text, views := splitViews("Bitcoin is hope · 1,234 views")
	assert.Equal(t, "Bitcoin is hope", text)
	assert.Equal(t, int64(1234), views)

	text, views = splitViews("no stats here")
	assert.Equal(t, "no stats here", text)
	assert.Equal(t, int64(0), views)
}

func TestFlattenHTML(t *testing.T) {
	assert.Equal(t, "Bitcoin is hope", flattenHTML("<p>Bitcoin is <b>hope</b></p>"))
	assert.Equal(t, "plain", flattenHTML("plain"))
}
