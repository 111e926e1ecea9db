package timeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"crypto-pulse/metrics"
	"crypto-pulse/models"
)

// APIClient talks to a JSON timeline endpoint:
// GET {base}/timeline?handle=X&apiKey=Y returning an array of posts.
type APIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *APIClient) Name() string {
	return "api"
}

func (c *APIClient) FetchTimeline(ctx context.Context, handle string) ([]models.Post, error) {
	reqURL := fmt.Sprintf(
		"%s/timeline?handle=%s&apiKey=%s",
		c.baseURL, url.QueryEscape(handle), url.QueryEscape(c.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.TimelineFetchesTotal.WithLabelValues(c.Name(), "error").Inc()
		return nil, fmt.Errorf("timeline fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.TimelineFetchesTotal.WithLabelValues(c.Name(), "error").Inc()
		return nil, fmt.Errorf("timeline fetch: unexpected status %d", resp.StatusCode)
	}

	var raw []apiPost
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		metrics.TimelineFetchesTotal.WithLabelValues(c.Name(), "error").Inc()
		return nil, fmt.Errorf("timeline decode: %w", err)
	}

	posts := make([]models.Post, 0, len(raw))
	for _, item := range raw {
		createdAt, err := time.Parse(time.RFC3339, item.CreatedAt)
		if err != nil {
			createdAt = time.Time{}
		}
		posts = append(posts, models.Post{
			ID:   item.ID,
			Text: item.Text,
			Author: models.Author{
				Username:    item.Author.Username,
				DisplayName: item.Author.DisplayName,
			},
			CreatedAt: createdAt,
			Views:     item.Views,
		})
	}

	metrics.TimelineFetchesTotal.WithLabelValues(c.Name(), "ok").Inc()
	return posts, nil
}

type apiPost struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    apiAuthor `json:"author"`
	CreatedAt string    `json:"created_at"`
	Views     int64     `json:"views"`
}

type apiAuthor struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}
