package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jonathan/seo-content-engine/internal/types"
)

// serpAPIBaseURL is the SerpAPI search endpoint.
const serpAPIBaseURL = "https://serpapi.com/search"

// serpAPITimeout bounds a single API call. SERP APIs can be slow for
// competitive keywords.
const serpAPITimeout = 30 * time.Second

// serpAPIMaxRetries is how many times a rate-limited request is retried.
const serpAPIMaxRetries = 3

// retryBaseDelay is doubled on each retry attempt (1s, 2s, 4s).
var retryBaseDelay = time.Second

// SerpAPIClient fetches Google organic results through serpapi.com.
type SerpAPIClient struct {
	apiKey     string
	httpClient *http.Client
}

// NewSerpAPIClient creates a client authenticated with the given API key.
func NewSerpAPIClient(apiKey string) *SerpAPIClient {
	return &SerpAPIClient{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: serpAPITimeout,
		},
	}
}

// serpAPIResponse mirrors the subset of the SerpAPI payload we consume.
type serpAPIResponse struct {
	OrganicResults []struct {
		Link    string `json:"link"`
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
	} `json:"organic_results"`
}

// Search fetches the top organic results for a query. Rate-limited
// requests (HTTP 429) are retried with exponential backoff.
func (c *SerpAPIClient) Search(ctx context.Context, query string, numResults int) ([]types.SERPResult, error) {
	if c.apiKey == "" {
		return nil, &Error{Query: query, Message: "no API key configured"}
	}
	if numResults <= 0 {
		numResults = DefaultResultCount
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("num", fmt.Sprintf("%d", numResults))
	params.Set("engine", "google")
	params.Set("google_domain", "google.com")
	params.Set("gl", "us")
	params.Set("hl", "en")

	reqURL := serpAPIBaseURL + "?" + params.Encode()

	var lastErr error
	for attempt := 0; attempt < serpAPIMaxRetries; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, &Error{Query: query, Message: "request cancelled", Cause: ctx.Err()}
			}
		}

		results, retryable, err := c.doSearch(ctx, reqURL, query, numResults)
		if err == nil {
			return results, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, &Error{Query: query, Message: "rate limited after retries", Cause: lastErr}
}

func (c *SerpAPIClient) doSearch(ctx context.Context, reqURL, query string, numResults int) ([]types.SERPResult, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, &Error{Query: query, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, &Error{Query: query, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, true, &Error{Query: query, Message: "HTTP status 429"}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, &Error{Query: query, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, &Error{Query: query, Message: "failed to read response body", Cause: err}
	}

	var payload serpAPIResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, false, &Error{Query: query, Message: "failed to parse response", Cause: err}
	}

	results := make([]types.SERPResult, 0, numResults)
	for i, item := range payload.OrganicResults {
		if i >= numResults {
			break
		}
		results = append(results, types.SERPResult{
			Rank:    i + 1,
			URL:     item.Link,
			Title:   item.Title,
			Snippet: item.Snippet,
		})
	}

	return results, false, nil
}
