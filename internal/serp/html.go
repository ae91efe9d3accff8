package serp

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/seo-content-engine/internal/types"
)

// htmlSearchBaseURL is the HTML-only DuckDuckGo endpoint, which serves
// plain markup without requiring JavaScript.
const htmlSearchBaseURL = "https://html.duckduckgo.com/html/"

// htmlSearchUserAgent identifies the scraper to the search engine.
const htmlSearchUserAgent = "Mozilla/5.0 (compatible; SEOContentEngine/1.0)"

// HTMLSource scrapes search results directly from an HTML results page.
// It needs no API key, which makes it a useful alternative when SerpAPI
// is not configured, at the cost of less stable markup.
type HTMLSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTMLSource creates a scraping source against the default endpoint.
func NewHTMLSource() *HTMLSource {
	return &HTMLSource{
		baseURL: htmlSearchBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Search fetches the results page for query and extracts organic results.
func (s *HTMLSource) Search(ctx context.Context, query string, numResults int) ([]types.SERPResult, error) {
	if numResults <= 0 {
		numResults = DefaultResultCount
	}

	params := url.Values{}
	params.Set("q", query)
	reqURL := s.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &Error{Query: query, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", htmlSearchUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Query: query, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Query: query, Message: "HTTP status " + resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Query: query, Message: "failed to read response body", Cause: err}
	}

	results, err := parseResultsHTML(string(body), numResults)
	if err != nil {
		return nil, &Error{Query: query, Message: "failed to parse results page", Cause: err}
	}
	if len(results) == 0 {
		return nil, &Error{Query: query, Message: "no organic results found"}
	}

	return results, nil
}

// parseResultsHTML extracts ranked results from a DuckDuckGo HTML page.
func parseResultsHTML(html string, numResults int) ([]types.SERPResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var results []types.SERPResult
	doc.Find(".result").Each(func(_ int, sel *goquery.Selection) {
		if len(results) >= numResults {
			return
		}

		titleLink := sel.Find(".result__a").First()
		href, ok := titleLink.Attr("href")
		if !ok || href == "" {
			return
		}

		title := strings.TrimSpace(titleLink.Text())
		snippet := strings.TrimSpace(sel.Find(".result__snippet").First().Text())
		if title == "" {
			return
		}

		results = append(results, types.SERPResult{
			Rank:    len(results) + 1,
			URL:     resolveRedirectURL(href),
			Title:   title,
			Snippet: snippet,
		})
	})

	return results, nil
}

// resolveRedirectURL unwraps the engine's redirect links, which carry
// the destination in a "uddg" query parameter.
func resolveRedirectURL(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		if decoded, err := url.QueryUnescape(target); err == nil {
			return decoded
		}
	}
	if parsed.Scheme == "" {
		return "https:" + href
	}
	return href
}
