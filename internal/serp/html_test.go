package serp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResultsPage = `<!DOCTYPE html>
<html><body>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Ffirst&amp;rut=abc">First Result Title</a>
  <a class="result__snippet">Snippet for the first result.</a>
</div>
<div class="result">
  <a class="result__a" href="https://example.org/second">Second Result Title</a>
  <a class="result__snippet">Snippet for the second result.</a>
</div>
<div class="result">
  <a class="result__a" href="">Missing href is skipped</a>
</div>
<div class="result">
  <a class="result__a" href="https://example.net/third">Third Result Title</a>
</div>
</body></html>`

func TestParseResultsHTML(t *testing.T) {
	results, err := parseResultsHTML(sampleResultsPage, 10)

	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, "https://example.com/first", results[0].URL)
	assert.Equal(t, "First Result Title", results[0].Title)
	assert.Equal(t, "Snippet for the first result.", results[0].Snippet)

	assert.Equal(t, 2, results[1].Rank)
	assert.Equal(t, "https://example.org/second", results[1].URL)

	// The entry without an href is skipped; ranks stay contiguous.
	assert.Equal(t, 3, results[2].Rank)
	assert.Equal(t, "Third Result Title", results[2].Title)
	assert.Empty(t, results[2].Snippet)
}

func TestParseResultsHTML_LimitsResults(t *testing.T) {
	results, err := parseResultsHTML(sampleResultsPage, 1)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "First Result Title", results[0].Title)
}

func TestParseResultsHTML_EmptyPage(t *testing.T) {
	results, err := parseResultsHTML("<html><body></body></html>", 10)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestResolveRedirectURL(t *testing.T) {
	tests := []struct {
		name string
		href string
		want string
	}{
		{"redirect wrapper", "//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fpage", "https://example.com/page"},
		{"direct url", "https://example.com/page", "https://example.com/page"},
		{"protocol relative", "//example.com/page", "https://example.com/page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveRedirectURL(tt.href))
		})
	}
}
