package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/seo-content-engine/internal/llm"
	"github.com/jonathan/seo-content-engine/internal/types"
)

type failingClient struct{}

func (failingClient) GenerateContent(context.Context, string, llm.ModelTier, *llm.GenerateOptions) (string, error) {
	return "", errors.New("model unavailable")
}

func (failingClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return "", errors.New("model unavailable")
}

func (failingClient) GetModel(llm.ModelTier) string { return "failing" }
func (failingClient) Close() error                  { return nil }

func sampleResults() []types.SERPResult {
	return []types.SERPResult{
		{Rank: 1, URL: "https://example.com/a", Title: "Top Tools", Snippet: "A roundup of tools."},
		{Rank: 2, URL: "https://example.com/b", Title: "Tool Guide", Snippet: "How to choose tools."},
	}
}

func TestAnalyze_FromMockClient(t *testing.T) {
	a := NewAnalyzer(llm.NewMockClient())

	result, outcome, err := a.Analyze(context.Background(), sampleResults(), "best productivity tools for remote work")

	require.NoError(t, err)
	assert.Equal(t, types.OutcomeGenerated, outcome)
	assert.Equal(t, "best productivity tools for remote work", result.PrimaryKeyword)
	assert.NotEmpty(t, result.CommonTopics)
	assert.NotEmpty(t, result.RecommendedH2Headings)
	assert.NotEmpty(t, result.SecondaryKeywords)
}

func TestAnalyze_FallbackOnFailure(t *testing.T) {
	a := NewAnalyzer(failingClient{})

	result, outcome, err := a.Analyze(context.Background(), sampleResults(), "container security")

	require.NoError(t, err)
	assert.Equal(t, types.OutcomeFallback, outcome)
	assert.Equal(t, "container security", result.PrimaryKeyword)
}

func TestFallbackAnalysis(t *testing.T) {
	result := FallbackAnalysis("container security")

	assert.Equal(t, "container security", result.PrimaryKeyword)
	assert.Contains(t, result.CommonTopics, "Introduction to container security")
	assert.Contains(t, result.Subtopics, "container security fundamentals")
	assert.Contains(t, result.ContentGaps, "Future trends in container security")
	assert.Contains(t, result.RecommendedH2Headings, "What is container security?")
	assert.Contains(t, result.RecommendedH2Headings, "Common Mistakes to Avoid")
	assert.Contains(t, result.SecondaryKeywords, "container security guide")
	assert.Contains(t, result.SecondaryKeywords, "best practices")
}

func TestFormatResults(t *testing.T) {
	out := formatResults(sampleResults())

	assert.Contains(t, out, "1. [Top Tools]")
	assert.Contains(t, out, "URL: https://example.com/a")
	assert.Contains(t, out, "Snippet: How to choose tools.")

	assert.Equal(t, "", formatResults(nil))
}
