package seo

import (
	"context"
	"errors"
	"strings"
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

const sampleArticle = "# Best Productivity Tools\n\nRemote teams rely on productivity tools to plan and ship their work on time."

func TestGenerateMetadata_FromMockClient(t *testing.T) {
	g := NewGenerator(llm.NewMockClient())

	metadata, outcome, err := g.GenerateMetadata(context.Background(), sampleArticle,
		"Best Productivity Tools", "best productivity tools for remote work")

	require.NoError(t, err)
	assert.Equal(t, types.OutcomeGenerated, outcome)
	assert.NotEmpty(t, metadata.TitleTag)
	assert.NotEmpty(t, metadata.MetaDescription)
	assert.Equal(t, "best productivity tools for remote work", metadata.FocusKeyword)
}

func TestGenerateMetadata_FallbackOnFailure(t *testing.T) {
	g := NewGenerator(failingClient{})

	metadata, outcome, err := g.GenerateMetadata(context.Background(), sampleArticle,
		"Best Productivity Tools", "productivity tools")

	require.NoError(t, err)
	assert.Equal(t, types.OutcomeFallback, outcome)
	assert.Equal(t, "Best Productivity Tools", metadata.TitleTag)
	assert.Equal(t, "Learn everything about productivity tools. Complete guide with tips, strategies, and best practices.", metadata.MetaDescription)
	assert.Equal(t, "productivity tools", metadata.FocusKeyword)
}

func TestFallbackMetadata_TruncatesLongH1(t *testing.T) {
	h1 := strings.Repeat("a", 80)

	metadata := FallbackMetadata(h1, "topic")

	assert.Len(t, metadata.TitleTag, 60)
	assert.True(t, strings.HasSuffix(metadata.TitleTag, "..."))
	assert.Equal(t, h1[:57], metadata.TitleTag[:57])
}

func TestGenerateInternalLinks_FromMockClient(t *testing.T) {
	g := NewGenerator(llm.NewMockClient())

	links, outcome, err := g.GenerateInternalLinks(context.Background(), sampleArticle, "productivity tools")

	require.NoError(t, err)
	assert.Equal(t, types.OutcomeGenerated, outcome)
	require.NotEmpty(t, links)
	assert.LessOrEqual(t, len(links), maxInternalLinks)
	for _, link := range links {
		assert.NotEmpty(t, link.AnchorText)
		assert.True(t, strings.HasPrefix(link.SuggestedTarget, "/"))
	}
}

func TestGenerateInternalLinks_FallbackOnFailure(t *testing.T) {
	g := NewGenerator(failingClient{})

	links, outcome, err := g.GenerateInternalLinks(context.Background(), sampleArticle, "container security")

	require.NoError(t, err)
	assert.Equal(t, types.OutcomeFallback, outcome)
	require.Len(t, links, 1)
	assert.Equal(t, "container security best practices", links[0].AnchorText)
	assert.Equal(t, "/blog/container-security-best-practices", links[0].SuggestedTarget)
	assert.Equal(t, "Link when discussing implementation strategies", links[0].Context)
}

func TestGenerateExternalReferences_FromMockClient(t *testing.T) {
	g := NewGenerator(llm.NewMockClient())

	refs, outcome, err := g.GenerateExternalReferences(context.Background(), sampleArticle, "productivity tools")

	require.NoError(t, err)
	assert.Equal(t, types.OutcomeGenerated, outcome)
	require.NotEmpty(t, refs)
	assert.LessOrEqual(t, len(refs), maxExternalReferences)
	for _, ref := range refs {
		assert.NotEmpty(t, ref.SourceName)
		assert.True(t, strings.HasPrefix(ref.URL, "https://"))
	}
}

func TestGenerateExternalReferences_FallbackOnFailure(t *testing.T) {
	g := NewGenerator(failingClient{})

	refs, outcome, err := g.GenerateExternalReferences(context.Background(), sampleArticle, "container security")

	require.NoError(t, err)
	assert.Equal(t, types.OutcomeFallback, outcome)
	require.Len(t, refs, 1)
	assert.Equal(t, "Industry Research Report", refs[0].SourceName)
	assert.Equal(t, "https://research.example.com/container-security-report", refs[0].URL)
	assert.Equal(t, "Statistics and trends in container security", refs[0].Context)
	assert.Equal(t, "Cite in introduction to establish credibility", refs[0].PlacementSuggestion)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "", truncate("", 5))
}
