// Package seo produces the search-facing metadata for a generated
// article: title tag and meta description, internal link suggestions,
// authoritative external references, and keyword density analysis.
package seo

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/seo-content-engine/internal/llm"
	"github.com/jonathan/seo-content-engine/internal/prompts"
	"github.com/jonathan/seo-content-engine/internal/types"
)

// maxInternalLinks caps how many link suggestions we keep.
const maxInternalLinks = 5

// maxExternalReferences caps how many reference suggestions we keep.
const maxExternalReferences = 4

// Generator creates SEO metadata and link strategies for an article.
type Generator struct {
	client llm.Client
}

// NewGenerator creates an SEO generator backed by the given LLM client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// GenerateMetadata produces the title tag (50-60 chars), meta description
// (~155 chars), and focus keyword. On LLM failure a deterministic fallback
// derived from the H1 and keyword is returned.
func (g *Generator) GenerateMetadata(ctx context.Context, articleText, h1, primaryKeyword string) (types.SEOMetadata, types.StepOutcome, error) {
	prompt := prompts.MustGet("seo.json", "seo-metadata")
	prompt = prompts.Format(prompt, map[string]string{
		"H1":             h1,
		"PrimaryKeyword": primaryKeyword,
		"Preview":        truncate(articleText, 250),
	})

	var out types.SEOMetadata
	err := llm.GenerateTypedJSON(ctx, g.client, prompt, llm.TierLite, "seo_metadata", &out, 3)
	if err != nil {
		log.Printf("seo metadata generation failed, using fallback: %v", err)
		return FallbackMetadata(h1, primaryKeyword), types.OutcomeFallback, nil
	}

	if out.TitleTag == "" {
		out.TitleTag = truncate(h1, 60)
	}
	if out.FocusKeyword == "" {
		out.FocusKeyword = primaryKeyword
	}

	return out, types.OutcomeGenerated, nil
}

// FallbackMetadata builds deterministic metadata from the H1 and keyword.
func FallbackMetadata(h1, primaryKeyword string) types.SEOMetadata {
	titleTag := h1
	if len(h1) > 60 {
		titleTag = h1[:57] + "..."
	}
	return types.SEOMetadata{
		TitleTag:        titleTag,
		MetaDescription: fmt.Sprintf("Learn everything about %s. Complete guide with tips, strategies, and best practices.", primaryKeyword),
		FocusKeyword:    primaryKeyword,
	}
}

// internalLinksPayload is the JSON envelope the links prompt returns.
type internalLinksPayload struct {
	Links []types.InternalLink `json:"links"`
}

// GenerateInternalLinks suggests 3-5 internal links with anchor text and
// placement context. On LLM failure a single canned suggestion is returned.
func (g *Generator) GenerateInternalLinks(ctx context.Context, articleText, topic string) ([]types.InternalLink, types.StepOutcome, error) {
	prompt := prompts.MustGet("seo.json", "internal-links")
	prompt = prompts.Format(prompt, map[string]string{
		"Topic":   topic,
		"Excerpt": truncate(articleText, 500),
	})

	var out internalLinksPayload
	err := llm.GenerateTypedJSON(ctx, g.client, prompt, llm.TierLite, "internal_links", &out, 3)
	if err != nil {
		log.Printf("internal link generation failed, using fallback: %v", err)
		return FallbackInternalLinks(topic), types.OutcomeFallback, nil
	}

	links := out.Links
	if len(links) > maxInternalLinks {
		links = links[:maxInternalLinks]
	}

	return links, types.OutcomeGenerated, nil
}

// FallbackInternalLinks returns a single canned link suggestion for topic.
func FallbackInternalLinks(topic string) []types.InternalLink {
	return []types.InternalLink{
		{
			AnchorText:      fmt.Sprintf("%s best practices", topic),
			SuggestedTarget: fmt.Sprintf("/blog/%s-best-practices", strings.ReplaceAll(topic, " ", "-")),
			Context:         "Link when discussing implementation strategies",
		},
	}
}

// externalReferencesPayload is the JSON envelope the references prompt returns.
type externalReferencesPayload struct {
	References []types.ExternalReference `json:"references"`
}

// GenerateExternalReferences suggests 2-4 authoritative sources to cite.
// On LLM failure a single canned suggestion is returned.
func (g *Generator) GenerateExternalReferences(ctx context.Context, articleText, topic string) ([]types.ExternalReference, types.StepOutcome, error) {
	prompt := prompts.MustGet("seo.json", "external-references")
	prompt = prompts.Format(prompt, map[string]string{
		"Topic": topic,
	})
	_ = articleText

	var out externalReferencesPayload
	err := llm.GenerateTypedJSON(ctx, g.client, prompt, llm.TierLite, "external_references", &out, 3)
	if err != nil {
		log.Printf("external reference generation failed, using fallback: %v", err)
		return FallbackExternalReferences(topic), types.OutcomeFallback, nil
	}

	refs := out.References
	if len(refs) > maxExternalReferences {
		refs = refs[:maxExternalReferences]
	}

	return refs, types.OutcomeGenerated, nil
}

// FallbackExternalReferences returns a single canned source for topic.
func FallbackExternalReferences(topic string) []types.ExternalReference {
	return []types.ExternalReference{
		{
			SourceName:          "Industry Research Report",
			URL:                 fmt.Sprintf("https://research.example.com/%s-report", strings.ReplaceAll(topic, " ", "-")),
			Context:             fmt.Sprintf("Statistics and trends in %s", topic),
			PlacementSuggestion: "Cite in introduction to establish credibility",
		},
	}
}

// truncate returns at most n bytes of s.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
