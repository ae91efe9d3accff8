// Package analysis extracts competitive intelligence from search results.
// The top 10 results tell us which topics, structures, and keywords already
// rank for a query; every downstream agent consumes these insights.
package analysis

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/seo-content-engine/internal/llm"
	"github.com/jonathan/seo-content-engine/internal/prompts"
	"github.com/jonathan/seo-content-engine/internal/types"
)

// Analyzer identifies content patterns and keyword opportunities in
// search results.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an analyzer backed by the given LLM client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze extracts themes, heading patterns, and keyword opportunities
// from the ranked results. On LLM failure it returns a templated fallback
// derived from the topic so the pipeline can continue, with the outcome
// marked accordingly.
func (a *Analyzer) Analyze(ctx context.Context, results []types.SERPResult, topic string) (types.SERPAnalysis, types.StepOutcome, error) {
	prompt := prompts.MustGet("analysis.json", "analyze-serp")
	prompt = prompts.Format(prompt, map[string]string{
		"Topic":       topic,
		"SERPSummary": formatResults(results),
	})

	var out types.SERPAnalysis
	err := llm.GenerateTypedJSON(ctx, a.client, prompt, llm.TierStandard, "analysis", &out, 3)
	if err != nil {
		log.Printf("serp analysis failed, using fallback derived from topic: %v", err)
		return FallbackAnalysis(topic), types.OutcomeFallback, nil
	}

	if out.PrimaryKeyword == "" {
		out.PrimaryKeyword = topic
	}

	return out, types.OutcomeGenerated, nil
}

// formatResults renders results as readable text for the prompt: rank,
// title, URL, and snippet per entry.
func formatResults(results []types.SERPResult) string {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "%d. [%s]\n   URL: %s\n   Snippet: %s\n\n", r.Rank, r.Title, r.URL, r.Snippet)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FallbackAnalysis builds generic but structurally valid insights from
// the topic alone. Used when the LLM is unavailable.
func FallbackAnalysis(topic string) types.SERPAnalysis {
	return types.SERPAnalysis{
		CommonTopics: []string{
			fmt.Sprintf("Introduction to %s", topic),
			fmt.Sprintf("Benefits of %s", topic),
			fmt.Sprintf("Best practices for %s", topic),
		},
		Subtopics: []string{
			fmt.Sprintf("%s fundamentals", topic),
			"Common challenges",
			"Expert tips",
		},
		ContentGaps: []string{
			fmt.Sprintf("Future trends in %s", topic),
		},
		RecommendedH2Headings: []string{
			fmt.Sprintf("What is %s?", topic),
			fmt.Sprintf("Why %s Matters", topic),
			fmt.Sprintf("How to Get Started with %s", topic),
			fmt.Sprintf("Best %s Tools and Resources", topic),
			"Common Mistakes to Avoid",
		},
		PrimaryKeyword: topic,
		SecondaryKeywords: []string{
			fmt.Sprintf("%s guide", topic),
			fmt.Sprintf("%s tips", topic),
			"best practices",
		},
	}
}
