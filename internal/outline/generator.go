// Package outline turns competitive analysis into an article blueprint:
// an H1, 5-7 H2 sections with optional H3s, per-section word budgets, and
// key points guiding the content generator.
package outline

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/jonathan/seo-content-engine/internal/llm"
	"github.com/jonathan/seo-content-engine/internal/prompts"
	"github.com/jonathan/seo-content-engine/internal/types"
)

// Generator plans article structure from SERP-derived insights.
type Generator struct {
	client llm.Client
}

// NewGenerator creates an outline generator backed by the given LLM client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate produces an outline targeting the requested word count. On LLM
// failure it returns a generic five-section fallback so the pipeline can
// continue, with the outcome marked accordingly.
func (g *Generator) Generate(ctx context.Context, serpAnalysis types.SERPAnalysis, topic string, targetWordCount int) (types.Outline, types.StepOutcome, error) {
	primaryKeyword := serpAnalysis.PrimaryKeyword
	if primaryKeyword == "" {
		primaryKeyword = topic
	}

	prompt := prompts.MustGet("outline.json", "generate-outline")
	prompt = prompts.Format(prompt, map[string]string{
		"Topic":               topic,
		"TargetWordCount":     strconv.Itoa(targetWordCount),
		"CommonTopics":        strings.Join(serpAnalysis.CommonTopics, ", "),
		"Subtopics":           strings.Join(serpAnalysis.Subtopics, ", "),
		"RecommendedHeadings": strings.Join(serpAnalysis.RecommendedH2Headings, ", "),
		"PrimaryKeyword":      primaryKeyword,
		"SecondaryKeywords":   strings.Join(serpAnalysis.SecondaryKeywords, ", "),
	})

	var out types.Outline
	err := llm.GenerateTypedJSON(ctx, g.client, prompt, llm.TierStandard, "outline", &out, 3)
	if err != nil {
		log.Printf("outline generation failed, using fallback template: %v", err)
		return FallbackOutline(topic), types.OutcomeFallback, nil
	}

	return out, types.OutcomeGenerated, nil
}

// FallbackOutline builds a generic five-section outline from the topic.
// Functional but less optimized than a generated one.
func FallbackOutline(topic string) types.Outline {
	titled := types.TitleCase(topic)
	return types.Outline{
		H1: fmt.Sprintf("The Complete Guide to %s", titled),
		Sections: []types.OutlineSection{
			{
				H2:        "Introduction",
				H3s:       []string{},
				WordCount: 200,
				KeyPoints: []string{fmt.Sprintf("Define %s", topic), "Explain importance", "Overview of article"},
			},
			{
				H2:        fmt.Sprintf("Understanding %s", titled),
				H3s:       []string{"Key Concepts", "Common Terminology"},
				WordCount: 300,
				KeyPoints: []string{"Explain fundamentals", "Provide context", "Share examples"},
			},
			{
				H2:        fmt.Sprintf("Benefits of %s", titled),
				H3s:       []string{},
				WordCount: 250,
				KeyPoints: []string{"List main benefits", "Provide evidence", "Share statistics"},
			},
			{
				H2:        fmt.Sprintf("Best Practices for %s", titled),
				H3s:       []string{"Getting Started", "Advanced Tips"},
				WordCount: 400,
				KeyPoints: []string{"Step-by-step guidance", "Expert recommendations", "Common pitfalls"},
			},
			{
				H2:        "Conclusion",
				H3s:       []string{},
				WordCount: 150,
				KeyPoints: []string{"Summarize key takeaways", "Encourage action", "Future outlook"},
			},
		},
	}
}
