// Package content is the writing engine: it turns an outline into the
// complete article.
//
// The primary strategy is one-shot generation: the entire article is
// produced in a single LLM call, which keeps narrative flow and tone
// consistent and distributes keywords across the whole text. If the
// one-shot call fails, the generator degrades to section-by-section
// generation, and a section that still fails gets placeholder content, so
// the pipeline always produces an article.
package content

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/seo-content-engine/internal/llm"
	"github.com/jonathan/seo-content-engine/internal/prompts"
	"github.com/jonathan/seo-content-engine/internal/types"
)

// minArticleChars is the minimum length for a one-shot article to be
// considered a successful generation.
const minArticleChars = 500

// minSectionChars is the minimum length for a generated section before
// placeholder content is substituted.
const minSectionChars = 50

// writerSystemPrompt frames every content generation call.
const writerSystemPrompt = "You are an expert content writer who creates engaging, SEO-optimized articles that read naturally and provide real value to readers."

// h2Pattern matches markdown H2 heading lines.
var h2Pattern = regexp.MustCompile(`(?m)^## (.+)$`)

// Generator writes complete articles from outlines.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a content generator backed by the given LLM client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate writes the article for the outline. It attempts one-shot
// generation first and falls back to section-by-section on failure. The
// returned outcome reports which path produced the article.
func (g *Generator) Generate(ctx context.Context, outline types.Outline, serpAnalysis types.SERPAnalysis) (types.ArticleContent, types.StepOutcome, error) {
	fullText, err := g.generateOneShot(ctx, outline, serpAnalysis)
	if err != nil {
		log.Printf("one-shot generation failed, falling back to section-by-section: %v", err)
		article, fallbackErr := g.generateSectionBySection(ctx, outline, serpAnalysis)
		if fallbackErr != nil {
			return types.ArticleContent{}, types.OutcomeFallback, fallbackErr
		}
		return article, types.OutcomeFallback, nil
	}

	sections := ParseSections(fullText, outline.Sections)
	return types.NewArticleContent(outline.H1, sections, fullText), types.OutcomeGenerated, nil
}

// generateOneShot produces the entire article in a single LLM call.
func (g *Generator) generateOneShot(ctx context.Context, outline types.Outline, serpAnalysis types.SERPAnalysis) (string, error) {
	totalWords := outline.TotalWordCount()

	keywords := append([]string{serpAnalysis.PrimaryKeyword}, limit(serpAnalysis.SecondaryKeywords, 3)...)

	prompt := prompts.MustGet("content.json", "oneshot-article")
	prompt = prompts.Format(prompt, map[string]string{
		"H1":                 outline.H1,
		"OutlineStructure":   formatOutlineStructure(outline.Sections),
		"TotalWords":         strconv.Itoa(totalWords),
		"Keywords":           strings.Join(keywords, ", "),
		"PrimaryKeyword":     serpAnalysis.PrimaryKeyword,
		"KeywordTargetCount": strconv.Itoa(totalWords / 100),
	})

	opts := &llm.GenerateOptions{
		Temperature:     0.8,
		MaxOutputTokens: 8000,
		SystemPrompt:    writerSystemPrompt,
	}

	fullText, err := llm.GenerateWithRetry(ctx, g.client, prompt, llm.TierAdvanced, opts, 3)
	if err != nil {
		return "", fmt.Errorf("one-shot article generation: %w", err)
	}

	fullText = strings.TrimSpace(fullText)
	if len(fullText) < minArticleChars {
		return "", fmt.Errorf("generated article too short: %d chars", len(fullText))
	}

	// Make sure the markdown opens with the planned H1.
	if !strings.HasPrefix(fullText, "# "+outline.H1) {
		fullText = "# " + outline.H1 + "\n\n" + fullText
	}

	return fullText, nil
}

// formatOutlineStructure renders the outline sections as the numbered
// blueprint the writing prompt expects.
func formatOutlineStructure(sections []types.OutlineSection) string {
	var b strings.Builder
	for i, section := range sections {
		fmt.Fprintf(&b, "\n%d. ## %s (~%d words)\n", i+1, section.H2, section.WordCount)
		for _, h3 := range section.H3s {
			fmt.Fprintf(&b, "   - ### %s\n", h3)
		}
		if len(section.KeyPoints) > 0 {
			fmt.Fprintf(&b, "   Key points: %s\n", strings.Join(section.KeyPoints, ", "))
		}
	}
	return b.String()
}

// ParseSections splits a markdown article on its H2 headings into
// structured sections. If no H2 headings are found, placeholder sections
// mirroring the outline are returned so the article structure stays intact.
func ParseSections(fullText string, planned []types.OutlineSection) []types.ArticleSection {
	matches := h2Pattern.FindAllStringSubmatchIndex(fullText, -1)

	var sections []types.ArticleSection
	for i, match := range matches {
		heading := strings.TrimSpace(fullText[match[2]:match[3]])
		start := match[1]
		end := len(fullText)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := strings.TrimSpace(fullText[start:end])

		sections = append(sections, types.ArticleSection{
			Heading:      heading,
			HeadingLevel: 2,
			Content:      body,
			WordCount:    types.CountWords(body),
		})
	}

	if len(sections) == 0 && len(planned) > 0 {
		for _, section := range planned {
			sections = append(sections, types.ArticleSection{
				Heading:      section.H2,
				HeadingLevel: 2,
				Content:      "Content parsing failed - article generated but structure unclear.",
				WordCount:    0,
			})
		}
	}

	return sections
}

// generateSectionBySection is the loop-based safety net: each section is
// generated independently. Slower and less coherent than one-shot, but it
// works even when the full article exceeds what one call can produce.
func (g *Generator) generateSectionBySection(ctx context.Context, outline types.Outline, serpAnalysis types.SERPAnalysis) (types.ArticleContent, error) {
	keywords := append([]string{serpAnalysis.PrimaryKeyword}, limit(serpAnalysis.SecondaryKeywords, 2)...)

	var sections []types.ArticleSection
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", outline.H1)

	for i, planned := range outline.Sections {
		log.Printf("fallback section %d/%d: %s", i+1, len(outline.Sections), planned.H2)

		body := g.generateSection(ctx, outline.H1, planned, keywords)

		sections = append(sections, types.ArticleSection{
			Heading:      planned.H2,
			HeadingLevel: 2,
			Content:      body,
			WordCount:    types.CountWords(body),
		})
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", planned.H2, body)
	}

	return types.NewArticleContent(outline.H1, sections, b.String()), nil
}

// generateSection writes one section's body. A failed or suspiciously
// short generation yields placeholder content so the article completes.
func (g *Generator) generateSection(ctx context.Context, h1 string, planned types.OutlineSection, keywords []string) string {
	h3Context := ""
	if len(planned.H3s) > 0 {
		h3Context = "\n\nStructure the content with these H3 subheadings:\n- " + strings.Join(planned.H3s, "\n- ")
	}
	pointsContext := ""
	if len(planned.KeyPoints) > 0 {
		pointsContext = "\n\nKey points to cover:\n- " + strings.Join(planned.KeyPoints, "\n- ")
	}

	primaryKeyword := ""
	if len(keywords) > 0 {
		primaryKeyword = keywords[0]
	}

	prompt := prompts.MustGet("content.json", "section-content")
	prompt = prompts.Format(prompt, map[string]string{
		"H1":             h1,
		"H2":             planned.H2,
		"H3Context":      h3Context,
		"PointsContext":  pointsContext,
		"WordCount":      strconv.Itoa(planned.WordCount),
		"Keywords":       strings.Join(limit(keywords, 3), ", "),
		"PrimaryKeyword": primaryKeyword,
	})

	opts := &llm.GenerateOptions{
		Temperature:  0.8,
		SystemPrompt: writerSystemPrompt,
	}

	body, err := llm.GenerateWithRetry(ctx, g.client, prompt, llm.TierStandard, opts, 3)
	if err == nil {
		body = strings.TrimSpace(body)
		if len(body) >= minSectionChars {
			return body
		}
		err = fmt.Errorf("generated content too short: %d chars", len(body))
	}

	log.Printf("section generation failed for %q, using placeholder: %v", planned.H2, err)
	return placeholderSection(planned, keywords)
}

// placeholderSection builds clearly-marked stand-in content for a section
// whose generation failed.
func placeholderSection(planned types.OutlineSection, keywords []string) string {
	topics := "relevant information"
	if len(planned.KeyPoints) > 0 {
		topics = strings.Join(limit(planned.KeyPoints, 2), ", ")
	}
	keyword := "relevant terms"
	if len(keywords) > 0 && keywords[0] != "" {
		keyword = keywords[0]
	}

	return fmt.Sprintf(`This section would cover %s. In a production environment, this content would be generated using the LLM service.

Key topics to explore include %s.

The content would naturally incorporate keywords like %s while maintaining readability and providing actionable insights for readers.`,
		strings.ToLower(planned.H2), topics, keyword)
}

// limit returns at most n elements of s.
func limit(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
