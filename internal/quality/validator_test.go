package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/seo-content-engine/internal/types"
)

// passingFixture builds an article that satisfies every criterion:
// 619 words against a 600 target, five H2 sections, keyword density
// 1.78%, and an average sentence length of ~17 words.
func passingFixture() (types.ArticleContent, types.SEOMetadata) {
	kwSentence := "Remote teams rely on productivity tools to plan their work and ship projects on time. "
	filler := "Each team should review its process every quarter and remove the steps that add friction. "

	headings := []string{"Getting Started", "Core Features", "Team Workflows", "Pricing Guide", "Final Thoughts"}

	var b strings.Builder
	b.WriteString("# Best Productivity Tools\n\n")

	sections := make([]types.ArticleSection, 0, len(headings))
	for _, h := range headings {
		var sb strings.Builder
		for i := 0; i < 8; i++ {
			if i%4 == 0 {
				sb.WriteString(kwSentence)
			} else {
				sb.WriteString(filler)
			}
		}
		body := strings.TrimSpace(sb.String())
		b.WriteString("## " + h + "\n\n" + body + "\n\n")
		sections = append(sections, types.ArticleSection{
			Heading:      h,
			HeadingLevel: 2,
			Content:      body,
			WordCount:    types.CountWords(body),
		})
	}

	article := types.NewArticleContent(
		"The Best Productivity Tools for Remote Teams",
		sections,
		strings.TrimSpace(b.String()),
	)

	metadata := types.SEOMetadata{
		TitleTag:        "The Best Productivity Tools for Remote Teams in 2025",
		MetaDescription: "Discover the best productivity tools for remote teams. Compare features, pricing, and workflows to choose software your team will actually use every day.",
		FocusKeyword:    "productivity tools",
	}

	return article, metadata
}

func TestValidate_PerfectArticle(t *testing.T) {
	article, metadata := passingFixture()

	report := Validate(article, metadata, 600)

	assert.Equal(t, 100, report.Score)
	assert.Equal(t, 100, report.MaxScore)
	assert.Equal(t, 100.0, report.Percentage)
	assert.Empty(t, report.Issues)
	assert.True(t, report.Passed)
}

func TestValidate_Deterministic(t *testing.T) {
	article, metadata := passingFixture()

	first := Validate(article, metadata, 600)
	second := Validate(article, metadata, 600)

	assert.Equal(t, first, second)
}

func TestValidate_TitleLengthBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		titleLen  int
		wantScore int
	}{
		{"below lower bound", 39, 90},
		{"at lower bound", 40, 100},
		{"at upper bound", 65, 100},
		{"above upper bound", 66, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article, metadata := passingFixture()
			metadata.TitleTag = strings.Repeat("a", tt.titleLen)

			report := Validate(article, metadata, 600)

			assert.Equal(t, tt.wantScore, report.Score)
		})
	}
}

func TestValidate_MetaDescriptionPartialCredit(t *testing.T) {
	tests := []struct {
		name      string
		descLen   int
		wantScore int
	}{
		{"ideal range", 155, 100},
		{"lower ideal bound", 145, 100},
		{"upper ideal bound", 165, 100},
		{"near miss low", 142, 95},
		{"near miss high", 168, 95},
		{"too short", 120, 90},
		{"too long", 200, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article, metadata := passingFixture()
			metadata.MetaDescription = strings.Repeat("x", tt.descLen)

			report := Validate(article, metadata, 600)

			assert.Equal(t, tt.wantScore, report.Score)
		})
	}
}

func TestValidate_KeywordInH1_WordBoundary(t *testing.T) {
	article, metadata := passingFixture()

	// "cat" inside "Caterpillar" must not count as a match.
	article.H1 = "Caterpillar Husbandry for Complete Beginners Everywhere"
	metadata.FocusKeyword = "cat"

	report := Validate(article, metadata, 600)

	assert.Contains(t, report.Issues, "Primary keyword not found in H1")
}

func TestValidate_KeywordNotInFirstHundredWords(t *testing.T) {
	article, metadata := passingFixture()
	// "pricing" only occurs in a section heading far past the 100-word mark.
	metadata.FocusKeyword = "pricing"

	report := Validate(article, metadata, 600)

	assert.Contains(t, report.Issues, "Primary keyword not in first 100 words")
}

func TestValidate_WordCountOutOfRange(t *testing.T) {
	article, metadata := passingFixture()

	// 619 actual words against a 2000 target is off by more than 30%.
	report := Validate(article, metadata, 2000)

	assert.Equal(t, 90, report.Score)
	require.Len(t, report.Issues, 1)
	assert.Contains(t, report.Issues[0], "Word count significantly off target")
}

func TestValidate_TooFewSections(t *testing.T) {
	article, metadata := passingFixture()
	article.Sections = article.Sections[:3]

	report := Validate(article, metadata, 600)

	assert.Equal(t, 85, report.Score)
	assert.Contains(t, report.Issues, "Should have at least 4 H2 sections (has 3)")
}

func TestValidate_DensityFloorByKeywordLength(t *testing.T) {
	// A 5+ word keyword appearing once in ~600 words sits near 0.16%
	// density: passing for long-tail, failing for a short keyword.
	article, metadata := passingFixture()

	longTail := "best productivity tools for remote teams"
	article.H1 = "The Best Productivity Tools for Remote Teams"
	article.FullText = strings.Replace(article.FullText,
		"Remote teams rely on productivity tools",
		"Consider the best productivity tools for remote teams when you", 1)
	article.WordCount = types.CountWords(article.FullText)
	metadata.FocusKeyword = longTail

	report := Validate(article, metadata, 600)
	for _, issue := range report.Issues {
		assert.NotContains(t, issue, "Keyword density")
	}

	// The same single occurrence fails a short keyword's 1.0% floor.
	metadata.FocusKeyword = "remote teams when"
	shortReport := Validate(article, metadata, 600)
	found := false
	for _, issue := range shortReport.Issues {
		if strings.Contains(issue, "Keyword density should be 1.0-2.5%") {
			found = true
		}
	}
	assert.True(t, found, "expected short-keyword density failure, got %v", shortReport.Issues)
}

func TestValidate_ReadabilityTooChoppy(t *testing.T) {
	article, metadata := passingFixture()

	// Three-word sentences average far below the 12-word floor.
	var b strings.Builder
	b.WriteString("# Best Productivity Tools\n\n")
	for i := 0; i < 100; i++ {
		b.WriteString("Productivity tools help. ")
	}
	article = types.NewArticleContent(article.H1, article.Sections, strings.TrimSpace(b.String()))

	report := Validate(article, metadata, 600)

	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "Average sentence length") {
			found = true
		}
	}
	assert.True(t, found, "expected readability failure, got %v", report.Issues)
}

func TestValidate_NoSentenceTerminators(t *testing.T) {
	article, metadata := passingFixture()

	// Degenerate text with no terminators falls back to the word-count
	// heuristic instead of dividing by zero.
	article = types.NewArticleContent(article.H1, article.Sections,
		strings.Repeat("word ", 300))

	report := Validate(article, metadata, 600)

	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 100)
}

func TestValidate_PassedThreshold(t *testing.T) {
	article, metadata := passingFixture()

	// Strip enough criteria to land below 70: bad title (-10), bad
	// description (-10), too few sections (-15).
	metadata.TitleTag = "short"
	metadata.MetaDescription = "too short"
	article.Sections = article.Sections[:2]

	report := Validate(article, metadata, 600)

	assert.Equal(t, 65, report.Score)
	assert.False(t, report.Passed)
}

func TestCountSentences_SkipsFalseTerminators(t *testing.T) {
	// Dots inside abbreviations and before lowercase letters are not
	// sentence ends, and the text carries no real terminator at its end.
	assert.Equal(t, 0, countSentences("The U.S. market grew fast. it kept growing"))
	// Both real sentence ends count, including end-of-text.
	assert.Equal(t, 2, countSentences("It grew. Then it stopped."))
	// Decimal points never match: no whitespace after the dot.
	assert.Equal(t, 1, countSentences("Growth was 3.5 percent this year."))
}
