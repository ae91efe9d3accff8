// Package types defines the shared entities exchanged between the pipeline
// agents, the job store, and the HTTP API.
package types

import (
	"strings"
	"unicode"
)

// SERPResult is a single search engine result from the top rankings.
type SERPResult struct {
	Rank    int    `json:"rank"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// SERPAnalysis holds the competitive intelligence extracted from the top
// search results for a topic.
type SERPAnalysis struct {
	CommonTopics          []string `json:"common_topics"`
	Subtopics             []string `json:"subtopics"`
	ContentGaps           []string `json:"content_gaps"`
	RecommendedH2Headings []string `json:"recommended_h2_headings"`
	PrimaryKeyword        string   `json:"primary_keyword"`
	SecondaryKeywords     []string `json:"secondary_keywords"`
}

// OutlineSection is one planned H2 section of the article.
type OutlineSection struct {
	H2        string   `json:"h2"`
	H3s       []string `json:"h3s"`
	WordCount int      `json:"word_count"`
	KeyPoints []string `json:"key_points"`
}

// Outline is the article blueprint produced by the outline generator.
type Outline struct {
	H1       string           `json:"h1"`
	Sections []OutlineSection `json:"sections"`
}

// TotalWordCount returns the sum of the per-section word count targets.
func (o *Outline) TotalWordCount() int {
	total := 0
	for _, s := range o.Sections {
		total += s.WordCount
	}
	return total
}

// ArticleSection is a generated section parsed from the article markdown.
type ArticleSection struct {
	Heading      string `json:"heading"`
	HeadingLevel int    `json:"heading_level"`
	Content      string `json:"content"`
	WordCount    int    `json:"word_count"`
}

// ArticleContent is the complete generated article. WordCount is always the
// whitespace-token count of FullText; the per-section counts are a derived
// view and may diverge from the total by heading-line tokens.
type ArticleContent struct {
	H1        string           `json:"h1"`
	Sections  []ArticleSection `json:"sections"`
	FullText  string           `json:"full_text"`
	WordCount int              `json:"word_count"`
}

// NewArticleContent builds an ArticleContent, enforcing the canonical word
// count definition (token count of the full text).
func NewArticleContent(h1 string, sections []ArticleSection, fullText string) ArticleContent {
	return ArticleContent{
		H1:        h1,
		Sections:  sections,
		FullText:  fullText,
		WordCount: CountWords(fullText),
	}
}

// CountWords returns the number of whitespace-separated tokens in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// TitleCase capitalizes the first letter of each word and lowercases the
// rest, matching how search titles render topic phrases.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// SEOMetadata holds the search-facing tags for the article.
type SEOMetadata struct {
	TitleTag        string `json:"title_tag"`
	MetaDescription string `json:"meta_description"`
	FocusKeyword    string `json:"focus_keyword"`
}

// KeywordAnalysis reports keyword usage across the article. Density is a
// percentage rounded to two decimals.
type KeywordAnalysis struct {
	PrimaryKeyword    string   `json:"primary_keyword"`
	SecondaryKeywords []string `json:"secondary_keywords"`
	KeywordDensity    float64  `json:"keyword_density"`
}

// InternalLink is a suggested link to related content on the same site.
type InternalLink struct {
	AnchorText      string `json:"anchor_text"`
	SuggestedTarget string `json:"suggested_target"`
	Context         string `json:"context"`
}

// ExternalReference is a suggested authoritative source to cite.
type ExternalReference struct {
	SourceName          string `json:"source_name"`
	URL                 string `json:"url"`
	Context             string `json:"context"`
	PlacementSuggestion string `json:"placement_suggestion"`
}

// QualityReport is the output of the rule-based SEO quality validator.
type QualityReport struct {
	Score      int      `json:"score"`
	MaxScore   int      `json:"max_score"`
	Percentage float64  `json:"percentage"`
	Issues     []string `json:"issues"`
	Passed     bool     `json:"passed"`
}

// ArticleOutput is the final package delivered by a successful pipeline run.
// Immutable once produced.
type ArticleOutput struct {
	Article            ArticleContent      `json:"article"`
	SEOMetadata        SEOMetadata         `json:"seo_metadata"`
	KeywordAnalysis    KeywordAnalysis     `json:"keyword_analysis"`
	InternalLinks      []InternalLink      `json:"internal_links"`
	ExternalReferences []ExternalReference `json:"external_references"`
	SERPResults        []SERPResult        `json:"serp_analysis"`
	QualityReport      QualityReport       `json:"quality_report"`
	// Warnings lists the steps that fell back to canned output instead of
	// genuinely generated content.
	Warnings []string `json:"warnings,omitempty"`
}
