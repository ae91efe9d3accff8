package seo

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/seo-content-engine/internal/types"
)

// KeywordPattern compiles a case-insensitive, word-boundary pattern for a
// keyword phrase. Boundary matching keeps "tool" from matching "toolbox".
func KeywordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.TrimSpace(keyword)) + `\b`)
}

// CountKeyword returns how many times the keyword phrase occurs in text,
// matched on word boundaries and ignoring case.
func CountKeyword(text, keyword string) int {
	if strings.TrimSpace(keyword) == "" {
		return 0
	}
	return len(KeywordPattern(keyword).FindAllStringIndex(text, -1))
}

// ContainsKeyword reports whether the keyword phrase occurs in text on a
// word boundary, ignoring case.
func ContainsKeyword(text, keyword string) bool {
	if strings.TrimSpace(keyword) == "" {
		return false
	}
	return KeywordPattern(keyword).MatchString(text)
}

// AnalyzeKeywords calculates keyword density across the article text.
// Density is (occurrences / total words) x 100, rounded to two decimals.
// The 1-2.5% range signals relevance without stuffing.
func AnalyzeKeywords(articleText, primaryKeyword string, secondaryKeywords []string) types.KeywordAnalysis {
	count := CountKeyword(articleText, primaryKeyword)
	totalWords := types.CountWords(articleText)

	density := 0.0
	if totalWords > 0 {
		density = float64(count) / float64(totalWords) * 100
	}

	return types.KeywordAnalysis{
		PrimaryKeyword:    primaryKeyword,
		SecondaryKeywords: secondaryKeywords,
		KeywordDensity:    math.Round(density*100) / 100,
	}
}
