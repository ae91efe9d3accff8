// Package quality is the rule-based final check on a generated article.
// No LLM involved: it measures text properties directly against eight SEO
// criteria worth 100 points total, and an article passes at 70 or above.
package quality

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/jonathan/seo-content-engine/internal/seo"
	"github.com/jonathan/seo-content-engine/internal/types"
)

// MaxScore is the total points across all criteria.
const MaxScore = 100

// PassingScore is the minimum score for publishable quality.
const PassingScore = 70

// Validate scores the article against eight SEO criteria:
//
//	title tag length 40-65 chars        10 pts
//	meta description length 145-165     10 pts (5 partial at 140-170)
//	primary keyword in H1               15 pts
//	keyword in first 100 words          15 pts
//	word count within +-30% of target   10 pts
//	at least 4 H2 sections              15 pts
//	keyword density in range            10 pts
//	readability 12-20 words/sentence    15 pts
//
// Keyword checks use word-boundary matching so "cat" never matches inside
// "caterpillar". The density floor is dynamic: long-tail keywords (5+
// words) can't reach 1% without stuffing, so they get a 0.1% floor.
func Validate(article types.ArticleContent, metadata types.SEOMetadata, targetWordCount int) types.QualityReport {
	score := 0
	issues := []string{}

	// 1. Title tag length. Google truncates around 60 chars, but punchy
	// 40+ char titles are valid.
	titleLen := len(metadata.TitleTag)
	if titleLen >= 40 && titleLen <= 65 {
		score += 10
	} else {
		issues = append(issues, fmt.Sprintf("Title tag should be 40-65 chars (current: %d)", titleLen))
	}

	// 2. Meta description length. Ideal is ~155; soft boundaries with
	// partial credit since Google isn't strict at the exact cut-off.
	descLen := len(metadata.MetaDescription)
	switch {
	case descLen >= 145 && descLen <= 165:
		score += 10
	case descLen >= 140 && descLen <= 170:
		score += 5
		issues = append(issues, fmt.Sprintf("Meta description nearly ideal (current: %d chars, target: 145-165)", descLen))
	default:
		issues = append(issues, fmt.Sprintf("Meta description should be 145-165 chars (current: %d)", descLen))
	}

	// 3. Primary keyword in H1.
	if seo.ContainsKeyword(article.H1, metadata.FocusKeyword) {
		score += 15
	} else {
		issues = append(issues, "Primary keyword not found in H1")
	}

	// 4. Keyword in the first 100 words. Early placement signals topic focus.
	first100 := firstNWords(article.FullText, 100)
	if seo.ContainsKeyword(first100, metadata.FocusKeyword) {
		score += 15
	} else {
		issues = append(issues, "Primary keyword not in first 100 words")
	}

	// 5. Word count within +-30% of target. SEO content often runs
	// 20-30% over target; that's professional standard, not a defect.
	wordDiff := article.WordCount - targetWordCount
	if wordDiff < 0 {
		wordDiff = -wordDiff
	}
	if float64(wordDiff) <= float64(targetWordCount)*0.3 {
		score += 10
	} else {
		issues = append(issues, fmt.Sprintf("Word count significantly off target by %d words (target: %d, actual: %d)", wordDiff, targetWordCount, article.WordCount))
	}

	// 6. Heading structure: at least 4 H2 sections.
	if len(article.Sections) >= 4 {
		score += 15
	} else {
		issues = append(issues, fmt.Sprintf("Should have at least 4 H2 sections (has %d)", len(article.Sections)))
	}

	// 7. Keyword density with a dynamic floor by keyword length.
	keywordCount := seo.CountKeyword(article.FullText, metadata.FocusKeyword)
	density := 0.0
	if article.WordCount > 0 {
		density = float64(keywordCount) / float64(article.WordCount) * 100
	}

	minDensity := 1.0
	densityLabel := "1.0-2.5%"
	if types.CountWords(metadata.FocusKeyword) >= 5 {
		minDensity = 0.1
		densityLabel = "0.1-2.5%"
	}

	if density >= minDensity && density <= 2.5 {
		score += 10
	} else {
		issues = append(issues, fmt.Sprintf("Keyword density should be %s (current: %.2f%%)", densityLabel, density))
	}

	// 8. Readability: average sentence length 12-20 words.
	sentenceCount := countSentences(article.FullText)
	if sentenceCount == 0 {
		// Degenerate text with no detectable sentence ends. Assume ~15
		// words per sentence as a baseline.
		sentenceCount = article.WordCount / 15
		if sentenceCount < 1 {
			sentenceCount = 1
		}
	}
	avgWords := float64(article.WordCount) / float64(sentenceCount)
	if avgWords >= 12 && avgWords <= 20 {
		score += 15
	} else {
		issues = append(issues, fmt.Sprintf("Average sentence length: %.1f words (ideal: 12-20 words)", avgWords))
	}

	percentage := math.Round(float64(score)/float64(MaxScore)*100*10) / 10

	return types.QualityReport{
		Score:      score,
		MaxScore:   MaxScore,
		Percentage: percentage,
		Issues:     issues,
		Passed:     score >= PassingScore,
	}
}

// firstNWords returns the first n whitespace-separated tokens of s,
// rejoined with single spaces.
func firstNWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// countSentences counts real sentence terminators: a '.', '!', or '?'
// followed by whitespace and an uppercase letter, or by nothing but
// trailing whitespace. This avoids counting abbreviations (Dr., U.S.A.),
// decimals (3.5), and mid-sentence punctuation as sentence ends.
func countSentences(text string) int {
	runes := []rune(text)
	count := 0
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		j := i + 1
		sawSpace := false
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			sawSpace = true
			j++
		}
		if j == len(runes) {
			// Terminator at end of text (possibly with trailing whitespace).
			count++
		} else if sawSpace && unicode.IsUpper(runes[j]) {
			count++
		}
	}
	return count
}
