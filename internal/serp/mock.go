package serp

import (
	"context"
	"fmt"

	"github.com/jonathan/seo-content-engine/internal/types"
)

// MockSource returns realistic canned search results for development and
// testing. The fake results mimic the patterns seen in real SERPs:
// positions 1-3 are comprehensive guides, 4-6 are comparison and list
// articles, and 7-10 are case studies, research, and community content.
type MockSource struct{}

// NewMockSource creates a mock result source.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// Search returns up to numResults mock results parameterized by the query.
func (s *MockSource) Search(_ context.Context, query string, numResults int) ([]types.SERPResult, error) {
	if numResults <= 0 {
		numResults = DefaultResultCount
	}

	titled := types.TitleCase(query)
	all := []types.SERPResult{
		{
			Rank:    1,
			URL:     "https://example.com/comprehensive-guide",
			Title:   fmt.Sprintf("The Complete Guide to %s in 2025", titled),
			Snippet: fmt.Sprintf("Discover everything you need to know about %s. Our comprehensive guide covers best practices, expert tips, and proven strategies that work.", query),
		},
		{
			Rank:    2,
			URL:     "https://techblog.com/best-practices",
			Title:   fmt.Sprintf("15 Best %s Strategies for Success", titled),
			Snippet: fmt.Sprintf("Learn the top strategies for %s. Industry experts share their insights, case studies, and actionable recommendations.", query),
		},
		{
			Rank:    3,
			URL:     "https://industry-leader.com/ultimate-guide",
			Title:   fmt.Sprintf("Ultimate %s Guide for Beginners", titled),
			Snippet: fmt.Sprintf("Start your journey with %s. Step-by-step tutorials, tools, and resources to help you get started quickly and effectively.", query),
		},
		{
			Rank:    4,
			URL:     "https://expert-reviews.com/comparison",
			Title:   fmt.Sprintf("Top 10 %s Tools Compared", titled),
			Snippet: fmt.Sprintf("We tested and compared the leading %s solutions. See detailed reviews, pricing, features, and our expert recommendations.", query),
		},
		{
			Rank:    5,
			URL:     "https://business-insider.com/trends",
			Title:   fmt.Sprintf("%s Trends to Watch in 2025", titled),
			Snippet: fmt.Sprintf("Stay ahead with the latest %s trends. Market analysis, expert predictions, and emerging technologies shaping the industry.", query),
		},
		{
			Rank:    6,
			URL:     "https://professional-blog.com/how-to",
			Title:   fmt.Sprintf("How to Implement %s Successfully", titled),
			Snippet: fmt.Sprintf("A practical guide to implementing %s. Real-world examples, common pitfalls to avoid, and proven implementation strategies.", query),
		},
		{
			Rank:    7,
			URL:     "https://authority-site.com/advanced",
			Title:   fmt.Sprintf("Advanced %s Techniques", titled),
			Snippet: fmt.Sprintf("Take your %s skills to the next level. Advanced techniques, optimization strategies, and expert-level insights.", query),
		},
		{
			Rank:    8,
			URL:     "https://case-studies.com/success-stories",
			Title:   fmt.Sprintf("%s Success Stories and Case Studies", titled),
			Snippet: fmt.Sprintf("Learn from real success stories. Companies share how they used %s to achieve remarkable results and ROI.", query),
		},
		{
			Rank:    9,
			URL:     "https://research-institute.com/report",
			Title:   fmt.Sprintf("2025 %s Research Report", titled),
			Snippet: fmt.Sprintf("Comprehensive research on %s. Data-driven insights, statistics, and analysis from leading industry researchers.", query),
		},
		{
			Rank:    10,
			URL:     "https://community-forum.com/discussion",
			Title:   fmt.Sprintf("%s Community Discussion and Tips", titled),
			Snippet: fmt.Sprintf("Join the discussion about %s. Community members share tips, answer questions, and provide peer support.", query),
		},
	}

	if numResults < len(all) {
		all = all[:numResults]
	}
	return all, nil
}
