package llm

import (
	"context"
	"strings"
)

// MockClient serves deterministic canned responses keyed on prompt content.
// It enables full end-to-end runs and tests without API keys or cost, the
// same way the real client is exercised in development.
type MockClient struct{}

// NewMockClient creates a mock LLM client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// GenerateContent returns canned prose matching the kind of request detected
// in the prompt.
func (c *MockClient) GenerateContent(_ context.Context, prompt string, _ ModelTier, _ *GenerateOptions) (string, error) {
	lower := strings.ToLower(prompt)

	if strings.Contains(lower, "write the full article") || strings.Contains(lower, "article outline:") {
		return mockFullArticle, nil
	}
	if strings.Contains(lower, "section heading:") {
		return mockSectionContent, nil
	}
	return mockGenericContent, nil
}

// GenerateJSON returns canned JSON matching the kind of request detected in
// the prompt.
func (c *MockClient) GenerateJSON(_ context.Context, prompt string, _ ModelTier) (string, error) {
	lower := strings.ToLower(prompt)

	switch {
	case strings.Contains(lower, "common_topics"):
		return mockAnalysisJSON, nil
	case strings.Contains(lower, "outline"):
		return mockOutlineJSON, nil
	case strings.Contains(lower, "title_tag"):
		return mockMetadataJSON, nil
	case strings.Contains(lower, "internal link"):
		return mockInternalLinksJSON, nil
	case strings.Contains(lower, "external sources") || strings.Contains(lower, "references"):
		return mockReferencesJSON, nil
	default:
		return "{}", nil
	}
}

// GetModel returns a fixed identifier so logs stay readable in mock mode.
func (c *MockClient) GetModel(_ ModelTier) string {
	return "mock"
}

// Close is a no-op for the mock client.
func (c *MockClient) Close() error {
	return nil
}

const mockAnalysisJSON = `{
  "common_topics": [
    "Remote work communication tools",
    "Project management platforms",
    "Time tracking and productivity monitoring",
    "Video conferencing solutions",
    "Document collaboration tools"
  ],
  "subtopics": [
    "Slack vs Microsoft Teams comparison",
    "Asana and Trello features",
    "Zoom and Google Meet capabilities",
    "Cloud storage solutions",
    "Automation and workflow integration",
    "Async standups and status updates"
  ],
  "content_gaps": [
    "Detailed ROI analysis of productivity tools",
    "Security considerations for remote tools"
  ],
  "recommended_h2_headings": [
    "Essential Categories of Remote Work Tools",
    "Top Communication Platforms Compared",
    "Project Management Solutions Overview",
    "Time Tracking and Productivity Apps",
    "Integration and Automation Strategies"
  ],
  "primary_keyword": "best productivity tools for remote work",
  "secondary_keywords": [
    "remote collaboration",
    "team communication",
    "time tracking",
    "workflow automation"
  ]
}`

const mockOutlineJSON = `{
  "h1": "The Complete Guide to Best Productivity Tools for Remote Work",
  "sections": [
    {
      "h2": "Introduction to Remote Work Productivity Tools",
      "h3s": [],
      "word_count": 200,
      "key_points": ["Why productivity tools matter", "Overview of tool categories", "Article roadmap"]
    },
    {
      "h2": "Understanding Remote Work Productivity Tools",
      "h3s": ["Tool Categories and Use Cases", "Integration Ecosystem"],
      "word_count": 300,
      "key_points": ["Different types of productivity tools", "How tools work together", "Key features to look for"]
    },
    {
      "h2": "Benefits of Using Productivity Tools",
      "h3s": ["Collaboration Improvements", "Cost Efficiency"],
      "word_count": 250,
      "key_points": ["Enhanced team collaboration", "Better time management", "ROI and cost savings"]
    },
    {
      "h2": "Best Practices for Implementation",
      "h3s": ["Needs Assessment", "Training and Adoption"],
      "word_count": 400,
      "key_points": ["How to choose the right tools", "Implementation strategies", "Measuring success"]
    },
    {
      "h2": "Conclusion and Next Steps",
      "h3s": [],
      "word_count": 150,
      "key_points": ["Summary of main points", "Action steps for readers"]
    }
  ]
}`

const mockMetadataJSON = `{
  "title_tag": "Best Productivity Tools for Remote Work: 2025 Guide",
  "meta_description": "Discover the best productivity tools for remote work. Compare features, pricing, and real team workflows to pick software your whole company will actually use.",
  "focus_keyword": "best productivity tools for remote work"
}`

const mockInternalLinksJSON = `{
  "links": [
    {
      "anchor_text": "remote work communication strategies",
      "suggested_target": "/blog/remote-work-communication-strategies",
      "context": "Complements the tools discussion with communication best practices"
    },
    {
      "anchor_text": "project management methodologies",
      "suggested_target": "/blog/project-management-methodologies",
      "context": "Explains frameworks that pair well with the recommended platforms"
    },
    {
      "anchor_text": "building effective remote teams",
      "suggested_target": "/blog/building-remote-teams",
      "context": "Covers team dynamics and culture in remote environments"
    }
  ]
}`

const mockReferencesJSON = `{
  "references": [
    {
      "source_name": "Buffer State of Remote Work",
      "url": "https://buffer.com/state-of-remote-work",
      "context": "Authoritative research on remote work trends and tool usage",
      "placement_suggestion": "Cite in the introduction to establish credibility"
    },
    {
      "source_name": "Harvard Business Review",
      "url": "https://hbr.org/topic/remote-work",
      "context": "Expert insights on effective remote collaboration",
      "placement_suggestion": "Reference in the benefits section"
    }
  ]
}`

const mockFullArticle = `# The Complete Guide to Best Productivity Tools for Remote Work

The best productivity tools for remote work have moved from nice-to-have to essential. Distributed teams live or die by how well their software supports communication, planning, and focus. This guide walks through the main tool categories and shows you how to pick a stack that fits your team.

## Introduction to Remote Work Productivity Tools

Remote work changed how teams collaborate. Without a shared office, your tools become the office. Teams that choose deliberately report fewer dropped handoffs and faster delivery. We'll cover the categories that matter, what separates good tools from noisy ones, and how to roll them out without overwhelming your team.

## Understanding Remote Work Productivity Tools

The landscape breaks down into a few clear categories. Each one solves a distinct problem, and most teams need something from every category.

### Tool Categories and Use Cases

Project management platforms like Asana and Linear turn goals into trackable work. Communication hubs such as Slack replace fragmented email threads. Video conferencing fills the face-to-face gap, and shared document suites keep knowledge in one place.

### Integration Ecosystem

Modern platforms connect to each other. A task created from a chat message, a meeting note linked to a project, an automation that posts status updates. The fewer times your team copies information between tools, the more time they spend on real work.

## Benefits of Using Productivity Tools

Teams that adopt a coherent stack see measurable gains. Projects finish closer to their deadlines. Questions get answered in channels instead of meetings.

### Collaboration Improvements

Real-time documents end version confusion. Organized channels keep decisions findable. Distributed teammates stay aligned across time zones without waiting for the next call.

### Cost Efficiency

Subscription pricing scales with your team instead of demanding upfront investment. Most organizations also trim redundant tools once they audit what they actually use, which pays for the stack that remains.

## Best Practices for Implementation

Start with a needs assessment, not a feature list. Map where work currently stalls, then pick tools that remove those specific blockers. Pilot with one team before rolling out broadly. Train deliberately: short videos, written guides, and a designated champion who fields questions. Review the stack quarterly and cut what nobody opens.

## Conclusion and Next Steps

The best productivity tools for remote work are the ones your team actually uses. Pick for your workflow, not for the demo. Start small, measure the change, and expand what works. Your stack should fade into the background while the work moves forward.`

const mockSectionContent = `This section digs into the practical side of the topic. Teams that take a deliberate approach see better outcomes than teams that improvise, and the difference usually comes down to a handful of habits rather than any single tool.

Start with the fundamentals. Understand what problem you're solving before reaching for a solution, and write that problem down so everyone agrees on it. From there, evaluate options against your actual constraints: budget, team size, existing systems, and how much change your team can absorb at once.

Real-world experience points the same direction. Organizations that pilot changes with a small group, gather feedback, and iterate before a wide rollout consistently report smoother adoption and better long-term results. You'll avoid the most common failure mode, which is buying a solution and declaring the problem solved.`

const mockGenericContent = `This section provides practical guidance drawn from industry experience. Through careful analysis and real-world examples, it explores the considerations that matter most to professionals and organizations, enabling more informed decisions and effective implementation.`
