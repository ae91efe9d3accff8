package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\t  ", 0},
		{"single word", "hello", 1},
		{"mixed whitespace", "one  two\nthree\tfour", 4},
		{"markdown tokens count", "# Heading\n\nBody text here.", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.text))
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"productivity tools", "Productivity Tools"},
		{"BEST remote WORK", "Best Remote Work"},
		{"", ""},
		{"a", "A"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleCase(tt.in))
	}
}

func TestNewArticleContent_CanonicalWordCount(t *testing.T) {
	sections := []ArticleSection{
		{Heading: "Intro", HeadingLevel: 2, Content: "some intro text", WordCount: 3},
	}
	article := NewArticleContent("My Title", sections, "# My Title\n\n## Intro\n\nsome intro text")

	// The canonical count is over the full text, headings included.
	assert.Equal(t, 8, article.WordCount)
	assert.Equal(t, "My Title", article.H1)
	assert.Len(t, article.Sections, 1)
}

func TestOutline_TotalWordCount(t *testing.T) {
	outline := Outline{
		H1: "Guide",
		Sections: []OutlineSection{
			{H2: "One", WordCount: 200},
			{H2: "Two", WordCount: 300},
			{H2: "Three", WordCount: 150},
		},
	}

	assert.Equal(t, 650, outline.TotalWordCount())

	empty := Outline{H1: "Empty"}
	assert.Equal(t, 0, empty.TotalWordCount())
}
