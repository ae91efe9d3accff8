package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedPrompts(t *testing.T) {
	tests := []struct {
		filename string
		key      string
	}{
		{"analysis.json", "analyze-serp"},
		{"outline.json", "generate-outline"},
		{"content.json", "oneshot-article"},
		{"content.json", "section-content"},
		{"seo.json", "seo-metadata"},
		{"seo.json", "internal-links"},
		{"seo.json", "external-references"},
	}

	for _, tt := range tests {
		t.Run(tt.filename+"/"+tt.key, func(t *testing.T) {
			prompt, err := Get(tt.filename, tt.key)
			require.NoError(t, err)
			assert.NotEmpty(t, prompt)
		})
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("analysis.json", "no-such-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-key")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "any")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	out := Format("Write about {{.Topic}} in {{.Words}} words. {{.Topic}} matters.", map[string]string{
		"Topic": "remote work",
		"Words": "1500",
	})

	assert.Equal(t, "Write about remote work in 1500 words. remote work matters.", out)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	out := Format("Hello {{.Name}}", map[string]string{"Other": "x"})

	assert.Equal(t, "Hello {{.Name}}", out)
}

func TestList(t *testing.T) {
	keys, err := List("seo.json")
	require.NoError(t, err)
	assert.Len(t, keys, 3)
}

func TestClearCache(t *testing.T) {
	_, err := Get("analysis.json", "analyze-serp")
	require.NoError(t, err)

	ClearCache()

	prompt, err := Get("analysis.json", "analyze-serp")
	require.NoError(t, err)
	assert.True(t, strings.Contains(prompt, "{{.Topic}}"))
}
