package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClient_GenerateContent_Routing(t *testing.T) {
	c := NewMockClient()
	ctx := context.Background()

	article, err := c.GenerateContent(ctx, "ARTICLE OUTLINE:\n1. ## Intro\nWrite the FULL article now:", TierAdvanced, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(article, "# "))

	section, err := c.GenerateContent(ctx, "Section Heading: Benefits", TierStandard, nil)
	require.NoError(t, err)
	assert.NotEqual(t, article, section)
	assert.NotEmpty(t, section)

	generic, err := c.GenerateContent(ctx, "something unrelated", TierLite, nil)
	require.NoError(t, err)
	assert.NotEqual(t, article, generic)
	assert.NotEqual(t, section, generic)
}

func TestMockClient_GenerateJSON_Routing(t *testing.T) {
	c := NewMockClient()
	ctx := context.Background()

	tests := []struct {
		name    string
		prompt  string
		wantKey string
	}{
		{"analysis", `Return JSON with "common_topics" and more`, "common_topics"},
		{"outline", "Create a detailed article outline as JSON", "h1"},
		{"metadata", `Return JSON with "title_tag"`, "title_tag"},
		{"internal links", "Suggest internal link opportunities", "links"},
		{"references", "Suggest authoritative external sources", "references"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := c.GenerateJSON(ctx, tt.prompt, TierStandard)
			require.NoError(t, err)

			var payload map[string]json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(raw), &payload))
			assert.Contains(t, payload, tt.wantKey)
		})
	}
}

func TestMockClient_GenerateJSON_UnknownPrompt(t *testing.T) {
	c := NewMockClient()

	raw, err := c.GenerateJSON(context.Background(), "totally unrelated prompt", TierLite)

	require.NoError(t, err)
	assert.Equal(t, "{}", raw)
}

func TestMockClient_ModelAndClose(t *testing.T) {
	c := NewMockClient()

	assert.Equal(t, "mock", c.GetModel(TierAdvanced))
	assert.NoError(t, c.Close())
}
