package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedSchemas(t *testing.T) {
	for _, name := range []string{"analysis", "outline", "seo_metadata", "internal_links", "external_references"} {
		t.Run(name, func(t *testing.T) {
			schema, err := Get(name)
			require.NoError(t, err)
			assert.Contains(t, schema, "$schema")
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("no_such_schema")
	assert.Error(t, err)
}

func TestValidateJSONString_Valid(t *testing.T) {
	schema := MustGet("seo_metadata")

	err := ValidateJSONString(schema, `{
		"title_tag": "A Title",
		"meta_description": "A description.",
		"focus_keyword": "keyword"
	}`)

	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	schema := MustGet("seo_metadata")

	err := ValidateJSONString(schema, `{"title_tag": "A Title"}`)

	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.NotEmpty(t, verr.Errors)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	schema := MustGet("seo_metadata")

	err := ValidateJSONString(schema, `{not json`)

	assert.Error(t, err)
}
