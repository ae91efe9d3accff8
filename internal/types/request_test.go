package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequest_ApplyDefaults(t *testing.T) {
	req := GenerateRequest{Topic: "productivity tools"}
	req.ApplyDefaults()

	assert.Equal(t, 1500, req.TargetWordCount)
	assert.Equal(t, "en", req.Language)
}

func TestGenerateRequest_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	req := GenerateRequest{Topic: "productivity tools", TargetWordCount: 800, Language: "de"}
	req.ApplyDefaults()

	assert.Equal(t, 800, req.TargetWordCount)
	assert.Equal(t, "de", req.Language)
}

func TestGenerateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     GenerateRequest
		wantErr bool
	}{
		{"valid", GenerateRequest{Topic: "productivity tools", TargetWordCount: 1500, Language: "en"}, false},
		{"word count too low", GenerateRequest{Topic: "productivity tools", TargetWordCount: 100, Language: "en"}, true},
		{"word count too high", GenerateRequest{Topic: "productivity tools", TargetWordCount: 9000, Language: "en"}, true},
		{"topic too short", GenerateRequest{Topic: "ab", TargetWordCount: 1500, Language: "en"}, true},
		{"topic missing", GenerateRequest{TargetWordCount: 1500, Language: "en"}, true},
		{"language too long", GenerateRequest{Topic: "productivity tools", TargetWordCount: 1500, Language: "eng"}, true},
		{"language uppercase", GenerateRequest{Topic: "productivity tools", TargetWordCount: 1500, Language: "EN"}, true},
		{"boundary low", GenerateRequest{Topic: "productivity tools", TargetWordCount: 500, Language: "en"}, false},
		{"boundary high", GenerateRequest{Topic: "productivity tools", TargetWordCount: 5000, Language: "en"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
