package types

import "github.com/go-playground/validator/v10"

// GenerateRequest is the payload for submitting a new article generation job.
type GenerateRequest struct {
	// Topic is the subject or primary keyword to write about.
	Topic string `json:"topic" validate:"required,min=3,max=200"`
	// TargetWordCount is the requested article length.
	TargetWordCount int `json:"target_word_count" validate:"required,gte=500,lte=5000"`
	// Language is an ISO 639-1 two-letter code.
	Language string `json:"language" validate:"required,len=2,alpha,lowercase"`
}

// ApplyDefaults fills unset optional fields. Topic stays required.
func (r *GenerateRequest) ApplyDefaults() {
	if r.TargetWordCount == 0 {
		r.TargetWordCount = 1500
	}
	if r.Language == "" {
		r.Language = "en"
	}
}

// Validate checks the request against its constraints. Must pass before a
// job record is ever created.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
