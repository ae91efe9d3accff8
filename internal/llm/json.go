package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/seo-content-engine/internal/schemas"
)

// jsonRetryDelay is the pause between re-prompts after a malformed response.
var jsonRetryDelay = time.Second

// GenerateTypedJSON generates structured output and decodes it into out.
// The raw response is cleaned of markdown wrappers, validated against the
// named embedded JSON Schema, then unmarshalled. Malformed or schema-invalid
// responses trigger a re-prompt, up to maxRetries attempts; the last error is
// returned once retries are exhausted so the caller can fall back explicitly.
func GenerateTypedJSON(ctx context.Context, c Client, prompt string, tier ModelTier, schemaName string, out any, maxRetries int) error {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	schema, err := schemas.Get(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(jsonRetryDelay):
			}
		}

		raw, err := c.GenerateJSON(ctx, prompt, tier)
		if err != nil {
			// Transport/auth failures are not fixed by re-prompting.
			return fmt.Errorf("failed to generate JSON: %w", err)
		}

		cleaned := CleanJSONBlock(raw)
		if err := schemas.ValidateJSONString(schema, cleaned); err != nil {
			lastErr = err
			fmt.Printf("   Schema validation failed (attempt %d/%d): %v\n", attempt+1, maxRetries, err)
			continue
		}

		if err := json.Unmarshal([]byte(cleaned), out); err != nil {
			lastErr = err
			fmt.Printf("   JSON parse error (attempt %d/%d): %v\n", attempt+1, maxRetries, err)
			continue
		}

		return nil
	}

	return fmt.Errorf("failed to produce valid JSON after %d attempts: %w", maxRetries, lastErr)
}
