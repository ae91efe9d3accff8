package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
)

// retryBaseDelay controls the base duration for exponential backoff on
// rate-limit failures. The delay doubles each attempt: 1s, 2s, 4s.
// Tests override this to avoid real sleeps.
var retryBaseDelay = time.Second

// defaultMaxRetries bounds generation attempts.
const defaultMaxRetries = 3

// IsRateLimit reports whether err looks like a rate-limit-class failure
// worth backing off and retrying.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 429 {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource exhausted") ||
		strings.Contains(msg, "quota")
}

// GenerateWithRetry calls GenerateContent, retrying rate-limit-class failures
// with exponential backoff. Other failures return immediately; step-level
// handling is the caller's job.
func GenerateWithRetry(ctx context.Context, c Client, prompt string, tier ModelTier, opts *GenerateOptions, maxRetries int) (string, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		text, err := c.GenerateContent(ctx, prompt, tier, opts)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !IsRateLimit(err) || attempt == maxRetries-1 {
			return "", err
		}

		backoff := retryBaseDelay << attempt
		fmt.Printf("   Rate limited, waiting %v before retry (%d/%d)...\n", backoff, attempt+1, maxRetries)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
	}

	return "", fmt.Errorf("max retries exceeded: %w", lastErr)
}
