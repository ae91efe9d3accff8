// Package serp fetches search engine result pages for a query.
// The top results tell us what content currently ranks for a topic,
// which drives the competitive analysis step of the pipeline.
package serp

import (
	"context"
	"fmt"

	"github.com/jonathan/seo-content-engine/internal/types"
)

// DefaultResultCount is how many organic results we analyze per query.
const DefaultResultCount = 10

// Source retrieves ranked search results for a query.
type Source interface {
	// Search returns up to numResults organic results for the query,
	// ordered by rank (1 = top position).
	Search(ctx context.Context, query string, numResults int) ([]types.SERPResult, error)
}

// Error represents a failure while fetching search results.
type Error struct {
	Query   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("serp error for %q: %s: %v", e.Query, e.Message, e.Cause)
	}
	return fmt.Sprintf("serp error for %q: %s", e.Query, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
