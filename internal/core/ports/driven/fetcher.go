package driven

import (
	"context"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
)

// Fetcher retrieves the raw screener page.
// It is the only blocking step of the pipeline.
type Fetcher interface {
	// Source returns the URI the fetcher reads from.
	Source() string

	// Fetch returns the page bytes and the declared charset, if any.
	// Network and HTTP status failures are returned as *domain.FetchError.
	Fetch(ctx context.Context) (*domain.RawDocument, error)
}

// FetcherFactory creates a fetcher for a request.
type FetcherFactory interface {
	// Create returns a file fetcher when req.InputPath is set,
	// otherwise the configured HTTP fetcher.
	Create(req domain.ExportRequest) (Fetcher, error)
}
