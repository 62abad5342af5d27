package fundamentus

import (
	"fmt"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.FetcherFactory = (*Factory)(nil)

// Factory picks the fetcher for a request.
type Factory struct {
	settings domain.SourceSettings
}

// NewFactory creates a fetcher factory for the configured source.
func NewFactory(settings domain.SourceSettings) *Factory {
	return &Factory{settings: settings}
}

// Create returns a FileFetcher when req.InputPath is set and an HTTP
// Client otherwise.
func (f *Factory) Create(req domain.ExportRequest) (driven.Fetcher, error) {
	if req.InputPath != "" {
		return NewFileFetcher(req.InputPath, req.Charset), nil
	}
	if req.Charset != "" {
		return nil, fmt.Errorf("%w: --charset requires --input", domain.ErrInvalidInput)
	}
	if f.settings.URL == "" {
		return nil, fmt.Errorf("%w: source.url is empty", domain.ErrInvalidInput)
	}
	return NewClient(f.settings), nil
}
