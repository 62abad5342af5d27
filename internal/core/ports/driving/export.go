package driving

import (
	"context"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
)

// ExportService runs the fetch, decode, extract and normalise pipeline.
type ExportService interface {
	// Export runs the pipeline and publishes every configured output.
	// Nothing is published when any step fails.
	Export(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error)

	// Preview runs the pipeline without publishing.
	Preview(ctx context.Context, req domain.ExportRequest) (*domain.ExportResult, error)
}
