package driven

import (
	"context"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
)

// Renderer serialises an export into output artifacts.
// Each output format (CSV, HTML, XLSX) implements this interface.
type Renderer interface {
	// Name identifies the renderer in logs and errors.
	Name() string

	// Render returns the artifacts for result. It must not write anywhere.
	Render(result *domain.ExportResult) ([]domain.Artifact, error)
}

// OutputStore persists artifacts.
type OutputStore interface {
	// Write stores every artifact under dir and returns the written paths.
	// Either all artifacts are written or none are left behind.
	Write(ctx context.Context, dir string, artifacts []domain.Artifact) ([]string, error)
}
