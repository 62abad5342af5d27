// Package output assembles the renderers that turn an export result into
// published files.
package output

import (
	"fmt"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
)

// Ensure Pipeline implements the interface.
var _ driven.Renderer = (*Pipeline)(nil)

// Pipeline runs renderers in order and concatenates their artifacts.
// Two artifacts with the same name are an error.
type Pipeline struct {
	renderers []driven.Renderer
}

// NewPipeline creates a pipeline with the given renderers.
func NewPipeline(renderers ...driven.Renderer) *Pipeline {
	return &Pipeline{renderers: renderers}
}

// Name identifies the pipeline.
func (p *Pipeline) Name() string {
	return "pipeline"
}

// Render runs every renderer. The first failure aborts the run.
func (p *Pipeline) Render(result *domain.ExportResult) ([]domain.Artifact, error) {
	if result == nil {
		return nil, domain.ErrInvalidInput
	}

	owner := make(map[string]string)
	var artifacts []domain.Artifact

	for _, r := range p.renderers {
		rendered, err := r.Render(result)
		if err != nil {
			return nil, fmt.Errorf("renderer %s: %w", r.Name(), err)
		}
		for _, a := range rendered {
			if prev, dup := owner[a.Name]; dup {
				return nil, fmt.Errorf("%w: %s and %s both write %q",
					domain.ErrInvalidInput, prev, r.Name(), a.Name)
			}
			owner[a.Name] = r.Name()
		}
		artifacts = append(artifacts, rendered...)
	}

	return artifacts, nil
}

// Add appends a renderer to the pipeline.
func (p *Pipeline) Add(r driven.Renderer) {
	p.renderers = append(p.renderers, r)
}

// Len returns the number of renderers in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.renderers)
}

// Names returns the renderer names in order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.renderers))
	for i, r := range p.renderers {
		names[i] = r.Name()
	}
	return names
}
