package output

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
)

// BuilderFunc creates a renderer from settings.
// It returns nil when the settings disable the renderer.
type BuilderFunc func(settings domain.Settings) driven.Renderer

// Registry maps renderer names to their builders.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new renderer registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a renderer builder. Name should match the renderer's Name().
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Has returns true if a renderer with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered renderer names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pipeline builds the named renderers in order, skipping disabled ones.
func (r *Registry) Pipeline(settings domain.Settings, names ...string) (*Pipeline, error) {
	p := NewPipeline()
	for _, name := range names {
		builder, ok := r.builders[name]
		if !ok {
			return nil, fmt.Errorf("unknown renderer: %s", name)
		}
		if renderer := builder(settings); renderer != nil {
			p.Add(renderer)
		}
	}
	return p, nil
}
