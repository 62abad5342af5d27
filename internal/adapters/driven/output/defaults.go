package output

import (
	"github.com/custodia-labs/fundamentus-cli/internal/adapters/driven/output/csv"
	"github.com/custodia-labs/fundamentus-cli/internal/adapters/driven/output/html"
	"github.com/custodia-labs/fundamentus-cli/internal/adapters/driven/output/xlsx"
	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
)

// DefaultOrder is the publication order of the built-in renderers.
// The landing page comes last so it can link every other file.
var DefaultOrder = []string{"csv", "xlsx", "html"}

// RegisterDefaults registers the built-in renderers.
func RegisterDefaults(r *Registry) {
	r.Register("csv", buildCSV)
	r.Register("xlsx", buildXLSX)
	r.Register("html", buildHTML)
}

// Default builds the built-in pipeline for settings.
func Default(settings domain.Settings) *Pipeline {
	r := NewRegistry()
	RegisterDefaults(r)
	// DefaultOrder only names registered renderers.
	p, _ := r.Pipeline(settings, DefaultOrder...)
	return p
}

func buildCSV(settings domain.Settings) driven.Renderer {
	out := settings.Output
	if out.FullCSV == "" && out.CuratedCSV == "" {
		return nil
	}
	return csv.New(out.FullCSV, out.CuratedCSV)
}

func buildXLSX(settings domain.Settings) driven.Renderer {
	if !settings.Output.XLSX || settings.Output.XLSXFile == "" {
		return nil
	}
	return xlsx.New(settings.Output.XLSXFile, settings.Columns)
}

func buildHTML(settings domain.Settings) driven.Renderer {
	out := settings.Output
	if out.HTML == "" && !out.Site {
		return nil
	}
	links := []string{out.FullCSV, out.CuratedCSV}
	if out.XLSX {
		links = append(links, out.XLSXFile)
	}
	return html.New(html.Options{
		Fragment: out.HTML,
		Site:     out.Site,
		Links:    links,
	})
}
