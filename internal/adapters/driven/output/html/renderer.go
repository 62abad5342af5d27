// Package html renders the standalone table fragment and the optional
// landing page served from the output directory.
package html

import (
	"bytes"
	"html/template"
	"time"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Site file names.
const (
	IndexName    = "index.html"
	NoJekyllName = ".nojekyll"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Fundamentus resultado</title>
</head>
<body>
<h1>Fundamentus resultado</h1>
<p>Atualizado em {{.FetchedAt}} ({{.Rows}} papéis).</p>
<ul>
{{- range .Links}}
<li><a href="{{.}}">{{.}}</a></li>
{{- end}}
</ul>
<p><small>run {{.RunID}}</small></p>
</body>
</html>
`))

// Options configures the HTML renderer.
type Options struct {
	// Fragment is the file name of the table fragment. Empty skips it.
	Fragment string

	// Site enables index.html and .nojekyll.
	Site bool

	// Links are the published files listed on the landing page.
	Links []string
}

// Renderer writes the fragment and landing page.
type Renderer struct {
	opts Options
}

// New creates an HTML renderer.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Name identifies the renderer.
func (r *Renderer) Name() string {
	return "html"
}

// Render returns the fragment and, when enabled, the site files.
func (r *Renderer) Render(result *domain.ExportResult) ([]domain.Artifact, error) {
	if result == nil {
		return nil, domain.ErrInvalidInput
	}

	var artifacts []domain.Artifact
	if r.opts.Fragment != "" {
		artifacts = append(artifacts, domain.Artifact{
			Name: r.opts.Fragment,
			Data: []byte(result.Fragment),
		})
	}

	if !r.opts.Site {
		return artifacts, nil
	}

	index, err := r.index(result)
	if err != nil {
		return nil, err
	}
	return append(artifacts,
		domain.Artifact{Name: IndexName, Data: index},
		domain.Artifact{Name: NoJekyllName, Data: []byte{}},
	), nil
}

func (r *Renderer) index(result *domain.ExportResult) ([]byte, error) {
	var links []string
	if r.opts.Fragment != "" {
		links = append(links, r.opts.Fragment)
	}
	for _, l := range r.opts.Links {
		if l != "" {
			links = append(links, l)
		}
	}

	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, struct {
		RunID     string
		FetchedAt string
		Rows      int
		Links     []string
	}{
		RunID:     result.RunID,
		FetchedAt: result.FetchedAt.UTC().Format(time.RFC3339),
		Rows:      result.Full.Len(),
		Links:     links,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
