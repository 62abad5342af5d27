// Package csv renders projections as semicolon-delimited files for
// spreadsheets configured for the pt-BR locale.
package csv

import (
	"bytes"
	"encoding/csv"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Delimiter separates fields; "," is the pt-BR decimal separator.
const Delimiter = ';'

// Renderer writes the full and curated projections.
type Renderer struct {
	fullName    string
	curatedName string
}

// New creates a CSV renderer. An empty name skips that projection.
func New(fullName, curatedName string) *Renderer {
	return &Renderer{
		fullName:    fullName,
		curatedName: curatedName,
	}
}

// Name identifies the renderer.
func (r *Renderer) Name() string {
	return "csv"
}

// Render returns one CSV artifact per configured projection.
func (r *Renderer) Render(result *domain.ExportResult) ([]domain.Artifact, error) {
	if result == nil {
		return nil, domain.ErrInvalidInput
	}

	var artifacts []domain.Artifact
	for _, out := range []struct {
		name string
		p    domain.Projection
	}{
		{r.fullName, result.Full},
		{r.curatedName, result.Curated},
	} {
		if out.name == "" {
			continue
		}
		data, err := Encode(out.p)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, domain.Artifact{Name: out.name, Data: data})
	}
	return artifacts, nil
}

// Encode renders the header and rows without a trailing newline.
func Encode(p domain.Projection) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = Delimiter

	if err := w.Write(p.Columns); err != nil {
		return nil, err
	}
	for _, row := range p.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
