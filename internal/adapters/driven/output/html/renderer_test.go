package html

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
)

func sampleResult() *domain.ExportResult {
	return &domain.ExportResult{
		RunID:     "run-1",
		FetchedAt: time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC),
		Full: domain.Projection{
			Columns: []string{"Papel"},
			Rows:    [][]string{{"ABCD4"}, {"WXYZ3"}},
		},
		Fragment: `<meta charset="utf-8"><table><tr><td>ABCD4</td></tr></table>`,
	}
}

func TestRenderer_Name(t *testing.T) {
	assert.Equal(t, "html", New(Options{}).Name())
}

func TestRender_FragmentOnly(t *testing.T) {
	artifacts, err := New(Options{Fragment: "resultado.html"}).Render(sampleResult())
	require.NoError(t, err)
	require.Len(t, artifacts, 1)

	assert.Equal(t, "resultado.html", artifacts[0].Name)
	assert.Equal(t, `<meta charset="utf-8"><table><tr><td>ABCD4</td></tr></table>`, string(artifacts[0].Data))
}

func TestRender_Site(t *testing.T) {
	r := New(Options{
		Fragment: "resultado.html",
		Site:     true,
		Links:    []string{"resultado.csv", "", "resultado-clean.csv"},
	})

	artifacts, err := r.Render(sampleResult())
	require.NoError(t, err)
	require.Len(t, artifacts, 3)

	assert.Equal(t, IndexName, artifacts[1].Name)
	index := string(artifacts[1].Data)
	assert.Contains(t, index, `<meta charset="utf-8">`)
	assert.Contains(t, index, `<a href="resultado.html">resultado.html</a>`)
	assert.Contains(t, index, `<a href="resultado.csv">resultado.csv</a>`)
	assert.Contains(t, index, `<a href="resultado-clean.csv">resultado-clean.csv</a>`)
	assert.Contains(t, index, "2025-03-14T18:30:00Z")
	assert.Contains(t, index, "(2 papéis)")
	assert.Contains(t, index, "run run-1")
	assert.NotContains(t, index, `href=""`)

	assert.Equal(t, NoJekyllName, artifacts[2].Name)
	assert.Empty(t, artifacts[2].Data)
}

func TestRender_EscapesLinks(t *testing.T) {
	artifacts, err := New(Options{Site: true, Links: []string{"a<b>.csv"}}).Render(sampleResult())
	require.NoError(t, err)
	require.Len(t, artifacts, 2)

	assert.NotContains(t, string(artifacts[0].Data), "a<b>.csv")
}

func TestRender_NothingConfigured(t *testing.T) {
	artifacts, err := New(Options{}).Render(sampleResult())
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestRender_NilResult(t *testing.T) {
	_, err := New(Options{Site: true}).Render(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
