package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
)

func TestRenderer_Name(t *testing.T) {
	assert.Equal(t, "csv", New("a.csv", "b.csv").Name())
}

func TestEncode(t *testing.T) {
	data, err := Encode(domain.Projection{
		Columns: []string{"Papel", "EV/EBIT", "P/VP", "Div.Yield", "Liq.2meses"},
		Rows:    [][]string{{"ABCD4", "8,5", "1,2", "0,0787", "1000000"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Papel;EV/EBIT;P/VP;Div.Yield;Liq.2meses\nABCD4;8,5;1,2;0,0787;1000000", string(data))
}

func TestEncode_HeaderOnly(t *testing.T) {
	data, err := Encode(domain.Projection{Columns: []string{"Papel", "P/L"}})
	require.NoError(t, err)
	assert.Equal(t, "Papel;P/L", string(data))
}

func TestEncode_EmptyCells(t *testing.T) {
	data, err := Encode(domain.Projection{
		Columns: []string{"A", "B", "C"},
		Rows:    [][]string{{"x", "", ""}, {"", "", "z"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "A;B;C\nx;;\n;;z", string(data))
}

func TestEncode_QuotesDelimiter(t *testing.T) {
	data, err := Encode(domain.Projection{
		Columns: []string{"Nome"},
		Rows:    [][]string{{"a;b"}, {`diz "oi"`}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Nome\n\"a;b\"\n\"diz \"\"oi\"\"\"", string(data))
}

func TestRender(t *testing.T) {
	result := &domain.ExportResult{
		Full: domain.Projection{
			Columns: []string{"Papel", "ROE"},
			Rows:    [][]string{{"ABCD4", "12,5%"}},
		},
		Curated: domain.Projection{
			Columns: []string{"Papel"},
			Rows:    [][]string{{"ABCD4"}},
		},
	}

	artifacts, err := New("resultado.csv", "resultado-clean.csv").Render(result)
	require.NoError(t, err)
	require.Len(t, artifacts, 2)

	assert.Equal(t, "resultado.csv", artifacts[0].Name)
	assert.Equal(t, "Papel;ROE\nABCD4;12,5%", string(artifacts[0].Data))
	assert.Equal(t, "resultado-clean.csv", artifacts[1].Name)
	assert.Equal(t, "Papel\nABCD4", string(artifacts[1].Data))
}

func TestRender_SkipsUnnamed(t *testing.T) {
	artifacts, err := New("", "clean.csv").Render(&domain.ExportResult{})
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, "clean.csv", artifacts[0].Name)
}

func TestRender_NilResult(t *testing.T) {
	_, err := New("a", "b").Render(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
