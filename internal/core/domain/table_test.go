package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjection_Len(t *testing.T) {
	assert.Equal(t, 0, Projection{}.Len())
	assert.Equal(t, 2, Projection{Rows: [][]string{{"a"}, {"b"}}}.Len())
}

func TestProjection_Column(t *testing.T) {
	p := Projection{
		Columns: []string{"Papel", "P/VP", "Papel"},
		Rows: [][]string{
			{"A", "1", "X"},
			{"B", "2"},
		},
	}

	assert.Equal(t, []string{"1", "2"}, p.Column("P/VP"))
	assert.Equal(t, []string{"X", ""}, p.Column("Papel"))
	assert.Nil(t, p.Column("ROE"))
}
