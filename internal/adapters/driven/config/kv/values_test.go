package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValues_Getters(t *testing.T) {
	v := Values{
		"s":     "hello",
		"i":     int64(30),
		"n":     7,
		"f":     2.0,
		"b":     true,
		"list":  []any{"Papel", 3, "P/VP"},
		"slice": []string{"a"},
	}

	assert.Equal(t, "hello", v.String("s"))
	assert.Equal(t, "", v.String("i"))
	assert.Equal(t, "", v.String("missing"))

	assert.Equal(t, 30, v.Int("i"))
	assert.Equal(t, 7, v.Int("n"))
	assert.Equal(t, 2, v.Int("f"))
	assert.Equal(t, 0, v.Int("s"))

	assert.True(t, v.Bool("b"))
	assert.False(t, v.Bool("s"))
	assert.False(t, v.Bool("missing"))

	assert.Equal(t, []string{"Papel", "P/VP"}, v.Strings("list"))
	assert.Equal(t, []string{"a"}, v.Strings("slice"))
	assert.Nil(t, v.Strings("s"))
}

func TestFlatten(t *testing.T) {
	nested := map[string]any{
		"output": map[string]any{
			"dir":  "docs",
			"xlsx": true,
		},
		"columns": map[string]any{
			"curated": []any{"Papel"},
		},
		"top": 1,
	}

	flat := Flatten(nested, "")

	assert.Equal(t, Values{
		"output.dir":      "docs",
		"output.xlsx":     true,
		"columns.curated": []any{"Papel"},
		"top":             1,
	}, flat)
}

func TestNest_RoundTrip(t *testing.T) {
	flat := Values{
		"source.url":             "http://x",
		"source.timeout_seconds": 10,
		"output.site":            false,
		"top":                    "v",
	}

	assert.Equal(t, flat, Flatten(Nest(flat), ""))
}

func TestNest_TableWinsOverScalar(t *testing.T) {
	nested := Nest(Values{
		"output":     "scalar",
		"output.dir": "docs",
	})

	assert.Equal(t, map[string]any{"output": map[string]any{"dir": "docs"}}, nested)
}
