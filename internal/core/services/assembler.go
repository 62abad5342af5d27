package services

import "github.com/custodia-labs/fundamentus-cli/internal/core/domain"

// Assemble builds the full and curated projections over rows.
//
// The full projection shares header and rows. The curated projection
// lists the requested columns in order; a name missing from the header
// yields an empty value in every row. When the header repeats a name,
// the last occurrence wins.
func Assemble(header []string, rows [][]string, curated []string) (full, cur domain.Projection) {
	full = domain.Projection{Columns: header, Rows: rows}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	positions := make([]int, len(curated))
	for i, name := range curated {
		pos, ok := index[name]
		if !ok {
			pos = -1
		}
		positions[i] = pos
	}

	curatedRows := make([][]string, len(rows))
	for r, row := range rows {
		out := make([]string, len(positions))
		for i, pos := range positions {
			if pos >= 0 && pos < len(row) {
				out[i] = row[pos]
			}
		}
		curatedRows[r] = out
	}

	cur = domain.Projection{
		Columns: append([]string(nil), curated...),
		Rows:    curatedRows,
	}
	return full, cur
}

// NormaliseRows aligns every row with header and normalises each cell
// by its column type. Missing cells become empty, surplus cells are dropped.
func NormaliseRows(header []string, rows [][]string, columns domain.ColumnSet, normalise func(string, domain.ColumnType) string) [][]string {
	types := columns.Types(header)
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		normalised := make([]string, len(header))
		for i, t := range types {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			normalised[i] = normalise(cell, t)
		}
		out = append(out, normalised)
	}
	return out
}
