package domain

// Table is the first data table of a decoded page.
type Table struct {
	// Header holds the column names in source order.
	// Names are not guaranteed unique.
	Header []string

	// Rows holds the raw body cells, positionally aligned with Header.
	// Rows without cells are never included.
	Rows [][]string

	// Markup is a standalone UTF-8 HTML fragment holding the table.
	Markup string
}

// Projection is an ordered column selection over normalised rows.
type Projection struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of rows.
func (p Projection) Len() int {
	return len(p.Rows)
}

// Column returns the values of the named column.
// The last column with that name wins; nil is returned when absent.
func (p Projection) Column(name string) []string {
	idx := -1
	for i, c := range p.Columns {
		if c == name {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}
	values := make([]string, len(p.Rows))
	for i, row := range p.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values
}
