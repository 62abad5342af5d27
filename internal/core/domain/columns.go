package domain

// ColumnType is the semantic type of a screener column.
type ColumnType int

const (
	// ColumnText passes the tidied value through unchanged.
	ColumnText ColumnType = iota

	// ColumnNumeric converts pt-BR numbers, percentages and currency
	// into a canonical decimal string.
	ColumnNumeric
)

// String returns the string representation.
func (t ColumnType) String() string {
	switch t {
	case ColumnNumeric:
		return "numeric"
	default:
		return "text"
	}
}

// Fundamentus column names.
const (
	ColumnTicker     = "Papel"
	ColumnPrice      = "Cotação"
	ColumnPE         = "P/L"
	ColumnPB         = "P/VP"
	ColumnEVEBIT     = "EV/EBIT"
	ColumnDivYield   = "Div.Yield"
	ColumnLiquidity2 = "Liq.2meses"
)

// ColumnSet selects column semantics by name.
// Names are source-specific lookup keys, compared exactly.
type ColumnSet struct {
	// Numeric lists the columns normalised as numbers.
	Numeric []string

	// Curated lists, in output order, the columns of the curated projection.
	Curated []string
}

// DefaultColumnSet returns the columns used by the spreadsheet import.
func DefaultColumnSet() ColumnSet {
	return ColumnSet{
		Numeric: []string{
			ColumnEVEBIT,
			ColumnPB,
			ColumnDivYield,
			ColumnLiquidity2,
			ColumnPE,
			ColumnPrice,
		},
		Curated: []string{
			ColumnTicker,
			ColumnEVEBIT,
			ColumnPB,
			ColumnDivYield,
			ColumnLiquidity2,
		},
	}
}

// TypeOf returns the semantic type of a column.
// Columns outside the numeric set are text.
func (c ColumnSet) TypeOf(name string) ColumnType {
	for _, n := range c.Numeric {
		if n == name {
			return ColumnNumeric
		}
	}
	return ColumnText
}

// Types returns the semantic type of every header column.
func (c ColumnSet) Types(header []string) []ColumnType {
	types := make([]ColumnType, len(header))
	for i, name := range header {
		types[i] = c.TypeOf(name)
	}
	return types
}
