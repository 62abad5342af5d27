package driven

import "github.com/custodia-labs/fundamentus-cli/internal/core/domain"

// TableExtractor locates the screener table in decoded markup.
type TableExtractor interface {
	// Extract returns the header, the non-empty body rows and the
	// standalone table fragment of the first table in document order.
	// Returns domain.ErrTableNotFound when the markup has no table.
	Extract(text string) (*domain.Table, error)
}

// CellNormaliser converts raw cells into their canonical form.
type CellNormaliser interface {
	// Normalise returns the canonical value of cell for a column of type t.
	// Values that cannot be interpreted become the empty string.
	Normalise(cell string, t domain.ColumnType) string
}
