// Package domain defines the core entities of the screener export.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: Opaque bytes returned by a fetcher
//   - Table: Header, body rows and fragment extracted from a page
//   - ColumnSet: Which columns are numeric and which form the curated view
//   - Projection: An ordered column selection over normalised rows
//   - Settings: Resolved application configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
