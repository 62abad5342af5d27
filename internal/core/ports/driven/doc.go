// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Fetcher: Retrieves the raw screener page
//   - FetcherFactory: Selects a fetcher for a request (HTTP or saved file)
//   - Decoder: Turns raw bytes into UTF-8 markup
//   - TableExtractor: Locates the first table and yields its rows
//   - CellNormaliser: Converts a raw cell into its canonical form
//   - Renderer: Serialises an export into output artifacts
//   - OutputStore: Writes artifacts all-or-nothing
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
