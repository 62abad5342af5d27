// Package html extracts the screener table from decoded HTML.
// It selects the first table in document order, turns line breaks into
// newlines, tidies cell text and re-renders the table as a standalone
// UTF-8 fragment for presentation.
package html
