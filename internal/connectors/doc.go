// Package connectors groups the sources the screener page can be read
// from. Each connector implements driven.Fetcher.
package connectors
