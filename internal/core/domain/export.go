package domain

import "time"

// ExportResult is the outcome of one pipeline run.
type ExportResult struct {
	// RunID uniquely identifies the run.
	RunID string

	// Source is the URI the page was read from.
	Source string

	// FetchedAt is when the page was retrieved.
	FetchedAt time.Time

	// Charset is the encoding label the decoder settled on.
	Charset string

	// Full holds every source column.
	Full Projection

	// Curated holds the configured column subset.
	Curated Projection

	// Fragment is the standalone table HTML.
	Fragment string

	// Files lists the paths written by publishers.
	// Empty for previews.
	Files []string
}

// ExportRequest carries per-invocation overrides.
type ExportRequest struct {
	// InputPath reads a saved page instead of fetching over HTTP.
	InputPath string

	// Charset is the declared charset for InputPath pages.
	Charset string

	// OutputDir overrides the configured output directory.
	OutputDir string
}

// Artifact is one output file produced by a renderer.
type Artifact struct {
	// Name is the file name relative to the output directory.
	Name string

	// Data is the file content.
	Data []byte
}
