package domain

import "time"

// RawDocument represents opaque bytes fetched from the source.
// It is the fetcher's output before decoding.
type RawDocument struct {
	// URI is the original location (URL or file path).
	URI string

	// Charset is the declared character set, if any.
	// It comes from the Content-Type header and may be wrong.
	Charset string

	// Content is the raw bytes.
	Content []byte

	// FetchedAt is when the bytes were retrieved.
	FetchedAt time.Time
}
