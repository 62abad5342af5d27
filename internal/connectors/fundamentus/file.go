package fundamentus

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
)

// Ensure FileFetcher implements the interface.
var _ driven.Fetcher = (*FileFetcher)(nil)

// FileFetcher reads a saved copy of the screener page.
type FileFetcher struct {
	path    string
	charset string
}

// NewFileFetcher creates a fetcher for path. charset is the declared
// encoding hint and may be empty.
func NewFileFetcher(path, charset string) *FileFetcher {
	return &FileFetcher{path: path, charset: charset}
}

// Source returns the file path.
func (f *FileFetcher) Source() string {
	return f.path
}

// Fetch reads the file. Missing, unreadable or empty files are
// returned as *domain.FetchError.
func (f *FileFetcher) Fetch(ctx context.Context) (*domain.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.FetchError{URL: f.path, Err: err}
	}

	content, err := os.ReadFile(f.path)
	if err != nil {
		return nil, &domain.FetchError{URL: f.path, Err: err}
	}
	if len(content) == 0 {
		return nil, &domain.FetchError{URL: f.path, Err: errors.New("empty file")}
	}

	fetchedAt := time.Now()
	if info, err := os.Stat(f.path); err == nil {
		fetchedAt = info.ModTime()
	}

	return &domain.RawDocument{
		URI:       f.path,
		Charset:   f.charset,
		Content:   content,
		FetchedAt: fetchedAt,
	}, nil
}
