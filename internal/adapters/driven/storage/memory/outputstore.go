package memory

import (
	"context"
	"path"
	"sync"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
)

// Ensure OutputStore implements the interface.
var _ driven.OutputStore = (*OutputStore)(nil)

// OutputStore keeps published artifacts in memory, keyed by path.
type OutputStore struct {
	mu    sync.RWMutex
	files map[string][]byte
	err   error
}

// NewOutputStore creates a new in-memory output store.
func NewOutputStore() *OutputStore {
	return &OutputStore{
		files: make(map[string][]byte),
	}
}

// FailWith makes every following Write return err without storing anything.
func (s *OutputStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Write stores every artifact under dir.
func (s *OutputStore) Write(ctx context.Context, dir string, artifacts []domain.Artifact) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		p := path.Join(dir, a.Name)
		s.files[p] = append([]byte(nil), a.Data...)
		paths = append(paths, p)
	}
	return paths, nil
}

// File returns the content stored at p.
func (s *OutputStore) File(p string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[p]
	return data, ok
}

// Len returns the number of stored files.
func (s *OutputStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}
