// Package file publishes rendered artifacts to a directory on disk.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fundamentus-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.OutputStore = (*Store)(nil)

// Store writes every artifact of a run or none of them.
// Files are staged as hidden temporaries and renamed once all succeed.
type Store struct{}

// NewStore creates a new file output store.
func NewStore() *Store {
	return &Store{}
}

type staged struct {
	tmp   string
	final string
}

// Write publishes artifacts into dir and returns their paths.
func (s *Store) Write(ctx context.Context, dir string, artifacts []domain.Artifact) ([]string, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty output directory", domain.ErrInvalidInput)
	}
	for _, a := range artifacts {
		if err := validName(a.Name); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var pending []staged
	cleanup := func() {
		for _, p := range pending {
			_ = os.Remove(p.tmp)
		}
	}

	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			cleanup()
			return nil, err
		}
		tmp, err := stage(dir, a)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("write %s: %w", a.Name, err)
		}
		pending = append(pending, staged{tmp: tmp, final: filepath.Join(dir, a.Name)})
	}

	paths := make([]string, 0, len(pending))
	for i, p := range pending {
		if err := os.Rename(p.tmp, p.final); err != nil {
			for _, rest := range pending[i:] {
				_ = os.Remove(rest.tmp)
			}
			return paths, fmt.Errorf("publish %s: %w", filepath.Base(p.final), err)
		}
		logger.Debug("wrote %s", p.final)
		paths = append(paths, p.final)
	}

	return paths, nil
}

func stage(dir string, a domain.Artifact) (string, error) {
	f, err := os.CreateTemp(dir, ".tmp-*-"+a.Name)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(a.Data); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := os.Chmod(f.Name(), 0o644); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func validName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: artifact name %q", domain.ErrInvalidInput, name)
	}
	return nil
}
