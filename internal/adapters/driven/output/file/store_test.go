package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
)

func TestStore_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")
	store := NewStore()

	paths, err := store.Write(context.Background(), dir, []domain.Artifact{
		{Name: "resultado.csv", Data: []byte("Papel\nABCD4")},
		{Name: ".nojekyll", Data: []byte{}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "resultado.csv"),
		filepath.Join(dir, ".nojekyll"),
	}, paths)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "Papel\nABCD4", string(data))

	info, err := os.Stat(paths[1])
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestStore_Write_Overwrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "resultado.csv")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))

	_, err := NewStore().Write(context.Background(), dir, []domain.Artifact{
		{Name: "resultado.csv", Data: []byte("new")},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestStore_Write_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()

	_, err := NewStore().Write(context.Background(), dir, []domain.Artifact{
		{Name: "a.csv", Data: []byte("a")},
		{Name: "b.csv", Data: []byte("b")},
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"a.csv", "b.csv"}, names)
}

func TestStore_Write_InvalidName(t *testing.T) {
	dir := t.TempDir()

	tests := []string{"", ".", "..", "../escape.csv", "sub/file.csv", `sub\file.csv`}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewStore().Write(context.Background(), dir, []domain.Artifact{
				{Name: "ok.csv", Data: []byte("x")},
				{Name: name, Data: []byte("x")},
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.NoFileExists(t, filepath.Join(dir, "ok.csv"))
		})
	}
}

func TestStore_Write_EmptyDir(t *testing.T) {
	_, err := NewStore().Write(context.Background(), "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_Write_DirIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "docs")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := NewStore().Write(context.Background(), blocker, []domain.Artifact{
		{Name: "a.csv", Data: []byte("a")},
	})
	assert.Error(t, err)
}

func TestStore_Write_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore().Write(ctx, dir, []domain.Artifact{
		{Name: "a.csv", Data: []byte("a")},
	})
	assert.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
