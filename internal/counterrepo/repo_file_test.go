package counterrepo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	repo := NewRepoFile(filepath.Join(t.TempDir(), "next_account_id.txt"))

	require.Equal(t, DefaultNextAccountID, repo.Load(context.Background()))
}

func TestLoadDefaultsWhenUnparsable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "next_account_id.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a number"), 0o644))

	repo := NewRepoFile(path)

	require.Equal(t, DefaultNextAccountID, repo.Load(context.Background()))
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counter", "next_account_id.txt")
	repo := NewRepoFile(path)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, 105))
	require.Equal(t, 105, repo.Load(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "105", string(data))
}

func TestLoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "next_account_id.txt")
	require.NoError(t, os.WriteFile(path, []byte("101\n"), 0o644))

	repo := NewRepoFile(path)

	require.Equal(t, 101, repo.Load(context.Background()))
}
