package wtwalk_test

import (
	"testing"

	"github.com/arjunvc/gitcore/internal/wtwalk"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkExpandsDirectories(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/repo/dir/b.txt", []byte("b"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/repo/.git/HEAD", []byte("ref: refs/heads/main\n"), 0o644))

	stats, err := wtwalk.Walk(fs, "/repo", []string{"."})
	require.NoError(t, err)

	var paths []string
	for _, s := range stats {
		paths = append(paths, s.Path)
	}
	assert.Equal(t, []string{"a.txt", "dir/b.txt"}, paths)
}

func TestWalkSinglePath(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/a.txt", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/repo/b.txt", []byte("b"), 0o644))

	stats, err := wtwalk.Walk(fs, "/repo", []string{"a.txt"})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "a.txt", stats[0].Path)
}
