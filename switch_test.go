package gitcore_test

import (
	"testing"

	"github.com/arjunvc/gitcore"
	"github.com/arjunvc/gitcore/ginternals"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwitchRejectsMissingBranch(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	r, err := gitcore.InitRepository(fs, "/repo")
	require.NoError(t, err)

	err = r.Switch("nope")
	assert.ErrorIs(t, err, gitcore.ErrBranchNotExist)
}

func TestSwitchCreate(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	r, err := gitcore.InitRepository(fs, "/repo")
	require.NoError(t, err)

	commit, err := r.Commit(gitcore.CommitOptions{Message: "m", AuthorName: "A", AuthorEmail: "a@example.com"})
	require.NoError(t, err)

	require.NoError(t, r.SwitchCreate("feature"))

	branches, err := r.ListBranches()
	require.NoError(t, err)
	var feature gitcore.BranchInfo
	for _, b := range branches {
		if b.Name == "feature" {
			feature = b
		}
	}
	assert.True(t, feature.Current)

	o, err := r.CatFile(commit)
	require.NoError(t, err)
	assert.NotNil(t, o)
}

func TestSwitchCreateRejectsExisting(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	r, err := gitcore.InitRepository(fs, "/repo")
	require.NoError(t, err)
	_, err = r.Commit(gitcore.CommitOptions{Message: "m", AuthorName: "A", AuthorEmail: "a@example.com"})
	require.NoError(t, err)

	require.NoError(t, r.SwitchCreate("feature"))
	err = r.SwitchCreate("feature")
	assert.ErrorIs(t, err, gitcore.ErrBranchExists)
}

func TestSwitchCreateRejectsInvalidName(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	r, err := gitcore.InitRepository(fs, "/repo")
	require.NoError(t, err)

	err = r.SwitchCreate(".dotted")
	assert.ErrorIs(t, err, ginternals.ErrRefNameInvalid)
}

func TestSwitchOrphanRejectsInvalidName(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	r, err := gitcore.InitRepository(fs, "/repo")
	require.NoError(t, err)

	err = r.SwitchOrphan("bad..name")
	assert.ErrorIs(t, err, ginternals.ErrRefNameInvalid)
}

func TestSwitchOrphan(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	r, err := gitcore.InitRepository(fs, "/repo")
	require.NoError(t, err)

	require.NoError(t, r.SwitchOrphan("clean"))

	branches, err := r.ListBranches()
	require.NoError(t, err)
	assert.Empty(t, branches, "orphan branch has no ref file until its first commit")
}

func TestSwitchDetach(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	r, err := gitcore.InitRepository(fs, "/repo")
	require.NoError(t, err)

	commit, err := r.Commit(gitcore.CommitOptions{Message: "m", AuthorName: "A", AuthorEmail: "a@example.com"})
	require.NoError(t, err)

	require.NoError(t, r.SwitchDetach(commit))

	_, err = r.Commit(gitcore.CommitOptions{Message: "x", AuthorName: "A", AuthorEmail: "a@example.com"})
	assert.Error(t, err, "committing on detached HEAD is rejected; see commit_test.go for the sentinel check")
}
