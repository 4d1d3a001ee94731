package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommitCatFileWorkflow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := runCmd(t, dir, "init")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hello\n"), 0o644))
	_, err = runCmd(t, dir, "add", "hello.txt")
	require.NoError(t, err)

	lsOut, err := runCmd(t, dir, "ls-files")
	require.NoError(t, err)
	assert.Equal(t, "hello.txt\n", lsOut)

	commitOut, err := runCmd(t, dir, "commit", "-m", "first commit")
	require.NoError(t, err)
	commitID := strings.TrimSpace(commitOut)
	assert.Len(t, commitID, 40)

	prettyOut, err := runCmd(t, dir, "cat-file", "-p", commitID)
	require.NoError(t, err)
	assert.Contains(t, prettyOut, "first commit")
	assert.Contains(t, prettyOut, "author Test Author")

	typeOut, err := runCmd(t, dir, "cat-file", "-t", commitID)
	require.NoError(t, err)
	assert.Equal(t, "commit\n", typeOut)

	_, err = runCmd(t, dir, "cat-file", "-e", commitID)
	require.NoError(t, err)

	_, err = runCmd(t, dir, "cat-file", "-e", "ce013625030ba8dba906f756967f9e9ca394464")
	assert.Error(t, err)
}

func TestBranchAndSwitchWorkflow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := runCmd(t, dir, "init")
	require.NoError(t, err)
	_, err = runCmd(t, dir, "commit", "-m", "root")
	require.NoError(t, err)

	_, err = runCmd(t, dir, "branch", "-c", "feature")
	require.NoError(t, err)

	branchOut, err := runCmd(t, dir, "branch")
	require.NoError(t, err)
	assert.Contains(t, branchOut, "feature")
	assert.Contains(t, branchOut, "* main")

	_, err = runCmd(t, dir, "switch", "feature")
	require.NoError(t, err)

	branchOut, err = runCmd(t, dir, "branch")
	require.NoError(t, err)
	assert.Contains(t, branchOut, "* feature")
}

func TestHashObjectAndUpdateIndexWorkflow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := runCmd(t, dir, "init")
	require.NoError(t, err)

	blobPath := filepath.Join(dir, "blob.txt")
	require.NoError(t, os.WriteFile(blobPath, []byte("x"), 0o644))

	hashOut, err := runCmd(t, dir, "hash-object", "-w", blobPath)
	require.NoError(t, err)
	oid := strings.TrimSpace(hashOut)

	_, err = runCmd(t, dir, "update-index", "--cacheinfo", "100644,"+oid+",staged.txt")
	require.NoError(t, err)

	lsOut, err := runCmd(t, dir, "ls-files", "-s")
	require.NoError(t, err)
	assert.Contains(t, lsOut, "staged.txt")
	assert.Contains(t, lsOut, oid)
}

func TestUpdateIndexRejectsUntrackedWithoutAdd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := runCmd(t, dir, "init")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "untracked.txt"), []byte("x"), 0o644))

	_, err = runCmd(t, dir, "update-index", "untracked.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the index")

	_, err = runCmd(t, dir, "update-index", "--add", "untracked.txt")
	require.NoError(t, err)

	lsOut, err := runCmd(t, dir, "ls-files")
	require.NoError(t, err)
	assert.Contains(t, lsOut, "untracked.txt")
}

func TestUpdateIndexRemoveIsUnsupported(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := runCmd(t, dir, "init")
	require.NoError(t, err)

	_, err = runCmd(t, dir, "update-index", "--remove", "whatever.txt")
	require.Error(t, err)
}

func TestWriteTreeAndCommitTreeWorkflow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := runCmd(t, dir, "init")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	_, err = runCmd(t, dir, "add", "a.txt")
	require.NoError(t, err)

	treeOut, err := runCmd(t, dir, "write-tree")
	require.NoError(t, err)
	treeID := strings.TrimSpace(treeOut)

	commitOut, err := runCmd(t, dir, "commit-tree", treeID, "-m", "root commit")
	require.NoError(t, err)
	commitID := strings.TrimSpace(commitOut)

	_, err = runCmd(t, dir, "update-ref", "HEAD", commitID)
	require.NoError(t, err)

	catOut, err := runCmd(t, dir, "cat-file", "-p", commitID)
	require.NoError(t, err)
	assert.Contains(t, catOut, "root commit")
}
