// Package config describes where a repository's on-disk pieces live:
// the git directory, the working tree, and the object database.
//
// The teacher's version of this package resolved GIT_DIR, GIT_WORK_TREE,
// GIT_OBJECT_DIRECTORY, GIT_CONFIG and friends against the process
// environment, aggregating several ini files in precedence order. That
// machinery is environment interrogation, not object-store semantics, so
// it's been trimmed to the plain paths every other package needs.
package config

import (
	"path/filepath"

	"github.com/arjunvc/gitcore/internal/gitpath"
	"github.com/arjunvc/gitcore/internal/pathutil"
	"github.com/spf13/afero"
)

// Config holds the resolved locations of a repository's on-disk state.
type Config struct {
	// GitDirPath is the absolute path to the git directory (holds HEAD,
	// refs/, objects/, index).
	GitDirPath string
	// WorkTreePath is the absolute path to the working tree root. Empty
	// for a bare repository.
	WorkTreePath string
	// ObjectDirPath is the absolute path to the loose-object directory.
	ObjectDirPath string
	// FS is the filesystem the repository is read through and written to.
	FS afero.Fs
}

// New builds the Config for a repository rooted at workTreePath, using
// the conventional ".git" layout beneath it.
func New(fs afero.Fs, workTreePath string) Config {
	gitDir := filepath.Join(workTreePath, gitpath.DotGitPath)
	return Config{
		GitDirPath:    gitDir,
		WorkTreePath:  workTreePath,
		ObjectDirPath: filepath.Join(gitDir, gitpath.ObjectsPath),
		FS:            fs,
	}
}

// NewBare builds the Config for a bare repository: the git directory
// and working tree coincide at gitDirPath, and WorkTreePath is left
// empty to mark the repository as bare.
func NewBare(fs afero.Fs, gitDirPath string) Config {
	return Config{
		GitDirPath:    gitDirPath,
		ObjectDirPath: filepath.Join(gitDirPath, gitpath.ObjectsPath),
		FS:            fs,
	}
}

// Discover builds the Config for the repository containing startPath,
// walking up the directory tree until a ".git" directory (or a bare
// repository's HEAD file) is found.
func Discover(fs afero.Fs, startPath string) (Config, error) {
	gitDir, err := pathutil.GitDirFromPath(fs, startPath)
	if err != nil {
		return Config{}, err
	}
	if filepath.Base(gitDir) == gitpath.DotGitPath {
		return New(fs, filepath.Dir(gitDir)), nil
	}
	return NewBare(fs, gitDir), nil
}

// IsBare reports whether the repository described by c has no working
// tree.
func (c Config) IsBare() bool {
	return c.WorkTreePath == ""
}
