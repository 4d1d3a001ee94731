// Package pathutil locates the root of a repository on a filesystem.
package pathutil

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/arjunvc/gitcore/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// ErrNoRepo is returned when no repository is found at or above a path.
var ErrNoRepo = errors.New("not a git repository (or any of the parent directories)")

// WorkingTree returns the absolute path to the working tree containing
// the current directory.
func WorkingTree(fs afero.Fs) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", xerrors.Errorf("could not get current working directory: %w", err)
	}
	return WorkingTreeFromPath(fs, wd)
}

// WorkingTreeFromPath walks p and its ancestors looking for a directory
// holding a ".git" subdirectory, returning the first one found.
func WorkingTreeFromPath(fs afero.Fs, p string) (string, error) {
	prev := ""
	for p != prev {
		info, err := fs.Stat(filepath.Join(p, gitpath.DotGitPath))
		if err == nil && info.IsDir() {
			return p, nil
		}

		prev = p
		p = filepath.Dir(p)
	}
	return "", ErrNoRepo
}

// GitDirFromPath walks p and its ancestors looking for either a regular
// repository (a ".git" directory) or a bare one (a non-empty "HEAD"
// file directly inside the candidate directory), returning the git
// directory path.
func GitDirFromPath(fs afero.Fs, p string) (string, error) {
	prev := ""
	for p != prev {
		dotGit := filepath.Join(p, gitpath.DotGitPath)
		if info, err := fs.Stat(dotGit); err == nil && info.IsDir() {
			return dotGit, nil
		}

		head := filepath.Join(p, gitpath.HEADPath)
		if info, err := fs.Stat(head); err == nil && !info.IsDir() && info.Size() > 0 {
			return p, nil
		}

		prev = p
		p = filepath.Dir(p)
	}
	return "", ErrNoRepo
}
