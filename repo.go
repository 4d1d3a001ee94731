// Package gitcore implements the porcelain and plumbing drivers on top
// of the object store, staging index, and ref/HEAD state machine in
// ginternals and backend.
package gitcore

import (
	"errors"

	"github.com/arjunvc/gitcore/backend"
	"github.com/arjunvc/gitcore/backend/fsbackend"
	"github.com/arjunvc/gitcore/ginternals"
	"github.com/arjunvc/gitcore/ginternals/config"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Errors returned by repository-level operations.
var (
	ErrRepositoryNotExist = errors.New("repository does not exist")
	ErrRepositoryExists   = errors.New("repository already exists")
)

// Repository is a git repository: the backing store plus the config
// describing where it lives on disk.
type Repository struct {
	cfg    config.Config
	dotGit backend.Backend
}

// InitOptions customizes InitRepositoryWithOptions.
type InitOptions struct {
	// IsBare creates a repository with no working tree.
	IsBare bool
	// DefaultBranch is the branch HEAD points at after init. Defaults
	// to ginternals.DefaultBranch.
	DefaultBranch string
}

// InitRepository initializes a new repository rooted at repoPath with
// the default options.
func InitRepository(fs afero.Fs, repoPath string) (*Repository, error) {
	return InitRepositoryWithOptions(fs, repoPath, InitOptions{})
}

// InitRepositoryWithOptions initializes a new repository rooted at
// repoPath. Calling it against an already-initialized repository
// leaves the existing state untouched and returns the repository
// alongside ErrRepositoryExists, so callers can report "already
// initialized" without treating it as a hard failure.
func InitRepositoryWithOptions(fs afero.Fs, repoPath string, opts InitOptions) (*Repository, error) {
	branch := opts.DefaultBranch
	if branch == "" {
		branch = ginternals.DefaultBranch
	}

	var cfg config.Config
	if opts.IsBare {
		cfg = config.NewBare(fs, repoPath)
	} else {
		cfg = config.New(fs, repoPath)
	}

	r := &Repository{
		cfg:    cfg,
		dotGit: fsbackend.New(cfg),
	}

	_, headErr := r.dotGit.ReadHead()
	alreadyInitialized := headErr == nil

	if err := r.dotGit.Init(branch); err != nil {
		return nil, xerrors.Errorf("could not initialize repository: %w", err)
	}

	if alreadyInitialized {
		return r, ErrRepositoryExists
	}
	return r, nil
}

// OpenRepository loads the repository found by discovering the
// nearest .git directory starting at startPath.
func OpenRepository(fs afero.Fs, startPath string) (*Repository, error) {
	cfg, err := config.Discover(fs, startPath)
	if err != nil {
		return nil, xerrors.Errorf("%w", ErrRepositoryNotExist)
	}

	r := &Repository{
		cfg:    cfg,
		dotGit: fsbackend.New(cfg),
	}

	if _, err := r.dotGit.ReadHead(); err != nil {
		return nil, xerrors.Errorf("%w", ErrRepositoryNotExist)
	}

	return r, nil
}

// IsBare reports whether the repository has no working tree.
func (r *Repository) IsBare() bool {
	return r.cfg.IsBare()
}
