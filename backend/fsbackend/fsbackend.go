// Package fsbackend implements backend.Backend on top of an afero.Fs,
// so the same code drives a real on-disk repository in production and
// an in-memory one in tests.
package fsbackend

import (
	"path/filepath"

	"github.com/arjunvc/gitcore/backend"
	"github.com/arjunvc/gitcore/ginternals"
	"github.com/arjunvc/gitcore/ginternals/config"
	"github.com/arjunvc/gitcore/internal/cache"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// looseObjectCacheSize bounds how many decoded objects are kept in
// memory; it's a read-through cache, not a correctness requirement.
const looseObjectCacheSize = 256

var _ backend.Backend = (*Backend)(nil)

// Backend is the filesystem-backed implementation of backend.Backend.
type Backend struct {
	cfg   config.Config
	fs    afero.Fs
	cache *cache.LRU
}

// New returns a Backend rooted at cfg's git directory.
func New(cfg config.Config) *Backend {
	c, _ := cache.NewLRU(looseObjectCacheSize) // looseObjectCacheSize > 0, never fails
	return &Backend{
		cfg:   cfg,
		fs:    cfg.FS,
		cache: c,
	}
}

// Init creates the on-disk layout for a new repository.
func (b *Backend) Init(defaultBranch string) error {
	dirs := []string{
		b.cfg.GitDirPath,
		filepath.Join(b.cfg.GitDirPath, "refs", "heads"),
		filepath.Join(b.cfg.GitDirPath, "refs", "tags"),
		b.cfg.ObjectDirPath,
	}
	for _, d := range dirs {
		if err := b.fs.MkdirAll(d, 0o750); err != nil {
			return xerrors.Errorf("could not create directory %s: %w", d, err)
		}
	}

	if err := b.writeDefaultConfig(); err != nil {
		return xerrors.Errorf("could not write default config: %w", err)
	}

	headPath := filepath.Join(b.cfg.GitDirPath, ginternals.HeadFileName)
	if _, err := b.fs.Stat(headPath); err != nil {
		head := ginternals.NewSymbolicHead(ginternals.NewBranchRef(defaultBranch))
		if err := b.WriteHead(head); err != nil {
			return xerrors.Errorf("could not write initial HEAD: %w", err)
		}
	}

	return nil
}
