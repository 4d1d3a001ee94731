package main

import (
	"github.com/arjunvc/gitcore"
	"github.com/arjunvc/gitcore/ginternals/githash"
	"golang.org/x/xerrors"
)

// openRepo resolves -C (or the cwd) and opens the repository rooted
// there.
func openRepo(f *rootFlags) (*gitcore.Repository, error) {
	dir, err := f.workDir()
	if err != nil {
		return nil, xerrors.Errorf("could not resolve working directory: %w", err)
	}
	r, err := gitcore.OpenRepository(f.fs, dir)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// parseOid parses a hex object id given on the command line.
func parseOid(s string) (githash.Oid, error) {
	oid, err := githash.NewOidFromHex(s)
	if err != nil {
		return githash.NullOid, xerrors.Errorf("not a valid object name %s: %w", s, err)
	}
	return oid, nil
}
