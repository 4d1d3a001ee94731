package gitcore

import (
	"errors"

	"github.com/arjunvc/gitcore/ginternals"
	"github.com/arjunvc/gitcore/ginternals/githash"
	"golang.org/x/xerrors"
)

// ErrBranchNotExist is returned when an operation names a branch that
// doesn't exist.
var ErrBranchNotExist = errors.New("branch does not exist")

// ErrBranchExists is returned when creating a branch that already exists.
var ErrBranchExists = errors.New("branch already exists")

// Switch moves HEAD to point at an existing branch, without touching
// the working tree.
func (r *Repository) Switch(branch string) error {
	ref := ginternals.NewBranchRef(branch)
	if _, err := r.dotGit.Reference(ref); err != nil {
		if errors.Is(err, ginternals.ErrRefNotFound) {
			return xerrors.Errorf("branch %s: %w", branch, ErrBranchNotExist)
		}
		return xerrors.Errorf("could not resolve branch %s: %w", branch, err)
	}

	if err := r.dotGit.WriteHead(ginternals.NewSymbolicHead(ref)); err != nil {
		return xerrors.Errorf("could not switch to branch %s: %w", branch, err)
	}
	return nil
}

// SwitchCreate creates branch pointing at HEAD's current commit (or
// leaves it unborn if HEAD itself is unborn), then switches to it.
func (r *Repository) SwitchCreate(branch string) error {
	if !ginternals.IsRefNameValid(branch) {
		return xerrors.Errorf("branch name %q: %w", branch, ginternals.ErrRefNameInvalid)
	}

	ref := ginternals.NewBranchRef(branch)
	if _, err := r.dotGit.Reference(ref); err == nil {
		return xerrors.Errorf("branch %s: %w", branch, ErrBranchExists)
	} else if !errors.Is(err, ginternals.ErrRefNotFound) {
		return xerrors.Errorf("could not check for branch %s: %w", branch, err)
	}

	target, err := r.resolveHeadOid()
	if err != nil {
		return err
	}
	if !target.IsZero() {
		if err := r.dotGit.WriteReference(ref, target); err != nil {
			return xerrors.Errorf("could not create branch %s: %w", branch, err)
		}
	}

	if err := r.dotGit.WriteHead(ginternals.NewSymbolicHead(ref)); err != nil {
		return xerrors.Errorf("could not switch to branch %s: %w", branch, err)
	}
	return nil
}

// SwitchOrphan points HEAD at a new branch without creating its ref
// file; the branch's first commit is the one that creates it.
func (r *Repository) SwitchOrphan(branch string) error {
	if !ginternals.IsRefNameValid(branch) {
		return xerrors.Errorf("branch name %q: %w", branch, ginternals.ErrRefNameInvalid)
	}

	ref := ginternals.NewBranchRef(branch)
	if _, err := r.dotGit.Reference(ref); err == nil {
		return xerrors.Errorf("branch %s: %w", branch, ErrBranchExists)
	} else if !errors.Is(err, ginternals.ErrRefNotFound) {
		return xerrors.Errorf("could not check for branch %s: %w", branch, err)
	}

	if err := r.dotGit.WriteHead(ginternals.NewSymbolicHead(ref)); err != nil {
		return xerrors.Errorf("could not switch to orphan branch %s: %w", branch, err)
	}
	return nil
}

// SwitchDetach points HEAD directly at oid.
func (r *Repository) SwitchDetach(oid githash.Oid) error {
	if err := r.dotGit.WriteHead(ginternals.NewDetachedHead(oid)); err != nil {
		return xerrors.Errorf("could not detach HEAD at %s: %w", oid, err)
	}
	return nil
}

// resolveHeadOid returns the commit HEAD currently resolves to, or the
// zero oid if HEAD is an unborn branch.
func (r *Repository) resolveHeadOid() (githash.Oid, error) {
	head, err := r.dotGit.ReadHead()
	if err != nil {
		return githash.NullOid, xerrors.Errorf("could not read HEAD: %w", err)
	}

	if head.IsDetached() {
		return head.Oid, nil
	}

	oid, err := r.dotGit.Reference(head.Ref)
	if err != nil {
		if errors.Is(err, ginternals.ErrRefNotFound) {
			return githash.NullOid, nil
		}
		return githash.NullOid, xerrors.Errorf("could not resolve HEAD: %w", err)
	}
	return oid, nil
}
