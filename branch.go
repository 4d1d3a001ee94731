package gitcore

import (
	"errors"
	"sort"

	"github.com/arjunvc/gitcore/ginternals"
	"github.com/arjunvc/gitcore/ginternals/githash"
	"golang.org/x/xerrors"
)

// ErrBranchIsCurrent is returned when deleting the branch HEAD is
// currently pointing at.
var ErrBranchIsCurrent = errors.New("cannot delete the currently checked-out branch")

// BranchInfo describes one local branch.
type BranchInfo struct {
	Name    string
	Current bool
}

// ListBranches returns every local branch, sorted by name, with
// Current set on the one HEAD points at (if any).
func (r *Repository) ListBranches() ([]BranchInfo, error) {
	head, err := r.dotGit.ReadHead()
	if err != nil {
		return nil, xerrors.Errorf("could not read HEAD: %w", err)
	}
	currentName := ""
	if !head.IsDetached() && head.Ref.Kind == ginternals.RefBranch {
		currentName = head.Ref.Name
	}

	var branches []BranchInfo
	err = r.dotGit.WalkReferences(ginternals.RefBranch, func(ref ginternals.Ref, _ githash.Oid) error {
		branches = append(branches, BranchInfo{
			Name:    ref.Name,
			Current: ref.Name == currentName,
		})
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("could not enumerate branches: %w", err)
	}

	sort.Slice(branches, func(i, j int) bool {
		return branches[i].Name < branches[j].Name
	})
	return branches, nil
}

// CreateBranch creates name pointing at HEAD's current commit.
func (r *Repository) CreateBranch(name string) error {
	if !ginternals.IsRefNameValid(name) {
		return xerrors.Errorf("branch name %q: %w", name, ginternals.ErrRefNameInvalid)
	}

	ref := ginternals.NewBranchRef(name)
	if _, err := r.dotGit.Reference(ref); err == nil {
		return xerrors.Errorf("branch %s: %w", name, ErrBranchExists)
	} else if !errors.Is(err, ginternals.ErrRefNotFound) {
		return xerrors.Errorf("could not check for branch %s: %w", name, err)
	}

	head, err := r.dotGit.ReadHead()
	if err != nil {
		return xerrors.Errorf("could not read HEAD: %w", err)
	}
	if !head.IsDetached() && head.Ref.Kind == ginternals.RefTag {
		return xerrors.Errorf("HEAD points at a tag: %w", ginternals.ErrUnsupportedHead)
	}

	target, err := r.resolveHeadOid()
	if err != nil {
		return err
	}
	if target.IsZero() {
		return xerrors.Errorf("HEAD has no commit to branch from: %w", ginternals.ErrUnsupportedHead)
	}

	if err := r.dotGit.WriteReference(ref, target); err != nil {
		return xerrors.Errorf("could not create branch %s: %w", name, err)
	}
	return nil
}

// DeleteBranch removes name. It fails if name is the currently
// checked-out branch or doesn't exist.
func (r *Repository) DeleteBranch(name string) error {
	head, err := r.dotGit.ReadHead()
	if err != nil {
		return xerrors.Errorf("could not read HEAD: %w", err)
	}
	if !head.IsDetached() && head.Ref.Kind == ginternals.RefBranch && head.Ref.Name == name {
		return xerrors.Errorf("branch %s: %w", name, ErrBranchIsCurrent)
	}

	ref := ginternals.NewBranchRef(name)
	if err := r.dotGit.DeleteReference(ref); err != nil {
		if errors.Is(err, ginternals.ErrRefNotFound) {
			return xerrors.Errorf("branch %s: %w", name, ErrBranchNotExist)
		}
		return xerrors.Errorf("could not delete branch %s: %w", name, err)
	}
	return nil
}
