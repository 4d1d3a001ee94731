package gitcore

import (
	"errors"

	"github.com/arjunvc/gitcore/ginternals"
	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/arjunvc/gitcore/ginternals/index"
	"github.com/arjunvc/gitcore/ginternals/object"
	"golang.org/x/xerrors"
)

// CatFile returns the object stored under oid.
func (r *Repository) CatFile(oid githash.Oid) (*object.Object, error) {
	o, err := r.dotGit.Object(oid)
	if err != nil {
		return nil, xerrors.Errorf("could not read object %s: %w", oid, err)
	}
	return o, nil
}

// ObjectExists reports whether oid is present in the store.
func (r *Repository) ObjectExists(oid githash.Oid) (bool, error) {
	found, err := r.dotGit.HasObject(oid)
	if err != nil {
		return false, xerrors.Errorf("could not check object %s: %w", oid, err)
	}
	return found, nil
}

// HashObject computes the id of (typ, content) and, if write is true,
// persists it to the store.
func (r *Repository) HashObject(typ object.Type, content []byte, write bool) (githash.Oid, error) {
	o := object.New(typ, content)
	if !write {
		return o.ID(), nil
	}
	oid, err := r.dotGit.WriteObject(o)
	if err != nil {
		return githash.NullOid, xerrors.Errorf("could not write object: %w", err)
	}
	return oid, nil
}

// WriteTreeCmd materializes the current staging index into tree
// objects and returns the root tree's id.
func (r *Repository) WriteTreeCmd() (githash.Oid, error) {
	idx, err := r.dotGit.ReadIndex()
	if err != nil {
		return githash.NullOid, xerrors.Errorf("could not read index: %w", err)
	}
	return r.WriteTree(idx)
}

// CommitTreeOptions customizes CommitTree.
type CommitTreeOptions struct {
	Message     string
	ParentIDs   []githash.Oid
	AuthorName  string
	AuthorEmail string
}

// CommitTree constructs and writes a commit pointing directly at
// treeID, without touching the staging index or any ref.
func (r *Repository) CommitTree(treeID githash.Oid, opts CommitTreeOptions) (githash.Oid, error) {
	author := object.NewSignature(opts.AuthorName, opts.AuthorEmail)
	c := object.NewCommit(treeID, author, &object.CommitOptions{
		Message:   opts.Message,
		ParentIDs: opts.ParentIDs,
	})

	oid, err := r.dotGit.WriteObject(c.ToObject())
	if err != nil {
		return githash.NullOid, xerrors.Errorf("could not write commit: %w", err)
	}
	return oid, nil
}

// UpdateRef points refname at target. refname may be "HEAD" or a
// branch short name; any other name is passed to
// ginternals.NewBranchRef and written under refs/heads/.
func (r *Repository) UpdateRef(refname string, target githash.Oid) error {
	if refname == ginternals.HeadFileName {
		head, err := r.dotGit.ReadHead()
		if err != nil {
			return xerrors.Errorf("could not read HEAD: %w", err)
		}
		if head.IsDetached() {
			if err := r.dotGit.WriteHead(ginternals.NewDetachedHead(target)); err != nil {
				return xerrors.Errorf("could not update HEAD: %w", err)
			}
			return nil
		}
		if err := r.dotGit.WriteReference(head.Ref, target); err != nil {
			return xerrors.Errorf("could not update %s: %w", head.Ref.Name, err)
		}
		return nil
	}

	ref := ginternals.NewBranchRef(refname)
	if err := r.dotGit.WriteReference(ref, target); err != nil {
		return xerrors.Errorf("could not update %s: %w", refname, err)
	}
	return nil
}

// UpdateIndexCacheInfo upserts one entry directly with a known
// mode/hash/path triple, bypassing the working-tree walk `Add` performs.
func (r *Repository) UpdateIndexCacheInfo(mode object.TreeObjectMode, oid githash.Oid, path string) error {
	if !mode.IsValid() {
		return xerrors.Errorf("mode %o: %w", mode, errInvalidMode)
	}

	idx, err := r.dotGit.ReadIndex()
	if err != nil {
		return xerrors.Errorf("could not read index: %w", err)
	}

	idx.Insert(index.Entry{Mode: mode, SHA1: oid, Name: path})

	if err := r.dotGit.WriteIndex(idx); err != nil {
		return xerrors.Errorf("could not write index: %w", err)
	}
	return nil
}

// errInvalidMode is a private sentinel: no SPEC_FULL.md operation
// needs callers to match on it directly.
var errInvalidMode = errors.New("invalid tree object mode")

// LsFiles returns the paths currently staged in the index, in sorted
// order (the index is kept sorted as an invariant).
func (r *Repository) LsFiles() ([]index.Entry, error) {
	idx, err := r.dotGit.ReadIndex()
	if err != nil {
		return nil, xerrors.Errorf("could not read index: %w", err)
	}
	return idx.Entries, nil
}
