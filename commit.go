package gitcore

import (
	"errors"

	"github.com/arjunvc/gitcore/ginternals"
	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/arjunvc/gitcore/ginternals/object"
	"golang.org/x/xerrors"
)

// CommitOptions customizes Commit.
type CommitOptions struct {
	Message        string
	AuthorName     string
	AuthorEmail    string
	CommitterName  string
	CommitterEmail string
}

// Commit materializes the staged index into a tree, wraps it in a new
// commit object pointing at HEAD's current commit (if any), and moves
// the branch HEAD points at forward to it.
//
// Committing on a detached HEAD is rejected: spec.md's state machine
// only transitions Unborn/Symbolic branches forward.
func (r *Repository) Commit(opts CommitOptions) (githash.Oid, error) {
	head, err := r.dotGit.ReadHead()
	if err != nil {
		return githash.NullOid, xerrors.Errorf("could not read HEAD: %w", err)
	}
	if head.IsDetached() {
		return githash.NullOid, xerrors.Errorf("cannot commit on detached HEAD: %w", ginternals.ErrUnsupportedHead)
	}
	if head.Ref.Kind != ginternals.RefBranch {
		return githash.NullOid, xerrors.Errorf("HEAD points at a tag: %w", ginternals.ErrUnsupportedHead)
	}

	var parents []githash.Oid
	parent, err := r.dotGit.Reference(head.Ref)
	switch {
	case err == nil:
		parents = []githash.Oid{parent}
	case errors.Is(err, ginternals.ErrRefNotFound):
		// Unborn branch: this is its first commit.
	default:
		return githash.NullOid, xerrors.Errorf("could not resolve %s: %w", head.Ref.Name, err)
	}

	idx, err := r.dotGit.ReadIndex()
	if err != nil {
		return githash.NullOid, xerrors.Errorf("could not read index: %w", err)
	}

	treeID, err := r.WriteTree(idx)
	if err != nil {
		return githash.NullOid, xerrors.Errorf("could not materialize tree: %w", err)
	}

	author := object.Signature{
		Name:  opts.AuthorName,
		Email: opts.AuthorEmail,
	}
	committerName, committerEmail := opts.CommitterName, opts.CommitterEmail
	if committerName == "" {
		committerName = opts.AuthorName
	}
	if committerEmail == "" {
		committerEmail = opts.AuthorEmail
	}

	now := object.NewSignature(author.Name, author.Email)
	author.Time = now.Time
	committer := object.Signature{Name: committerName, Email: committerEmail, Time: now.Time}

	c := object.NewCommit(treeID, author, &object.CommitOptions{
		Message:   opts.Message,
		Committer: committer,
		ParentIDs: parents,
	})

	commitID, err := r.dotGit.WriteObject(c.ToObject())
	if err != nil {
		return githash.NullOid, xerrors.Errorf("could not write commit: %w", err)
	}

	if err := r.dotGit.WriteReference(head.Ref, commitID); err != nil {
		return githash.NullOid, xerrors.Errorf("could not update %s: %w", head.Ref.Name, err)
	}

	return commitID, nil
}
