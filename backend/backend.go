// Package backend describes the storage contract a repository driver
// needs: objects, refs, HEAD, and the staging index.
package backend

import (
	"github.com/arjunvc/gitcore/ginternals"
	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/arjunvc/gitcore/ginternals/index"
	"github.com/arjunvc/gitcore/ginternals/object"
)

// RefWalkFunc is run against every stored reference by WalkReferences.
// A non-nil error returned by it ends the walk and is returned by
// WalkReferences.
type RefWalkFunc func(ref ginternals.Ref, target githash.Oid) error

// Backend stores and retrieves everything a repository needs: loose
// objects, the staging index, and refs/HEAD. Packfiles, the
// packed-refs optimization, and tag objects are out of scope; this
// core only ever produces loose objects and named refs.
type Backend interface {
	// Init creates the on-disk layout for a new repository (directory
	// tree, default config, default branch HEAD). Calling it on an
	// already-initialized repository is a no-op for anything already
	// present.
	Init(defaultBranch string) error

	// Object returns the object stored under oid.
	Object(oid githash.Oid) (*object.Object, error)
	// HasObject reports whether oid is present in the store.
	HasObject(oid githash.Oid) (bool, error)
	// WriteObject persists o, returning its id. Writing an object that
	// already exists is a no-op.
	WriteObject(o *object.Object) (githash.Oid, error)

	// ReadIndex returns the current staging index, or an empty one if
	// no index file exists yet.
	ReadIndex() (*index.Index, error)
	// WriteIndex persists the index in full, replacing any prior content.
	WriteIndex(idx *index.Index) error

	// Reference returns the commit id a ref points at.
	Reference(ref ginternals.Ref) (githash.Oid, error)
	// WriteReference creates or overwrites a ref.
	WriteReference(ref ginternals.Ref, target githash.Oid) error
	// DeleteReference removes a ref.
	DeleteReference(ref ginternals.Ref) error
	// WalkReferences runs f against every stored ref of the given kind.
	WalkReferences(kind ginternals.RefKind, f RefWalkFunc) error

	// ReadHead returns the current HEAD state.
	ReadHead() (ginternals.Head, error)
	// WriteHead overwrites HEAD in full.
	WriteHead(h ginternals.Head) error
}
