// Package ginternals contains the data model shared by every layer of
// the store: error kinds, ref/HEAD state, and path helpers. Object and
// index codecs live in their own sub-packages to keep import cycles out
// of this one.
package ginternals

import "errors"

// Kind classifies the errors this core surfaces.
type Kind int8

// The kinds of errors a driver can return.
const (
	// KindCorruptObject means bad bytes were read from the object store.
	KindCorruptObject Kind = iota + 1
	// KindCorruptIndex means the index file's bytes don't decode.
	KindCorruptIndex
	// KindNotFound means a referenced object, ref, or file is missing.
	KindNotFound
	// KindInvalidArgument means a caller passed malformed input (a bad
	// hash string, an unsupported mode, an invalid ref name).
	KindInvalidArgument
	// KindConflictingState means the requested operation would violate
	// an invariant of the current repository state (branch exists,
	// delete of the checked-out branch, commit on detached HEAD).
	KindConflictingState
	// KindUnsupportedOperation means the operation is recognized but not
	// implemented for the given target (tag targets, update-index --remove).
	KindUnsupportedOperation
	// KindIoFailure means the underlying filesystem returned an error.
	KindIoFailure
)

// ErrObjectNotFound is returned when an object can't be found in the odb.
var ErrObjectNotFound = errors.New("object not found")

// ErrCorruptIndex is returned when the index file's bytes don't decode
// to the expected layout.
var ErrCorruptIndex = errors.New("index is corrupt")

// ErrUnsupportedOperation is returned when an operation is recognized
// but not implemented for the given target, e.g. update-index --remove.
var ErrUnsupportedOperation = errors.New("operation not supported")
