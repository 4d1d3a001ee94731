// Package object contains the canonical encoding of the three object
// kinds this store persists: blobs, trees, and commits.
package object

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/arjunvc/gitcore/internal/errutil"
	"golang.org/x/xerrors"
)

var (
	// ErrObjectUnknown is returned for an object kind string this store
	// doesn't recognize.
	ErrObjectUnknown = errors.New("invalid object type")
	// ErrObjectInvalid is returned when an object's content doesn't match
	// the operation being attempted on it (e.g. parsing a blob as a tree).
	ErrObjectInvalid = errors.New("invalid object")
	// ErrTreeInvalid is returned when a tree's body can't be parsed.
	ErrTreeInvalid = errors.New("invalid tree")
	// ErrCommitInvalid is returned when a commit's body can't be parsed.
	ErrCommitInvalid = errors.New("invalid commit")
)

// Type is the kind of a stored object.
type Type int8

// The three object kinds this store persists. Tag objects, packfile
// delta kinds, and any future kind are out of scope.
const (
	TypeCommit Type = 1
	TypeTree   Type = 2
	TypeBlob   Type = 3
)

func (t Type) String() string {
	switch t {
	case TypeCommit:
		return "commit"
	case TypeTree:
		return "tree"
	case TypeBlob:
		return "blob"
	default:
		panic(fmt.Sprintf("unknown object type %d", t))
	}
}

// IsValid reports whether t is a supported object type.
func (t Type) IsValid() bool {
	switch t {
	case TypeCommit, TypeTree, TypeBlob:
		return true
	default:
		return false
	}
}

// NewTypeFromString parses a type's on-disk header string.
func NewTypeFromString(t string) (Type, error) {
	switch t {
	case "commit":
		return TypeCommit, nil
	case "tree":
		return TypeTree, nil
	case "blob":
		return TypeBlob, nil
	default:
		return 0, ErrObjectUnknown
	}
}

// Object is a git object: a typed, content-addressed blob of bytes.
// Its identity is the SHA-1 of its canonical encoding, computed lazily
// and memoized since most objects are built once and hashed many times.
type Object struct {
	id      githash.Oid
	typ     Type
	content []byte

	idOnce sync.Once
}

// New builds an Object of the given type around content. Its id isn't
// computed until first requested via ID.
func New(typ Type, content []byte) *Object {
	return &Object{typ: typ, content: content}
}

// ID returns the object's id, computing it on first call.
func (o *Object) ID() githash.Oid {
	o.idOnce.Do(func() {
		o.id, _ = o.encode()
	})
	return o.id
}

// Size returns the length of the object's content, in bytes.
func (o *Object) Size() int {
	return len(o.content)
}

// Type returns the object's kind.
func (o *Object) Type() Type {
	return o.typ
}

// Bytes returns the object's raw content (without the type/size header).
func (o *Object) Bytes() []byte {
	return o.content
}

// encode renders the object's canonical form: "<type> <size>\x00<content>".
func (o *Object) encode() (id githash.Oid, data []byte) {
	w := new(bytes.Buffer)
	w.WriteString(o.Type().String())
	w.WriteByte(' ')
	w.WriteString(strconv.Itoa(o.Size()))
	w.WriteByte(0)
	w.Write(o.Bytes())

	data = w.Bytes()
	return githash.Sum(data), data
}

// Compress returns the object's canonical form, zlib-compressed, ready
// to be written to the loose-object store.
func (o *Object) Compress() (data []byte, err error) {
	_, canonical := o.encode()

	compressed := new(bytes.Buffer)
	zw := zlib.NewWriter(compressed)
	defer errutil.Close(zw, &err)

	if _, err = zw.Write(canonical); err != nil {
		return nil, xerrors.Errorf("could not zlib-compress object: %w", err)
	}
	return compressed.Bytes(), nil
}

// AsBlob views the object as a Blob.
func (o *Object) AsBlob() *Blob {
	return NewBlob(o)
}

// AsTree parses the object's content as a Tree.
func (o *Object) AsTree() (*Tree, error) {
	return NewTreeFromObject(o)
}

// AsCommit parses the object's content as a Commit.
func (o *Object) AsCommit() (*Commit, error) {
	return NewCommitFromObject(o)
}
