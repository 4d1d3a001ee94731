package object

import "github.com/arjunvc/gitcore/ginternals/githash"

// Blob is the content of a file, addressed by the hash of its bytes.
// It carries no name or mode; those live on the tree entry pointing
// at it.
type Blob struct {
	rawObject *Object
}

// NewBlob wraps an Object as a Blob.
func NewBlob(o *Object) *Blob {
	return &Blob{rawObject: o}
}

// IsPersisted reports whether the blob has a backing Object, which
// NewBlob and NewBlobFromContent always give it.
func (b *Blob) IsPersisted() bool {
	return b.rawObject != nil
}

// ID returns the blob's id.
func (b *Blob) ID() githash.Oid {
	return b.rawObject.ID()
}

// Bytes returns the blob's content.
func (b *Blob) Bytes() []byte {
	return b.rawObject.content
}

// BytesCopy returns a defensive copy of the blob's content.
func (b *Blob) BytesCopy() []byte {
	out := make([]byte, len(b.rawObject.content))
	copy(out, b.rawObject.content)
	return out
}

// Size returns the length of the blob's content, in bytes.
func (b *Blob) Size() int {
	return len(b.rawObject.content)
}

// ToObject returns the blob's underlying Object.
func (b *Blob) ToObject() *Object {
	return b.rawObject
}

// NewBlobFromContent builds a Blob around raw file content.
func NewBlobFromContent(content []byte) *Blob {
	return NewBlob(New(TypeBlob, content))
}
