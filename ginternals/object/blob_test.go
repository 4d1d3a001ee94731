package object_test

import (
	"testing"

	"github.com/arjunvc/gitcore/ginternals/object"
	"github.com/stretchr/testify/assert"
)

func TestBlobFromContent(t *testing.T) {
	t.Parallel()

	b := object.NewBlobFromContent([]byte("hello\n"))
	assert.Equal(t, "ce013625030ba8dba906f756967f9e9ca394464a", b.ID().String())
	assert.Equal(t, 6, b.Size())
	assert.Equal(t, []byte("hello\n"), b.Bytes())
	assert.True(t, b.IsPersisted())
}

func TestBlobBytesCopyIsIndependent(t *testing.T) {
	t.Parallel()

	b := object.NewBlobFromContent([]byte("hello\n"))
	cp := b.BytesCopy()
	cp[0] = 'X'
	assert.Equal(t, byte('h'), b.Bytes()[0])
}

func TestBlobToObject(t *testing.T) {
	t.Parallel()

	o := object.New(object.TypeBlob, []byte("content"))
	b := object.NewBlob(o)
	assert.Same(t, o, b.ToObject())
}
