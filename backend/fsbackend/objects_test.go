package fsbackend_test

import (
	"testing"

	"github.com/arjunvc/gitcore/ginternals"
	"github.com/arjunvc/gitcore/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteObjectThenObject(t *testing.T) {
	t.Parallel()

	b := newBackend(t)
	o := object.New(object.TypeBlob, []byte("hello\n"))

	oid, err := b.WriteObject(o)
	require.NoError(t, err)
	assert.Equal(t, "ce013625030ba8dba906f756967f9e9ca394464a", oid.String())

	found, err := b.HasObject(oid)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := b.Object(oid)
	require.NoError(t, err)
	assert.Equal(t, object.TypeBlob, got.Type())
	assert.Equal(t, []byte("hello\n"), got.Bytes())
}

func TestWriteObjectIsIdempotent(t *testing.T) {
	t.Parallel()

	b := newBackend(t)
	o := object.New(object.TypeBlob, []byte("same content\n"))

	oid1, err := b.WriteObject(o)
	require.NoError(t, err)
	oid2, err := b.WriteObject(o)
	require.NoError(t, err)
	assert.Equal(t, oid1, oid2)
}

func TestObjectNotFound(t *testing.T) {
	t.Parallel()

	b := newBackend(t)
	oid := mustOid(t, "000000000000000000000000000000000000000a")

	found, err := b.HasObject(oid)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = b.Object(oid)
	assert.ErrorIs(t, err, ginternals.ErrObjectNotFound)
}
