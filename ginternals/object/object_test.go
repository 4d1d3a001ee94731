package object_test

import (
	"bytes"
	"compress/zlib"
	"io"
	"testing"

	"github.com/arjunvc/gitcore/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectID(t *testing.T) {
	t.Parallel()

	o := object.New(object.TypeBlob, []byte("hello\n"))
	assert.Equal(t, "ce013625030ba8dba906f756967f9e9ca394464a", o.ID().String())
	// calling ID twice must be stable (memoized, not recomputed)
	assert.Equal(t, o.ID(), o.ID())
}

func TestObjectCompress(t *testing.T) {
	t.Parallel()

	o := object.New(object.TypeBlob, []byte("hello\n"))
	compressed, err := o.Compress()
	require.NoError(t, err)

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "blob 6\x00hello\n", string(raw))
}

func TestNewTypeFromString(t *testing.T) {
	t.Parallel()

	typ, err := object.NewTypeFromString("commit")
	require.NoError(t, err)
	assert.Equal(t, object.TypeCommit, typ)

	_, err = object.NewTypeFromString("tag")
	assert.ErrorIs(t, err, object.ErrObjectUnknown)
}

func TestTypeIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, object.TypeBlob.IsValid())
	assert.False(t, object.Type(99).IsValid())
}
