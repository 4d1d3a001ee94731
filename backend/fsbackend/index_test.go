package fsbackend_test

import (
	"testing"

	"github.com/arjunvc/gitcore/ginternals/index"
	"github.com/arjunvc/gitcore/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIndexWithNoFileReturnsEmpty(t *testing.T) {
	t.Parallel()

	b := newBackend(t)
	idx, err := b.ReadIndex()
	require.NoError(t, err)
	assert.Empty(t, idx.Entries)
}

func TestWriteIndexThenReadIndex(t *testing.T) {
	t.Parallel()

	b := newBackend(t)
	idx := index.New()
	idx.Insert(index.Entry{
		Mode: object.ModeFile,
		SHA1: mustOid(t, "ce013625030ba8dba906f756967f9e9ca394464a"),
		Name: "hello.txt",
	})

	require.NoError(t, b.WriteIndex(idx))

	got, err := b.ReadIndex()
	require.NoError(t, err)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "hello.txt", got.Entries[0].Name)
}
