package object_test

import (
	"testing"

	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/arjunvc/gitcore/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyTreeHash(t *testing.T) {
	t.Parallel()

	tr := object.NewTree(nil)
	assert.Equal(t, "4b825dc642cb6eb9a060e54bf8d69288fbee4904", tr.ID().String())
}

func TestTreeEntrySortOrder(t *testing.T) {
	t.Parallel()

	oid, err := githash.NewOidFromHex("ce013625030ba8dba906f756967f9e9ca394464a")
	require.NoError(t, err)

	// "foo" (a directory, sorts as "foo/") must land after "foo.txt"
	// (a file) even though "foo" < "foo.txt" as plain strings.
	tr := object.NewTree([]object.TreeEntry{
		{Path: "foo", Mode: object.ModeDirectory, ID: oid},
		{Path: "foo.txt", Mode: object.ModeFile, ID: oid},
	})

	entries := tr.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "foo.txt", entries[0].Path)
	assert.Equal(t, "foo", entries[1].Path)
}

func TestTreeRoundTrip(t *testing.T) {
	t.Parallel()

	oid, err := githash.NewOidFromHex("ce013625030ba8dba906f756967f9e9ca394464a")
	require.NoError(t, err)

	original := object.NewTree([]object.TreeEntry{
		{Path: "README.md", Mode: object.ModeFile, ID: oid},
		{Path: "src", Mode: object.ModeDirectory, ID: oid},
	})

	parsed, err := object.NewTreeFromObject(original.ToObject())
	require.NoError(t, err)
	assert.Equal(t, original.ID(), parsed.ID())
	assert.Equal(t, original.Entries(), parsed.Entries())
}

func TestTreeFromObjectRejectsNonTree(t *testing.T) {
	t.Parallel()

	blob := object.New(object.TypeBlob, []byte("hi"))
	_, err := object.NewTreeFromObject(blob)
	assert.ErrorIs(t, err, object.ErrObjectInvalid)
}

func TestTreeFromObjectRejectsInvalidMode(t *testing.T) {
	t.Parallel()

	oid, err := githash.NewOidFromHex("ce013625030ba8dba906f756967f9e9ca394464a")
	require.NoError(t, err)

	body := append([]byte("160000 sub\x00"), oid.Bytes()...)
	badTree := object.New(object.TypeTree, body)
	_, err = object.NewTreeFromObject(badTree)
	assert.ErrorIs(t, err, object.ErrTreeInvalid)
}
