package object_test

import (
	"testing"
	"time"

	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/arjunvc/gitcore/ginternals/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureRoundTrip(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("", -7*60*60)
	sig := object.Signature{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Time:  time.Date(2026, 1, 2, 3, 4, 5, 123456000, loc),
	}

	parsed, err := object.NewSignatureFromBytes([]byte(sig.String()))
	require.NoError(t, err)
	assert.Equal(t, sig.Name, parsed.Name)
	assert.Equal(t, sig.Email, parsed.Email)
	assert.Equal(t, sig.Time.UnixMicro(), parsed.Time.UnixMicro())
}

func TestSignatureMicrosecondPrecision(t *testing.T) {
	t.Parallel()

	a := object.NewSignature("a", "a@example.com")
	time.Sleep(2 * time.Microsecond)
	b := object.NewSignature("b", "b@example.com")

	assert.NotEqual(t, a.Time.UnixMicro(), b.Time.UnixMicro())
}

func TestSignatureFromBytesInvalid(t *testing.T) {
	t.Parallel()

	_, err := object.NewSignatureFromBytes([]byte("no angle brackets here"))
	assert.ErrorIs(t, err, object.ErrSignatureInvalid)
}

func TestCommitRoundTrip(t *testing.T) {
	t.Parallel()

	treeOid, err := githash.NewOidFromHex("4b825dc642cb6eb9a060e54bf8d69288fbee4904")
	require.NoError(t, err)
	parentOid, err := githash.NewOidFromHex("ce013625030ba8dba906f756967f9e9ca394464a")
	require.NoError(t, err)

	author := object.NewSignature("Ada Lovelace", "ada@example.com")
	original := object.NewCommit(treeOid, author, &object.CommitOptions{
		Message:   "initial commit\n",
		ParentIDs: []githash.Oid{parentOid},
	})

	parsed, err := object.NewCommitFromObject(original.ToObject())
	require.NoError(t, err)
	assert.Equal(t, original.ID(), parsed.ID())
	assert.Equal(t, treeOid, parsed.TreeID())
	assert.Equal(t, []githash.Oid{parentOid}, parsed.ParentIDs())
	assert.Equal(t, "initial commit\n", parsed.Message())
	assert.Equal(t, author.Name, parsed.Author().Name)
	// committer defaults to author when not set
	assert.Equal(t, author.Name, parsed.Committer().Name)
}

func TestCommitRootHasNoParents(t *testing.T) {
	t.Parallel()

	treeOid, err := githash.NewOidFromHex("4b825dc642cb6eb9a060e54bf8d69288fbee4904")
	require.NoError(t, err)
	author := object.NewSignature("Ada Lovelace", "ada@example.com")

	c := object.NewCommit(treeOid, author, &object.CommitOptions{Message: "root\n"})
	assert.Empty(t, c.ParentIDs())
}

func TestCommitFromObjectRejectsMissingTree(t *testing.T) {
	t.Parallel()

	body := "author Ada <ada@example.com> 1000000 -0700\n" +
		"committer Ada <ada@example.com> 1000000 -0700\n\nmsg"
	_, err := object.NewCommitFromObject(object.New(object.TypeCommit, []byte(body)))
	assert.ErrorIs(t, err, object.ErrCommitInvalid)
}

func TestCommitGPGSigRoundTrip(t *testing.T) {
	t.Parallel()

	treeOid, err := githash.NewOidFromHex("4b825dc642cb6eb9a060e54bf8d69288fbee4904")
	require.NoError(t, err)
	author := object.NewSignature("Ada Lovelace", "ada@example.com")

	original := object.NewCommit(treeOid, author, &object.CommitOptions{
		Message:      "signed\n",
		RestOfHeader: "gpgsig -----BEGIN PGP SIGNATURE-----\nabc\n-----END PGP SIGNATURE-----",
	})

	parsed, err := object.NewCommitFromObject(original.ToObject())
	require.NoError(t, err)
	assert.Equal(t, original.RestOfHeader(), parsed.RestOfHeader())
	assert.Equal(t, "signed\n", parsed.Message())
}

func TestCommitRestOfHeaderArbitraryKeyRoundTrip(t *testing.T) {
	t.Parallel()

	treeOid, err := githash.NewOidFromHex("4b825dc642cb6eb9a060e54bf8d69288fbee4904")
	require.NoError(t, err)
	author := object.NewSignature("Ada Lovelace", "ada@example.com")

	original := object.NewCommit(treeOid, author, &object.CommitOptions{
		Message:      "encoding test\n",
		RestOfHeader: "encoding ISO-8859-1\nmergetag object deadbeef",
	})

	parsed, err := object.NewCommitFromObject(original.ToObject())
	require.NoError(t, err)
	assert.Equal(t, "encoding ISO-8859-1\nmergetag object deadbeef", parsed.RestOfHeader())
	assert.Equal(t, "encoding test\n", parsed.Message())
}
