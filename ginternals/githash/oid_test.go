package githash_test

import (
	"testing"

	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOidFromHex(t *testing.T) {
	t.Parallel()

	t.Run("valid hex round-trips", func(t *testing.T) {
		t.Parallel()

		hex := "ce013625030ba8dba906f756967f9e9ca394464a"
		oid, err := githash.NewOidFromHex(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, oid.String())
		assert.False(t, oid.IsZero())
	})

	t.Run("wrong length is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := githash.NewOidFromHex("abcd")
		assert.ErrorIs(t, err, githash.ErrInvalidOid)
	})

	t.Run("non-hex characters are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := githash.NewOidFromHex("zz013625030ba8dba906f756967f9e9ca394464a")
		assert.ErrorIs(t, err, githash.ErrInvalidOid)
	})
}

func TestNewOidFromBytes(t *testing.T) {
	t.Parallel()

	t.Run("exactly 20 bytes is accepted", func(t *testing.T) {
		t.Parallel()

		raw := make([]byte, githash.OidSize)
		oid, err := githash.NewOidFromBytes(raw)
		require.NoError(t, err)
		assert.True(t, oid.IsZero())
	})

	t.Run("wrong size is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := githash.NewOidFromBytes([]byte{1, 2, 3})
		assert.ErrorIs(t, err, githash.ErrInvalidOid)
	})
}

func TestSum(t *testing.T) {
	t.Parallel()

	oid := githash.Sum([]byte("blob 6\x00hello\n"))
	assert.Equal(t, "ce013625030ba8dba906f756967f9e9ca394464a", oid.String())
}

func TestSplit(t *testing.T) {
	t.Parallel()

	oid, err := githash.NewOidFromHex("fcfe68a0e44e04bd7fd564fc0b75f1ae457e18b3")
	require.NoError(t, err)

	prefix, suffix := oid.Split()
	assert.Equal(t, "fc", prefix)
	assert.Equal(t, "fe68a0e44e04bd7fd564fc0b75f1ae457e18b3", suffix)
}
