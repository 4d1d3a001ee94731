package identity_test

import (
	"testing"

	"github.com/arjunvc/gitcore/internal/env"
	"github.com/arjunvc/gitcore/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFromEnv(t *testing.T) {
	t.Parallel()

	e := env.NewFromKVList([]string{
		"GIT_AUTHOR_NAME=Ada Lovelace",
		"GIT_AUTHOR_EMAIL=ada@example.com",
	})

	name, email, err := identity.Resolve(e)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", name)
	assert.Equal(t, "ada@example.com", email)
}

func TestResolveCommitterFromEnv(t *testing.T) {
	t.Parallel()

	e := env.NewFromKVList([]string{
		"GIT_COMMITTER_NAME=Grace Hopper",
		"GIT_COMMITTER_EMAIL=grace@example.com",
	})

	name, email, err := identity.ResolveCommitter(e)
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", name)
	assert.Equal(t, "grace@example.com", email)
}
