// Package identity resolves the author/committer name and email used
// when constructing a new commit.
package identity

import (
	"os/exec"
	"strings"

	"github.com/arjunvc/gitcore/internal/env"
	"golang.org/x/xerrors"
)

// Resolve returns the (name, email) pair to stamp on a new commit.
// It checks GIT_AUTHOR_NAME/GIT_AUTHOR_EMAIL first, then falls back to
// `git config --get user.name`/`user.email` run against the host's git
// installation.
func Resolve(e *env.Env) (name, email string, err error) {
	name = e.Get("GIT_AUTHOR_NAME")
	email = e.Get("GIT_AUTHOR_EMAIL")
	if name != "" && email != "" {
		return name, email, nil
	}

	if name == "" {
		name, err = runGitConfig("user.name")
		if err != nil {
			return "", "", xerrors.Errorf("could not resolve author name: %w", err)
		}
	}
	if email == "" {
		email, err = runGitConfig("user.email")
		if err != nil {
			return "", "", xerrors.Errorf("could not resolve author email: %w", err)
		}
	}
	return name, email, nil
}

// ResolveCommitter is identical to Resolve but checks the
// GIT_COMMITTER_* variables instead of GIT_AUTHOR_*.
func ResolveCommitter(e *env.Env) (name, email string, err error) {
	name = e.Get("GIT_COMMITTER_NAME")
	email = e.Get("GIT_COMMITTER_EMAIL")
	if name != "" && email != "" {
		return name, email, nil
	}

	if name == "" {
		name, err = runGitConfig("user.name")
		if err != nil {
			return "", "", xerrors.Errorf("could not resolve committer name: %w", err)
		}
	}
	if email == "" {
		email, err = runGitConfig("user.email")
		if err != nil {
			return "", "", xerrors.Errorf("could not resolve committer email: %w", err)
		}
	}
	return name, email, nil
}

func runGitConfig(key string) (string, error) {
	cmd := exec.Command("git", "config", "--get", key) //nolint:gosec // key is a fixed internal constant
	out, err := cmd.Output()
	if err != nil {
		return "", xerrors.Errorf("git config --get %s: %w", key, err)
	}
	return strings.TrimSpace(string(out)), nil
}
