package ginternals

import (
	"bytes"
	"errors"
	"strings"

	"github.com/arjunvc/gitcore/ginternals/githash"
	"golang.org/x/xerrors"
)

// HeadFileName is the name of the file holding HEAD, relative to the
// git directory.
const HeadFileName = "HEAD"

// DefaultBranch is the branch name used when none is specified at init.
const DefaultBranch = "main"

var (
	// ErrRefNotFound is returned when trying to act on a reference that
	// doesn't exist.
	ErrRefNotFound = errors.New("reference not found")
	// ErrRefExists is returned when trying to create a reference that
	// already exists.
	ErrRefExists = errors.New("reference already exists")
	// ErrRefNameInvalid is returned when the name of a reference isn't
	// a legal ref name.
	ErrRefNameInvalid = errors.New("reference name is not valid")
	// ErrRefInvalid is returned when a reference's on-disk content can't
	// be parsed.
	ErrRefInvalid = errors.New("reference is not valid")
	// ErrUnsupportedHead is returned when an operation that requires a
	// symbolic HEAD pointing at a branch is attempted while HEAD is
	// detached or points at a tag.
	ErrUnsupportedHead = errors.New("operation unsupported on current HEAD")
)

// RefKind distinguishes a branch ref from a tag ref.
type RefKind int8

// The two kinds of named refs this core manages.
const (
	RefBranch RefKind = iota + 1
	RefTag
)

// Ref is a named pointer to a commit, identified by its short name
// ("main") and kind (branch vs tag).
type Ref struct {
	Kind RefKind
	Name string
}

// NewBranchRef returns the Ref for the branch with the given short name.
func NewBranchRef(name string) Ref {
	return Ref{Kind: RefBranch, Name: name}
}

// NewTagRef returns the Ref for the tag with the given short name.
func NewTagRef(name string) Ref {
	return Ref{Kind: RefTag, Name: name}
}

// Path returns the ref's path relative to the git directory, e.g.
// "refs/heads/main" or "refs/tags/v1".
func (r Ref) Path() string {
	switch r.Kind {
	case RefTag:
		return "refs/tags/" + r.Name
	default:
		return "refs/heads/" + r.Name
	}
}

// HeadKind distinguishes the two shapes HEAD can take.
type HeadKind int8

// The two states HEAD may be in. There is no third "unborn" kind at the
// type level: an unborn branch is represented as HeadSymbolic pointing
// at a Ref whose file doesn't exist yet, resolved by the caller.
const (
	HeadDetached HeadKind = iota + 1
	HeadSymbolic
)

// Head is the state of HEAD: either a raw detached commit id, or a
// symbolic pointer at a named ref. Kept as an explicit sum type rather
// than a bare string so every consumer is forced to handle both cases.
type Head struct {
	Kind HeadKind
	Oid  githash.Oid // set when Kind == HeadDetached
	Ref  Ref         // set when Kind == HeadSymbolic
}

// NewDetachedHead returns a Head pointing directly at a commit.
func NewDetachedHead(oid githash.Oid) Head {
	return Head{Kind: HeadDetached, Oid: oid}
}

// NewSymbolicHead returns a Head pointing at a named ref.
func NewSymbolicHead(ref Ref) Head {
	return Head{Kind: HeadSymbolic, Ref: ref}
}

// IsDetached reports whether HEAD points directly at a commit.
func (h Head) IsDetached() bool {
	return h.Kind == HeadDetached
}

// Encode renders HEAD's on-disk content.
func (h Head) Encode() []byte {
	if h.IsDetached() {
		return []byte(h.Oid.String() + "\n")
	}
	return []byte("ref: " + h.Ref.Path() + "\n")
}

// DecodeHead parses HEAD's on-disk content.
func DecodeHead(data []byte) (Head, error) {
	data = bytes.TrimSpace(data)
	if bytes.HasPrefix(data, []byte("ref: ")) {
		target := string(data[len("ref: "):])
		ref, err := parseRefPath(target)
		if err != nil {
			return Head{}, xerrors.Errorf("HEAD points at invalid ref %q: %w", target, err)
		}
		return NewSymbolicHead(ref), nil
	}

	oid, err := githash.NewOidFromChars(data)
	if err != nil {
		return Head{}, xerrors.Errorf("HEAD content is neither a ref nor a hash: %w", ErrRefInvalid)
	}
	return NewDetachedHead(oid), nil
}

// parseRefPath turns "refs/heads/main" back into a Ref.
func parseRefPath(path string) (Ref, error) {
	switch {
	case strings.HasPrefix(path, "refs/heads/"):
		return NewBranchRef(strings.TrimPrefix(path, "refs/heads/")), nil
	case strings.HasPrefix(path, "refs/tags/"):
		return NewTagRef(strings.TrimPrefix(path, "refs/tags/")), nil
	default:
		return Ref{}, ErrRefInvalid
	}
}

// DecodeRefTarget parses the content of a `refs/heads/<name>` or
// `refs/tags/<name>` file: 40 hex chars plus optional trailing
// whitespace.
func DecodeRefTarget(data []byte) (githash.Oid, error) {
	data = bytes.TrimSpace(data)
	oid, err := githash.NewOidFromChars(data)
	if err != nil {
		return githash.NullOid, xerrors.Errorf("ref content %q: %w", string(data), ErrRefInvalid)
	}
	return oid, nil
}

// EncodeRefTarget renders a ref file's content.
func EncodeRefTarget(oid githash.Oid) []byte {
	return []byte(oid.String() + "\n")
}

// IsRefNameValid returns whether name is a legal reference short name.
// https://git-scm.com/docs/git-check-ref-format
func IsRefNameValid(name string) bool {
	if name == "" || name == "/" || name[len(name)-1] == '/' || name[len(name)-1] == '.' {
		return false
	}

	for i, c := range name {
		if c < 32 || c == 127 {
			return false
		}
		if c == '*' || c == '?' || c == '!' || c == '^' {
			return false
		}
		if c == ' ' || c == '[' || c == '\\' || c == ':' {
			return false
		}
		if i < len(name)-1 {
			substr := name[i : i+2]
			if substr == "@{" || substr == ".." {
				return false
			}
		}
	}

	segments := strings.Split(name, "/")
	for _, s := range segments {
		if s == "" || s[0] == '.' || s[len(s)-1] == '.' || strings.HasSuffix(s, ".lock") {
			return false
		}
	}

	return true
}
