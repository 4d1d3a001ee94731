package object

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/arjunvc/gitcore/internal/readutil"
)

// ErrSignatureInvalid is returned when a commit's author/committer line
// can't be parsed.
var ErrSignatureInvalid = errors.New("commit signature is invalid")

// Signature identifies who made a commit and when.
//
// Real git records the timestamp in whole seconds. This store records
// microseconds instead, so commits made in rapid succession (as tests
// and scripted imports do) still get distinct, orderable timestamps.
type Signature struct {
	Time  time.Time
	Name  string
	Email string
}

// String renders the signature's on-disk form:
// "Name <email> <unix-microseconds> <timezone>".
func (s Signature) String() string {
	return fmt.Sprintf("%s <%s> %d %s", s.Name, s.Email, s.Time.UnixMicro(), s.Time.Format("-0700"))
}

// IsZero reports whether s is the zero Signature.
func (s Signature) IsZero() bool {
	return s.Time.IsZero() && s.Name == "" && s.Email == ""
}

// NewSignature builds a Signature for name/email stamped with the
// current time.
func NewSignature(name, email string) Signature {
	return Signature{Name: name, Email: email, Time: time.Now()}
}

// NewSignatureFromBytes parses a signature line's value (everything
// after "author "/"committer "): "Name <email> <microseconds> <tz>".
func NewSignatureFromBytes(b []byte) (Signature, error) {
	sig := Signature{}

	name := readutil.ReadTo(b, '<')
	if len(name) == 0 {
		return sig, fmt.Errorf("couldn't retrieve the name: %w", ErrSignatureInvalid)
	}
	sig.Name = strings.TrimSpace(string(name))
	offset := len(name) + 1 // skip "<"
	if offset >= len(b) {
		return sig, fmt.Errorf("signature stopped after the name: %w", ErrSignatureInvalid)
	}

	email := readutil.ReadTo(b[offset:], '>')
	if len(email) == 0 {
		return sig, fmt.Errorf("couldn't retrieve the email: %w", ErrSignatureInvalid)
	}
	sig.Email = string(email)
	offset += len(email) + 2 // skip "> "
	if offset >= len(b) {
		return sig, fmt.Errorf("signature stopped after the email: %w", ErrSignatureInvalid)
	}

	timestamp := readutil.ReadTo(b[offset:], ' ')
	if len(timestamp) == 0 {
		return sig, fmt.Errorf("couldn't retrieve the timestamp: %w", ErrSignatureInvalid)
	}
	offset += len(timestamp) + 1 // skip " "
	if offset >= len(b) {
		return sig, fmt.Errorf("signature stopped after the timestamp: %w", ErrSignatureInvalid)
	}

	micros, err := strconv.ParseInt(string(timestamp), 10, 64)
	if err != nil {
		return sig, fmt.Errorf("invalid timestamp %s: %w", timestamp, err)
	}
	sig.Time = time.UnixMicro(micros)

	timezone := b[offset:]
	tz, err := time.Parse("-0700", string(timezone))
	if err != nil {
		return sig, fmt.Errorf("invalid timezone format %s: %w", timezone, err)
	}
	sig.Time = sig.Time.In(tz.Location())
	return sig, nil
}

// CommitOptions holds a new commit's optional fields.
type CommitOptions struct {
	Message string
	// RestOfHeader is any header lines beyond tree/parent/author/
	// committer, verbatim, joined by "\n" (e.g. a "gpgsig ..." block).
	// It exists so a commit built from a parsed object round-trips
	// without losing header keys this store doesn't otherwise model.
	RestOfHeader string
	// Committer is the person recording the commit. Defaults to the
	// author if left zero.
	Committer Signature
	ParentIDs []githash.Oid
}

// Commit is a named snapshot: a tree plus the authorship and ancestry
// metadata that turns the object store into a history.
type Commit struct {
	rawObject *Object

	author    Signature
	committer Signature

	restOfHeader string
	message      string

	parentIDs []githash.Oid
	treeID    githash.Oid
}

// NewCommit builds a Commit. treeID and opts.ParentIDs aren't validated
// against the object store; callers are expected to have already
// resolved or written those objects.
func NewCommit(treeID githash.Oid, author Signature, opts *CommitOptions) *Commit {
	c := &Commit{
		treeID:       treeID,
		author:       author,
		committer:    opts.Committer,
		message:      opts.Message,
		parentIDs:    opts.ParentIDs,
		restOfHeader: opts.RestOfHeader,
	}
	if c.committer.IsZero() {
		c.committer = author
	}
	c.rawObject = c.ToObject()
	return c
}

// NewCommitFromObject parses an Object's content as a commit: a run of
// "key value" header lines, a blank line, then the free-form message.
// Any header line this store doesn't model (tree/parent/author/
// committer) is preserved verbatim in RestOfHeader, in the order it was
// found, so round-tripping an imported commit doesn't lose data.
func NewCommitFromObject(o *Object) (*Commit, error) {
	if o.typ != TypeCommit {
		return nil, fmt.Errorf("type %s is not a commit: %w", o.typ, ErrObjectInvalid)
	}
	ci := &Commit{rawObject: o}
	var restOfHeader [][]byte
	offset := 0
	objData := o.Bytes()
	for {
		line := readutil.ReadTo(objData[offset:], '\n')
		offset += len(line) + 1

		if len(line) == 0 && offset == 1 {
			return nil, fmt.Errorf("could not find commit first line: %w", ErrCommitInvalid)
		}
		if len(line) == 0 {
			if offset < len(objData) {
				ci.message = string(objData[offset:])
			}
			break
		}

		kv := bytes.SplitN(line, []byte{' '}, 2)
		var err error
		switch string(kv[0]) {
		case "tree":
			ci.treeID, err = githash.NewOidFromChars(kv[1])
			if err != nil {
				return nil, fmt.Errorf("could not parse tree id %#v: %w", kv[1], err)
			}
		case "parent":
			oid, perr := githash.NewOidFromChars(kv[1])
			if perr != nil {
				return nil, fmt.Errorf("could not parse parent id %#v: %w", kv[1], perr)
			}
			ci.parentIDs = append(ci.parentIDs, oid)
		case "author":
			ci.author, err = NewSignatureFromBytes(kv[1])
			if err != nil {
				return nil, fmt.Errorf("could not parse author signature [%s]: %w", string(kv[1]), err)
			}
		case "committer":
			ci.committer, err = NewSignatureFromBytes(kv[1])
			if err != nil {
				return nil, fmt.Errorf("could not parse committer signature [%s]: %w", string(kv[1]), err)
			}
		default:
			restOfHeader = append(restOfHeader, line)
		}
	}
	ci.restOfHeader = string(bytes.Join(restOfHeader, []byte{'\n'}))

	if ci.author.IsZero() {
		return nil, fmt.Errorf("commit has no author: %w", ErrCommitInvalid)
	}
	if ci.treeID.IsZero() {
		return nil, fmt.Errorf("commit has no tree: %w", ErrCommitInvalid)
	}

	return ci, nil
}

// ID returns the commit object's id.
func (c *Commit) ID() githash.Oid {
	return c.rawObject.ID()
}

// Author returns the Signature of whoever made the changes.
func (c *Commit) Author() Signature {
	return c.author
}

// Committer returns the Signature of whoever recorded the commit.
func (c *Commit) Committer() Signature {
	return c.committer
}

// Message returns the commit message.
func (c *Commit) Message() string {
	return c.message
}

// ParentIDs returns the commit's parents: none for the first commit of
// a branch, one for a regular commit.
func (c *Commit) ParentIDs() []githash.Oid {
	out := make([]githash.Oid, len(c.parentIDs))
	copy(out, c.parentIDs)
	return out
}

// TreeID returns the id of the commit's tree.
func (c *Commit) TreeID() githash.Oid {
	return c.treeID
}

// RestOfHeader returns any header lines beyond tree/parent/author/
// committer, verbatim and in their original order (e.g. a "gpgsig ..."
// block), or "" if the commit carried none.
func (c *Commit) RestOfHeader() string {
	return c.restOfHeader
}

// ToObject renders the commit into its underlying Object.
func (c *Commit) ToObject() *Object {
	if c.rawObject != nil {
		return c.rawObject
	}

	buf := new(bytes.Buffer)
	buf.WriteString("tree ")
	buf.WriteString(c.treeID.String())
	buf.WriteByte('\n')

	for _, p := range c.parentIDs {
		buf.WriteString("parent ")
		buf.WriteString(p.String())
		buf.WriteByte('\n')
	}

	buf.WriteString("author ")
	buf.WriteString(c.Author().String())
	buf.WriteByte('\n')

	buf.WriteString("committer ")
	buf.WriteString(c.Committer().String())
	buf.WriteByte('\n')

	if c.restOfHeader != "" {
		buf.WriteString(c.restOfHeader)
		buf.WriteByte('\n')
	}

	buf.WriteByte('\n')
	buf.WriteString(c.message)
	return New(TypeCommit, buf.Bytes())
}
