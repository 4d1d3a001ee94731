package object

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/arjunvc/gitcore/internal/readutil"
	"golang.org/x/xerrors"
)

// Tree is a flat list of named entries, each pointing at a blob or at
// another tree.
type Tree struct {
	rawObject *Object
	// entries is kept sorted by sortKey so two trees built from the same
	// entry set always encode to the same bytes.
	entries []TreeEntry
}

// TreeEntry is one row of a tree: a name, the mode it was recorded
// with, and the id of the object it points at.
type TreeEntry struct {
	Path string
	ID   githash.Oid
	Mode TreeObjectMode
}

// sortKey is the name a tree entry sorts by. Directories sort as if
// their name had a trailing slash, so "foo" (a file) sorts before
// "foo.txt" but "foo" (a directory, compared as "foo/") sorts after it.
func (e TreeEntry) sortKey() string {
	if e.Mode == ModeDirectory {
		return e.Path + "/"
	}
	return e.Path
}

// NewTree builds a Tree from entries, sorting them into canonical order.
func NewTree(entries []TreeEntry) *Tree {
	sorted := make([]TreeEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].sortKey() < sorted[j].sortKey()
	})

	t := &Tree{entries: sorted}
	t.rawObject = t.ToObject()
	return t
}

// NewTreeFromObject parses an Object's content as a tree. Each entry is
// "<octal mode> <name>\x00<20 raw id bytes>", with entries packed back
// to back.
func NewTreeFromObject(o *Object) (*Tree, error) {
	if o.Type() != TypeTree {
		return nil, xerrors.Errorf("type %s is not a tree: %w", o.typ, ErrObjectInvalid)
	}

	entries := []TreeEntry{}

	objData := o.Bytes()
	offset := 0
	for i := 1; offset < len(objData); i++ {
		entry := TreeEntry{}

		data := readutil.ReadTo(objData[offset:], ' ')
		if len(data) == 0 {
			return nil, xerrors.Errorf("could not retrieve the mode of entry %d: %w", i, ErrTreeInvalid)
		}
		offset += len(data) + 1 // +1 for the space
		mode, err := strconv.ParseInt(string(data), 8, 32)
		if err != nil {
			return nil, xerrors.Errorf("could not parse mode of entry %d: %w", i, ErrTreeInvalid)
		}
		entry.Mode = TreeObjectMode(mode)
		if !entry.Mode.IsValid() {
			return nil, xerrors.Errorf("entry %d has unsupported mode %o: %w", i, mode, ErrTreeInvalid)
		}

		name := readutil.ReadTo(objData[offset:], 0)
		if len(name) == 0 {
			return nil, xerrors.Errorf("could not retrieve the path of entry %d: %w", i, ErrTreeInvalid)
		}
		offset += len(name) + 1 // +1 for the NUL
		entry.Path = string(name)

		if offset+githash.OidSize > len(objData) {
			return nil, xerrors.Errorf("not enough bytes for the id of entry %d: %w", i, ErrTreeInvalid)
		}
		entry.ID, err = githash.NewOidFromBytes(objData[offset : offset+githash.OidSize])
		if err != nil {
			return nil, xerrors.Errorf("invalid id for entry %d: %w", i, ErrTreeInvalid)
		}
		offset += githash.OidSize

		entries = append(entries, entry)
	}

	return &Tree{rawObject: o, entries: entries}, nil
}

// Entries returns a copy of the tree's entries, in canonical order.
func (t *Tree) Entries() []TreeEntry {
	out := make([]TreeEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// ID returns the tree object's id.
func (t *Tree) ID() githash.Oid {
	return t.rawObject.ID()
}

// ToObject renders the tree into its underlying Object.
func (t *Tree) ToObject() *Object {
	if t.rawObject != nil {
		return t.rawObject
	}

	buf := new(bytes.Buffer)
	for _, e := range t.entries {
		buf.WriteString(strconv.FormatInt(int64(e.Mode), 8))
		buf.WriteByte(' ')
		buf.WriteString(e.Path)
		buf.WriteByte(0)
		buf.Write(e.ID.Bytes())
	}
	return New(TypeTree, buf.Bytes())
}
