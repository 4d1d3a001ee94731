package gitcore

import (
	"sort"
	"strings"

	"github.com/arjunvc/gitcore/backend"
	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/arjunvc/gitcore/ginternals/index"
	"github.com/arjunvc/gitcore/ginternals/object"
	"golang.org/x/xerrors"
)

// blobNode is a leaf: a staged file, already hashed.
type blobNode struct {
	mode object.TreeObjectMode
	oid  githash.Oid
}

// treeNode is an interior node: a directory, keyed by path component.
type treeNode struct {
	children map[string]interface{} // *blobNode or *treeNode
}

func newTreeNode() *treeNode {
	return &treeNode{children: map[string]interface{}{}}
}

// buildTreeGraph turns a flat, path-keyed index into the in-memory
// tree graph that materialize() persists bottom-up.
func buildTreeGraph(entries []index.Entry) (*treeNode, error) {
	root := newTreeNode()

	for _, e := range entries {
		parts := strings.Split(e.Name, "/")
		for _, p := range parts {
			if p == "." || p == ".." || p == "" {
				return nil, xerrors.Errorf("invalid path component %q in %q", p, e.Name)
			}
		}

		cur := root
		for i, p := range parts[:len(parts)-1] {
			next, ok := cur.children[p]
			if !ok {
				child := newTreeNode()
				cur.children[p] = child
				cur = child
				continue
			}
			childTree, ok := next.(*treeNode)
			if !ok {
				return nil, xerrors.Errorf("path %q conflicts with a file at %q", e.Name, strings.Join(parts[:i+1], "/"))
			}
			cur = childTree
		}

		leaf := parts[len(parts)-1]
		cur.children[leaf] = &blobNode{mode: e.Mode, oid: e.SHA1}
	}

	return root, nil
}

// materialize depth-first persists t, returning the tree's object id. Identical subtrees (by content hash) are written at
// most once, since object writes are already no-ops for existing ids.
func materialize(b backend.Backend, t *treeNode) (githash.Oid, error) {
	names := make([]string, 0, len(t.children))
	for name := range t.children {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]object.TreeEntry, 0, len(names))
	for _, name := range names {
		switch child := t.children[name].(type) {
		case *blobNode:
			entries = append(entries, object.TreeEntry{
				Path: name,
				ID:   child.oid,
				Mode: child.mode,
			})
		case *treeNode:
			oid, err := materialize(b, child)
			if err != nil {
				return githash.NullOid, err
			}
			entries = append(entries, object.TreeEntry{
				Path: name,
				ID:   oid,
				Mode: object.ModeDirectory,
			})
		}
	}

	tree := object.NewTree(entries)
	oid, err := b.WriteObject(tree.ToObject())
	if err != nil {
		return githash.NullOid, xerrors.Errorf("could not write tree: %w", err)
	}
	return oid, nil
}

// WriteTree materializes idx into a hierarchy of tree objects and
// returns the root tree's id. Every intermediate subtree is persisted
// along the way; subtrees that already exist on disk are not rewritten.
func (r *Repository) WriteTree(idx *index.Index) (githash.Oid, error) {
	root, err := buildTreeGraph(idx.Entries)
	if err != nil {
		return githash.NullOid, xerrors.Errorf("could not build tree graph: %w", err)
	}
	return materialize(r.dotGit, root)
}
