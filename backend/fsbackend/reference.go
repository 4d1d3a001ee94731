package fsbackend

import (
	"os"
	"path/filepath"

	"github.com/arjunvc/gitcore/backend"
	"github.com/arjunvc/gitcore/ginternals"
	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

func (b *Backend) refPath(ref ginternals.Ref) string {
	return filepath.Join(b.cfg.GitDirPath, filepath.FromSlash(ref.Path()))
}

// Reference returns the commit id ref points at.
func (b *Backend) Reference(ref ginternals.Ref) (githash.Oid, error) {
	data, err := afero.ReadFile(b.fs, b.refPath(ref))
	if err != nil {
		if os.IsNotExist(err) {
			return githash.NullOid, xerrors.Errorf("ref %s: %w", ref.Name, ginternals.ErrRefNotFound)
		}
		return githash.NullOid, xerrors.Errorf("could not read ref %s: %w", ref.Name, err)
	}

	oid, err := ginternals.DecodeRefTarget(data)
	if err != nil {
		return githash.NullOid, xerrors.Errorf("ref %s is corrupt: %w", ref.Name, err)
	}
	return oid, nil
}

// WriteReference creates or overwrites ref.
func (b *Backend) WriteReference(ref ginternals.Ref, target githash.Oid) error {
	if !ginternals.IsRefNameValid(ref.Name) {
		return xerrors.Errorf("ref name %q: %w", ref.Name, ginternals.ErrRefNameInvalid)
	}

	p := b.refPath(ref)
	if err := b.fs.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return xerrors.Errorf("could not create directory for ref %s: %w", ref.Name, err)
	}
	if err := afero.WriteFile(b.fs, p, ginternals.EncodeRefTarget(target), 0o644); err != nil {
		return xerrors.Errorf("could not write ref %s: %w", ref.Name, err)
	}
	return nil
}

// DeleteReference removes ref.
func (b *Backend) DeleteReference(ref ginternals.Ref) error {
	p := b.refPath(ref)
	if err := b.fs.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return xerrors.Errorf("ref %s: %w", ref.Name, ginternals.ErrRefNotFound)
		}
		return xerrors.Errorf("could not delete ref %s: %w", ref.Name, err)
	}
	return nil
}

// WalkReferences runs f against every stored ref of the given kind.
func (b *Backend) WalkReferences(kind ginternals.RefKind, f backend.RefWalkFunc) error {
	var root string
	switch kind {
	case ginternals.RefTag:
		root = filepath.Join(b.cfg.GitDirPath, "refs", "tags")
	default:
		root = filepath.Join(b.cfg.GitDirPath, "refs", "heads")
	}

	exists, err := afero.DirExists(b.fs, root)
	if err != nil {
		return xerrors.Errorf("could not inspect %s: %w", root, err)
	}
	if !exists {
		return nil
	}

	return afero.Walk(b.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return xerrors.Errorf("could not compute ref name for %s: %w", p, err)
		}
		name := filepath.ToSlash(rel)

		var ref ginternals.Ref
		if kind == ginternals.RefTag {
			ref = ginternals.NewTagRef(name)
		} else {
			ref = ginternals.NewBranchRef(name)
		}

		target, err := b.Reference(ref)
		if err != nil {
			return xerrors.Errorf("could not resolve ref %s: %w", name, err)
		}
		return f(ref, target)
	})
}

// ReadHead returns the current HEAD state.
func (b *Backend) ReadHead() (ginternals.Head, error) {
	p := filepath.Join(b.cfg.GitDirPath, ginternals.HeadFileName)
	data, err := afero.ReadFile(b.fs, p)
	if err != nil {
		return ginternals.Head{}, xerrors.Errorf("could not read HEAD: %w", err)
	}

	head, err := ginternals.DecodeHead(data)
	if err != nil {
		return ginternals.Head{}, xerrors.Errorf("HEAD is corrupt: %w", err)
	}
	return head, nil
}

// WriteHead overwrites HEAD in full.
func (b *Backend) WriteHead(h ginternals.Head) error {
	p := filepath.Join(b.cfg.GitDirPath, ginternals.HeadFileName)
	if err := afero.WriteFile(b.fs, p, h.Encode(), 0o644); err != nil {
		return xerrors.Errorf("could not write HEAD: %w", err)
	}
	return nil
}
