package gitcore

import (
	"path/filepath"

	"github.com/arjunvc/gitcore/ginternals/index"
	"github.com/arjunvc/gitcore/ginternals/object"
	"github.com/arjunvc/gitcore/internal/wtwalk"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Add stages paths (files or directories, working-tree-relative) into
// the index: each file is hashed and written as a blob, then upserted
// into the index by path.
func (r *Repository) Add(fs afero.Fs, paths []string) error {
	stats, err := wtwalk.Walk(fs, r.cfg.WorkTreePath, paths)
	if err != nil {
		return xerrors.Errorf("could not walk working tree: %w", err)
	}

	idx, err := r.dotGit.ReadIndex()
	if err != nil {
		return xerrors.Errorf("could not read index: %w", err)
	}

	entries := make([]index.Entry, 0, len(stats))
	for _, s := range stats {
		content, err := afero.ReadFile(fs, filepath.Join(r.cfg.WorkTreePath, filepath.FromSlash(s.Path)))
		if err != nil {
			return xerrors.Errorf("could not read %s: %w", s.Path, err)
		}

		oid, err := r.dotGit.WriteObject(object.New(object.TypeBlob, content))
		if err != nil {
			return xerrors.Errorf("could not write blob for %s: %w", s.Path, err)
		}

		mode := object.ModeFile
		if s.Executable {
			mode = object.ModeExecutable
		}

		entries = append(entries, index.Entry{
			CTimeSec:  s.CTimeSec,
			CTimeNano: s.CTimeNsec,
			MTimeSec:  s.MTimeSec,
			MTimeNano: s.MTimeNsec,
			Dev:       s.Dev,
			Ino:       s.Ino,
			Mode:      mode,
			UID:       s.UID,
			GID:       s.GID,
			Size:      uint32(s.Size),
			SHA1:      oid,
			Name:      s.Path,
		})
	}

	idx.Insert(entries...)
	if err := r.dotGit.WriteIndex(idx); err != nil {
		return xerrors.Errorf("could not write index: %w", err)
	}
	return nil
}

// UpdateIndexPaths stages paths into the index the way `update-index`
// does, as opposed to `add`: unless addNew is true, every path must
// already be tracked, and an untracked path is rejected rather than
// silently staged.
func (r *Repository) UpdateIndexPaths(fs afero.Fs, paths []string, addNew bool) error {
	if !addNew {
		idx, err := r.dotGit.ReadIndex()
		if err != nil {
			return xerrors.Errorf("could not read index: %w", err)
		}
		tracked := make(map[string]bool, len(idx.Entries))
		for _, e := range idx.Entries {
			tracked[e.Name] = true
		}

		for _, p := range paths {
			rel, err := filepath.Rel(r.cfg.WorkTreePath, filepath.Join(r.cfg.WorkTreePath, p))
			if err != nil {
				return xerrors.Errorf("could not compute relative path for %s: %w", p, err)
			}
			name := filepath.ToSlash(rel)
			if !tracked[name] {
				return xerrors.Errorf("file %s is not in the index. Use --add to add it", name)
			}
		}
	}

	return r.Add(fs, paths)
}
