// Package wtwalk walks a working tree and returns the stat-like
// metadata the staging index needs for each regular file.
package wtwalk

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Stat carries the subset of a file's metadata an index entry encodes.
type Stat struct {
	Path       string
	Size       int64
	CTimeSec   uint32
	CTimeNsec  uint32
	MTimeSec   uint32
	MTimeNsec  uint32
	Dev        uint32
	Ino        uint32
	UID        uint32
	GID        uint32
	Executable bool
}

// Walk collects the Stat of every regular file reachable from the
// given paths, relative to root. A path naming a directory is expanded
// to every regular file beneath it; a path naming a file is used as-is.
func Walk(fs afero.Fs, root string, paths []string) ([]Stat, error) {
	var stats []Stat

	for _, p := range paths {
		abs := filepath.Join(root, p)
		info, err := fs.Stat(abs)
		if err != nil {
			return nil, xerrors.Errorf("could not stat %s: %w", p, err)
		}

		if !info.IsDir() {
			s, err := statFile(fs, root, abs, info)
			if err != nil {
				return nil, err
			}
			stats = append(stats, s)
			continue
		}

		err = afero.Walk(fs, abs, func(walked string, walkedInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if walkedInfo.IsDir() {
				if walkedInfo.Name() == ".git" {
					return filepath.SkipDir
				}
				return nil
			}
			s, err := statFile(fs, root, walked, walkedInfo)
			if err != nil {
				return err
			}
			stats = append(stats, s)
			return nil
		})
		if err != nil {
			return nil, xerrors.Errorf("could not walk %s: %w", p, err)
		}
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Path < stats[j].Path
	})
	return stats, nil
}

func statFile(fs afero.Fs, root, abs string, info os.FileInfo) (Stat, error) {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return Stat{}, xerrors.Errorf("could not compute relative path for %s: %w", abs, err)
	}

	s := Stat{
		Path:       filepath.ToSlash(rel),
		Size:       info.Size(),
		MTimeSec:   uint32(info.ModTime().Unix()),
		Executable: info.Mode()&0o100 != 0,
	}
	// ctime, dev, ino, uid and gid aren't portably exposed through
	// afero's os.FileInfo. ctime is filled in from mtime; dev, ino, uid
	// and gid default to zero, which git itself tolerates since they're
	// a cache-invalidation hint, not an identity.
	s.CTimeSec = s.MTimeSec

	return s, nil
}
