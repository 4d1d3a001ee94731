package fsbackend

import (
	"os"

	"github.com/arjunvc/gitcore/ginternals"
	"github.com/arjunvc/gitcore/ginternals/index"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// ReadIndex returns the current staging index, or an empty one if no
// index file exists yet.
func (b *Backend) ReadIndex() (*index.Index, error) {
	p := ginternals.IndexPath(b.cfg)
	data, err := afero.ReadFile(b.fs, p)
	if err != nil {
		if os.IsNotExist(err) {
			return index.New(), nil
		}
		return nil, xerrors.Errorf("could not read index: %w", err)
	}

	idx, err := index.Decode(data)
	if err != nil {
		return nil, xerrors.Errorf("could not decode index: %w", err)
	}
	return idx, nil
}

// WriteIndex persists the index in full, replacing any prior content.
func (b *Backend) WriteIndex(idx *index.Index) error {
	p := ginternals.IndexPath(b.cfg)
	if err := afero.WriteFile(b.fs, p, idx.Encode(), 0o644); err != nil {
		return xerrors.Errorf("could not write index: %w", err)
	}
	return nil
}
