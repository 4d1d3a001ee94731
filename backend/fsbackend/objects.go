package fsbackend

import (
	"compress/zlib"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arjunvc/gitcore/ginternals"
	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/arjunvc/gitcore/ginternals/object"
	"github.com/arjunvc/gitcore/internal/errutil"
	"github.com/arjunvc/gitcore/internal/readutil"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

func (b *Backend) looseObjectPath(oid githash.Oid) string {
	prefix, suffix := oid.Split()
	return filepath.Join(b.cfg.ObjectDirPath, prefix, suffix)
}

// Object returns the object stored under oid.
func (b *Backend) Object(oid githash.Oid) (*object.Object, error) {
	if cached, found := b.cache.Get(oid); found {
		if o, ok := cached.(*object.Object); ok {
			return o, nil
		}
	}

	o, err := b.readLooseObject(oid)
	if err != nil {
		return nil, err
	}
	b.cache.Add(oid, o)
	return o, nil
}

// readLooseObject reads and decodes the object at its canonical path.
// The format on disk is zlib-compressed "<type> <size>\x00<content>".
func (b *Backend) readLooseObject(oid githash.Oid) (o *object.Object, err error) {
	p := b.looseObjectPath(oid)
	f, err := b.fs.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerrors.Errorf("object %s: %w", oid, ginternals.ErrObjectNotFound)
		}
		return nil, xerrors.Errorf("could not open object %s at %s: %w", oid, p, err)
	}
	defer errutil.Close(f, &err)

	zr, err := zlib.NewReader(f)
	if err != nil {
		return nil, xerrors.Errorf("could not decompress object %s: %w", oid, err)
	}
	defer errutil.Close(zr, &err)

	buf, err := io.ReadAll(zr)
	if err != nil {
		return nil, xerrors.Errorf("could not read object %s: %w", oid, err)
	}

	typ := readutil.ReadTo(buf, ' ')
	if typ == nil {
		return nil, xerrors.Errorf("object %s has no type header", oid)
	}
	oType, err := object.NewTypeFromString(string(typ))
	if err != nil {
		return nil, xerrors.Errorf("object %s has unsupported type %q: %w", oid, typ, err)
	}

	offset := len(typ) + 1
	size := readutil.ReadTo(buf[offset:], 0)
	if size == nil {
		return nil, xerrors.Errorf("object %s has no size header", oid)
	}
	oSize, err := strconv.Atoi(string(size))
	if err != nil {
		return nil, xerrors.Errorf("object %s has invalid size %q: %w", oid, size, err)
	}
	offset += len(size) + 1
	content := buf[offset:]

	if len(content) != oSize {
		return nil, xerrors.Errorf("object %s declares size %d but has %d bytes", oid, oSize, len(content))
	}

	return object.New(oType, content), nil
}

// HasObject reports whether oid is present in the store.
func (b *Backend) HasObject(oid githash.Oid) (bool, error) {
	_, err := b.Object(oid)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ginternals.ErrObjectNotFound) {
		return false, nil
	}
	return false, err
}

// WriteObject persists o. If an object with the same id already
// exists, the write is skipped: loose objects are immutable.
func (b *Backend) WriteObject(o *object.Object) (githash.Oid, error) {
	oid := o.ID()

	found, err := b.HasObject(oid)
	if err != nil {
		return githash.NullOid, xerrors.Errorf("could not check for existing object %s: %w", oid, err)
	}
	if found {
		return oid, nil
	}

	data, err := o.Compress()
	if err != nil {
		return githash.NullOid, xerrors.Errorf("could not compress object %s: %w", oid, err)
	}

	p := b.looseObjectPath(oid)
	if err := b.fs.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return githash.NullOid, xerrors.Errorf("could not create directory for object %s: %w", oid, err)
	}
	// Loose objects are write-once: 0444 marks them read-only on disk.
	if err := afero.WriteFile(b.fs, p, data, 0o444); err != nil {
		return githash.NullOid, xerrors.Errorf("could not persist object %s: %w", oid, err)
	}

	b.cache.Add(oid, o)
	return oid, nil
}
