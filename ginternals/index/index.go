// Package index implements the binary staging-area file: the list of
// paths and blob hashes that the next commit would capture.
//
// The teacher's own ginternals/index.go was a documentation-only stub
// (comments describing the DIRC layout, no codec); this package is new
// code written to that layout, following the header/body split and
// xerrors wrapping style the teacher uses for its object codec.
package index

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/arjunvc/gitcore/ginternals"
	"github.com/arjunvc/gitcore/ginternals/githash"
	"github.com/arjunvc/gitcore/ginternals/object"
	"golang.org/x/xerrors"
)

// Magic is the 4-byte signature every index file starts with.
const Magic = "DIRC"

// Version is the only on-disk index format version this core writes
// or accepts.
const Version uint32 = 2

// headerSize is len(Magic) + version(u32) + count(u32).
const headerSize = 4 + 4 + 4

// metadataFieldCount is the number of fixed-width uint32 fields at the
// front of each entry, before the hash.
const metadataFieldCount = 10

// Entry is one staged path.
type Entry struct {
	CTimeSec  uint32
	CTimeNano uint32
	MTimeSec  uint32
	MTimeNano uint32
	Dev       uint32
	Ino       uint32
	Mode      object.TreeObjectMode
	UID       uint32
	GID       uint32
	Size      uint32
	SHA1      githash.Oid
	Name      string
}

// Index is the parsed contents of .git/index: the staged snapshot of
// what the next commit would contain.
type Index struct {
	Version uint32
	Entries []Entry
}

// New returns an empty, version-2 index.
func New() *Index {
	return &Index{Version: Version}
}

// Insert upserts entries by name: an existing entry with the same name
// is replaced, a new one is appended. The entry list is re-sorted by
// name afterwards.
func (idx *Index) Insert(entries ...Entry) {
	byName := make(map[string]int, len(idx.Entries))
	for i, e := range idx.Entries {
		byName[e.Name] = i
	}

	for _, e := range entries {
		if i, ok := byName[e.Name]; ok {
			idx.Entries[i] = e
			continue
		}
		idx.Entries = append(idx.Entries, e)
		byName[e.Name] = len(idx.Entries) - 1
	}

	sort.Slice(idx.Entries, func(i, j int) bool {
		return idx.Entries[i].Name < idx.Entries[j].Name
	})
}

// Remove drops the entry with the given name, if present.
func (idx *Index) Remove(name string) {
	for i, e := range idx.Entries {
		if e.Name == name {
			idx.Entries = append(idx.Entries[:i], idx.Entries[i+1:]...)
			return
		}
	}
}

// Encode renders the index into its on-disk binary form.
func (idx *Index) Encode() []byte {
	buf := new(bytes.Buffer)
	buf.WriteString(Magic)
	writeU32(buf, idx.Version)
	writeU32(buf, uint32(len(idx.Entries)))

	for _, e := range idx.Entries {
		start := buf.Len()

		writeU32(buf, e.CTimeSec)
		writeU32(buf, e.CTimeNano)
		writeU32(buf, e.MTimeSec)
		writeU32(buf, e.MTimeNano)
		writeU32(buf, e.Dev)
		writeU32(buf, e.Ino)
		writeU32(buf, uint32(e.Mode))
		writeU32(buf, e.UID)
		writeU32(buf, e.GID)
		writeU32(buf, e.Size)
		buf.Write(e.SHA1.Bytes())

		nameBytes := []byte(e.Name)
		writeU16(buf, uint16(len(nameBytes)))
		buf.Write(nameBytes)

		total := buf.Len() - start
		padding := 8 - (total % 8)
		buf.Write(make([]byte, padding))
	}

	return buf.Bytes()
}

// Decode parses an on-disk index file. Any structural inconsistency
// (bad magic, unsupported version, truncated body, an out-of-range
// name length, or an unrecognized mode) fails with an error wrapping
// ginternals.ErrCorruptIndex.
func Decode(data []byte) (*Index, error) {
	if len(data) < headerSize || string(data[:4]) != Magic {
		return nil, xerrors.Errorf("missing index magic: %w", ginternals.ErrCorruptIndex)
	}

	version := binary.BigEndian.Uint32(data[4:8])
	if version != Version {
		return nil, xerrors.Errorf("unsupported index version %d: %w", version, ginternals.ErrCorruptIndex)
	}
	count := binary.BigEndian.Uint32(data[8:12])

	idx := &Index{Version: version}
	offset := headerSize
	for i := uint32(0); i < count; i++ {
		entryStart := offset
		fixedEnd := offset + metadataFieldCount*4 + githash.OidSize
		if fixedEnd > len(data) {
			return nil, xerrors.Errorf("entry %d: truncated fixed fields: %w", i, ginternals.ErrCorruptIndex)
		}

		e := Entry{}
		e.CTimeSec = binary.BigEndian.Uint32(data[offset:])
		offset += 4
		e.CTimeNano = binary.BigEndian.Uint32(data[offset:])
		offset += 4
		e.MTimeSec = binary.BigEndian.Uint32(data[offset:])
		offset += 4
		e.MTimeNano = binary.BigEndian.Uint32(data[offset:])
		offset += 4
		e.Dev = binary.BigEndian.Uint32(data[offset:])
		offset += 4
		e.Ino = binary.BigEndian.Uint32(data[offset:])
		offset += 4
		mode := binary.BigEndian.Uint32(data[offset:])
		offset += 4
		e.Mode = object.TreeObjectMode(mode)
		if !e.Mode.IsValid() {
			return nil, xerrors.Errorf("entry %d: unsupported mode %o: %w", i, mode, ginternals.ErrCorruptIndex)
		}
		e.UID = binary.BigEndian.Uint32(data[offset:])
		offset += 4
		e.GID = binary.BigEndian.Uint32(data[offset:])
		offset += 4
		e.Size = binary.BigEndian.Uint32(data[offset:])
		offset += 4

		sha1, err := githash.NewOidFromBytes(data[offset : offset+githash.OidSize])
		if err != nil {
			return nil, xerrors.Errorf("entry %d: invalid hash: %w", i, ginternals.ErrCorruptIndex)
		}
		e.SHA1 = sha1
		offset += githash.OidSize

		if offset+2 > len(data) {
			return nil, xerrors.Errorf("entry %d: truncated name length: %w", i, ginternals.ErrCorruptIndex)
		}
		nameLen := int(binary.BigEndian.Uint16(data[offset:]))
		offset += 2

		if offset+nameLen > len(data) {
			return nil, xerrors.Errorf("entry %d: name length past end of buffer: %w", i, ginternals.ErrCorruptIndex)
		}
		e.Name = string(data[offset : offset+nameLen])
		offset += nameLen

		total := offset - entryStart
		padding := 8 - (total % 8)
		if offset+padding > len(data) {
			return nil, xerrors.Errorf("entry %d: truncated padding: %w", i, ginternals.ErrCorruptIndex)
		}
		offset += padding

		idx.Entries = append(idx.Entries, e)
	}

	return idx, nil
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}
