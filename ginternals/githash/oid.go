// Package githash contains the object-id type used to address every
// object in the store.
package githash

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
)

// OidSize is the length of an Oid, in bytes.
const OidSize = 20

// HexSize is the length of an Oid once hex-encoded.
const HexSize = OidSize * 2

// ErrInvalidOid is returned when a given value isn't a valid Oid.
var ErrInvalidOid = errors.New("invalid oid")

// NullOid is the zero-value Oid.
var NullOid = Oid{}

// Oid is a SHA-1 object id: the 20 raw bytes of the digest.
//
// This core only ever produces SHA-1 oids; a SHA-256 variant is out of
// scope, so unlike the pluggable-hash design this is derived from, Oid
// is a concrete array rather than an interface.
type Oid [OidSize]byte

// Sum returns the Oid of the given content.
func Sum(content []byte) Oid {
	return sha1.Sum(content)
}

// NewOidFromHex parses a 40-character lowercase hex string into an Oid.
// Any other length, or non-hex characters, is rejected.
func NewOidFromHex(id string) (Oid, error) {
	if len(id) != HexSize {
		return NullOid, ErrInvalidOid
	}
	raw, err := hex.DecodeString(id)
	if err != nil {
		return NullOid, ErrInvalidOid
	}
	return NewOidFromBytes(raw)
}

// NewOidFromChars is NewOidFromHex taking the hex string as a byte slice,
// useful when the hex digest was read straight out of an object buffer.
func NewOidFromChars(id []byte) (Oid, error) {
	return NewOidFromHex(string(id))
}

// NewOidFromBytes builds an Oid from exactly OidSize raw bytes.
func NewOidFromBytes(raw []byte) (Oid, error) {
	if len(raw) != OidSize {
		return NullOid, ErrInvalidOid
	}
	var oid Oid
	copy(oid[:], raw)
	return oid, nil
}

// Bytes returns the raw 20-byte digest.
func (o Oid) Bytes() []byte {
	return o[:]
}

// String renders the Oid as 40 lowercase hex digits.
func (o Oid) String() string {
	return hex.EncodeToString(o[:])
}

// IsZero reports whether o is the zero-value Oid.
func (o Oid) IsZero() bool {
	return o == NullOid
}

// Split returns the 2-char directory prefix and 38-char suffix used to
// build the loose object path objects/<prefix>/<suffix>.
func (o Oid) Split() (prefix, suffix string) {
	s := o.String()
	return s[:2], s[2:]
}
