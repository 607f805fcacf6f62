// Package hash provides the deterministic, fixed-width byte hash that backs
// type identity throughout the registry.
//
// The bit width is platform-configurable, mirroring the C++ source's
// compile-time HASH_BITNESS switch; here it is a package variable read on
// every call that does not name a width (see Width/DefaultWidth), matching
// how the rest of this repo
// treats ambient configuration as plain settable variables rather than a
// config-file layer.
package hash

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// Width selects how many low bits of a Hash are significant.
type Width int

const (
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
)

// DefaultWidth is consulted by HashBytes and HashOf when no explicit width
// is requested. Set it before the first descriptor is registered; changing
// it afterwards would silently desynchronize previously computed hashes.
var DefaultWidth = Width64

// Hash is a fixed-width, deterministic identity derived from a byte
// sequence via MurmurHash3. Only the bits implied by Width are meaningful;
// the rest are zero.
type Hash struct {
	lo, hi uint64
	width  Width
}

// Width reports the configured bit width of h.
func (h Hash) Width() Width { return h.width }

// Uint64 returns the low 64 bits, valid for Width32 and Width64 hashes.
func (h Hash) Uint64() uint64 { return h.lo }

// Uint32 returns the low 32 bits, valid for Width32 hashes.
func (h Hash) Uint32() uint32 { return uint32(h.lo) }

// Bytes128 returns the full 128-bit value regardless of configured width,
// zero-extended for narrower widths.
func (h Hash) Bytes128() (uint64, uint64) { return h.hi, h.lo }

// IsZero reports whether h carries no bits, i.e. it was never computed.
func (h Hash) IsZero() bool { return h.lo == 0 && h.hi == 0 }

// Equal reports whether two hashes carry the same bits and width.
func (h Hash) Equal(o Hash) bool {
	return h.width == o.width && h.lo == o.lo && h.hi == o.hi
}

// rawBytes serializes h to a canonical byte slice, used both as the final
// output representation and as an input when composing hashes in HashOf.
func (h Hash) rawBytes() []byte {
	switch h.width {
	case Width32:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(h.lo))
		return b
	case Width128:
		b := make([]byte, 16)
		binary.LittleEndian.PutUint64(b[:8], h.lo)
		binary.LittleEndian.PutUint64(b[8:], h.hi)
		return b
	default: // Width64
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, h.lo)
		return b
	}
}

// HashBytes computes the MurmurHash3 digest of data at DefaultWidth.
func HashBytes(data []byte) Hash {
	return HashBytesWidth(data, DefaultWidth)
}

// HashBytesWidth computes the MurmurHash3 digest of data at an explicit
// width, selecting the 32/64/128-bit variant.
func HashBytesWidth(data []byte, w Width) Hash {
	switch w {
	case Width32:
		return Hash{lo: uint64(murmur3.Sum32(data)), width: w}
	case Width128:
		hi, lo := murmur3.Sum128(data)
		return Hash{lo: lo, hi: hi, width: w}
	default:
		return Hash{lo: murmur3.Sum64(data), width: Width64}
	}
}

// HashString is a convenience wrapper for token-shaped identity sources.
func HashString(s string) Hash {
	return HashBytes([]byte(s))
}
