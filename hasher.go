package bloom

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// BytesHasher digests raw bytes with xxhash.
func BytesHasher(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// StringHasher digests a string without copying it into a byte slice.
func StringHasher(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Uint16Hasher digests the big-endian encoding of i.
func Uint16Hasher(i uint16) uint64 {
	data := make([]byte, 2)
	binary.BigEndian.PutUint16(data, i)
	return xxhash.Sum64(data)
}

// Uint32Hasher digests the big-endian encoding of i.
func Uint32Hasher(i uint32) uint64 {
	data := make([]byte, 4)
	binary.BigEndian.PutUint32(data, i)
	return xxhash.Sum64(data)
}

// Uint64Hasher digests the big-endian encoding of i.
func Uint64Hasher(i uint64) uint64 {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, i)
	return xxhash.Sum64(data)
}

// NewString builds a string filter with the default hasher.
func NewString(bitSize, setSize int) (*Filter[string], error) {
	return New(bitSize, setSize, StringHasher)
}

// NewStringWithHashCount builds a string filter with an explicit hash
// rounds count and the default hasher.
func NewStringWithHashCount(bitSize, setSize, hashCount int) (*Filter[string], error) {
	return NewWithHashCount(bitSize, setSize, hashCount, StringHasher)
}

// NewBytes builds a byte-slice filter with the default hasher.
func NewBytes(bitSize, setSize int) (*Filter[[]byte], error) {
	return New(bitSize, setSize, BytesHasher)
}
