// Package hash provides the xxHash64 helper used by the archive package.
// Value.Hash in package record uses xxhash directly, not this package.
package hash

import "github.com/cespare/xxhash/v2"

// Bytes computes the xxHash64 of data in a single shot. It is the basis of
// Archive.Checksum, which hashes a whole encoded buffer.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
