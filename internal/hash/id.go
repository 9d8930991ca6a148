// Package hash provides xxHash64 helpers for identifying label spaces.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes the xxHash64 of an ordered list of keys.
//
// Each key is preceded by its uvarint-encoded byte length, so distinct key
// lists always hash distinct inputs regardless of the bytes a key contains.
// The order of keys is significant.
func Fingerprint(keys []string) uint64 {
	d := xxhash.New()

	var lenBuf [binary.MaxVarintLen64]byte
	for _, k := range keys {
		_, _ = d.Write(binary.AppendUvarint(lenBuf[:0], uint64(len(k))))
		_, _ = d.WriteString(k)
	}

	return d.Sum64()
}
