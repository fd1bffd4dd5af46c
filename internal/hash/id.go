package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given match name.
// It is used for duplicate match-name tracking and for callers that want a
// stable 64-bit identifier derived from a match name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
