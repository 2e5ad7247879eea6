// Package shuffleid turns predictable sequential integers (row numbers,
// invoice counters) into opaque, random-looking ones, and back.
//
// 🚀 What is shuffleid?
//
//	A small, pure-Go keyed permutation over [0, 2^bitSize):
//		• Bijective by construction: no collisions, no gaps, under any seed
//		• Exactly reversible: Decode(Encode(v)) == v, always
//		• Deterministic: the whole cipher rebuilds from (bitSize, seed, rounds)
//		• Immutable after construction: share one Cipher across goroutines, no locks
//		• O(rounds) per call, zero allocations on the hot path
//
// ✨ Why shuffle IDs?
//
//   - Exposed sequential IDs leak volume, ordering and adjacency
//   - Hashing breaks reversibility; encryption is heavyweight for an int
//   - A keyed permutation hides the sequence while staying fully recoverable
//
// Everything lives in one subpackage:
//
//	shuffle/ — key-schedule derivation, the Cipher type, Encode/Decode
//
// Quick example:
//
//	c, _ := shuffle.FromSeed(32, secretSeed)
//	public, _ := c.Encode(rowID)
//	rowID, _ = c.Decode(public)
//
// This is an obfuscation primitive, not a vetted cipher: do not reach for
// it where real cryptographic guarantees are required.
//
//	go get github.com/willmcgugan/shuffleid/shuffle
package shuffleid
