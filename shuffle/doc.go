// Package shuffle implements a keyed, reversible permutation of fixed-width
// unsigned integers: shuffle sequential IDs so outsiders cannot read
// ordering or adjacency, while key holders can recover the original.
//
// 🚀 What is shuffle?
//
//	A deterministic bijection over [0, 2^bitSize) built from a small
//	table-driven mixing network.  Typical uses:
//	  • Obfuscating auto-increment database IDs in URLs
//	  • Hiding row counts and insertion order from external observers
//	  • Stable, reversible "random-looking" renumbering of sequences
//
// ✨ Key features:
//   - exact inverse: Decode(Encode(v)) == v for every v in the domain
//   - bijection by construction: no collisions and full coverage for any seed
//   - seed-deterministic key schedule: same (bitSize, seed, rounds) ⇒
//     same cipher, on any machine
//   - immutable after construction; safe for unlocked concurrent use
//   - O(rounds) table lookups per call, zero allocations
//
// ⚙️ Usage:
//
//	import "github.com/willmcgugan/shuffleid/shuffle"
//
//	c, err := shuffle.FromSeed(32, secretSeed)
//	if err != nil {
//	  // handle ErrBitSize / ErrRounds
//	}
//
//	public, _ := c.Encode(rowID)   // expose this
//	rowID, _ = c.Decode(public)    // recover the original
//
// How it works:
//
//	A value is split into low and high halves (x, y).  Each round adds a
//	keyed table entry to x, then to y, modulo 2^(bitSize/2).  Modular
//	addition is exactly invertible, so decoding replays the rounds in
//	reverse with subtraction.  The round tables are drawn from a PRNG
//	seeded with the secret, so the whole schedule is reproducible from
//	(bitSize, seed, rounds) alone.
//
// This is an obfuscation primitive, not a vetted cipher: do not use it
// where cryptographic security is required.
//
// Performance:
//
//   - Encode/Decode: O(rounds) time, no allocations
//   - FromSeed:      O(rounds · 2^(bitSize/2)) time and memory (the tables)
//
// See example_test.go for runnable examples.
package shuffle
