// Package shuffle - deterministic key-schedule derivation.
//
// This file centralizes all pseudorandom generation for the cipher.
//
// Goals:
//   - Determinism: same (bitSize, seed, rounds) ⇒ identical tables on
//     every platform. This is the entire basis for decode correctness
//     and for a seed holder reconstructing the cipher independently.
//   - Encapsulation: a single seeded source; no time-based randomness.
//   - Safety: no panics or logging; only sentinel errors from errors.go.
//
// The generator is math/rand seeded verbatim with the secret. Seed 0 is
// NOT remapped: key material must follow the caller's seed exactly, or
// two parties holding the same key disagree.
package shuffle

import (
	"fmt"
	"math/rand"
)

// NewSchedule derives the ordered round tables for a cipher of the
// given bit width. seed is the secret key; rounds is the schedule
// length (>= 1).
//
// Each table holds 2·2^(bitSize/2) entries, every entry uniform in
// [0, 2^(bitSize/2)). Draws are consumed in a fixed order (outer loop
// over rounds, inner loop over table positions, one draw per entry),
// so identical inputs always yield identical tables.
//
// Returns ErrBitSize or ErrRounds on invalid configuration.
//
// Complexity: O(rounds · 2^(bitSize/2)) time and memory.
func NewSchedule(bitSize int, seed int64, rounds int) ([][]uint64, error) {
	if err := validateBitSize(bitSize); err != nil {
		return nil, err
	}
	if rounds < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrRounds, rounds)
	}

	halfSize := bitSize / 2
	maxShuffle := int64(1) << halfSize
	tableLen := 2 * maxShuffle

	rng := rand.New(rand.NewSource(seed))
	tables := make([][]uint64, rounds)
	for r := range tables {
		table := make([]uint64, tableLen)
		for i := range table {
			// Int63n guarantees the [0, maxShuffle) range; the cipher's
			// invertibility relies on every entry staying below maxShuffle.
			table[i] = uint64(rng.Int63n(maxShuffle))
		}
		tables[r] = table
	}

	return tables, nil
}
