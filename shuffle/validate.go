// Package shuffle - validation helpers shared by both constructors.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     errors.go, wrapped with enough context to locate the offender.
package shuffle

import "fmt"

// validateBitSize enforces an even bit width in [2, 64].
//
// Odd widths are rejected rather than truncated: with bitSize/2-wide
// halves, an odd width leaves the top bit outside the (x, y) split and
// the mapping stops being a bijection over [0, 2^bitSize).
//
// Complexity: O(1).
func validateBitSize(bitSize int) error {
	if bitSize < 2 || bitSize > 64 || bitSize%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrBitSize, bitSize)
	}
	return nil
}

// validateTables enforces the schedule shape for explicit tables:
// at least one round, every table exactly 2·maxShuffle long, every
// entry strictly below maxShuffle.
//
// Complexity: O(rounds · 2^(bitSize/2)).
func validateTables(tables [][]uint64, maxShuffle uint64) error {
	if len(tables) < 1 {
		return fmt.Errorf("%w: got %d round tables", ErrRounds, len(tables))
	}
	wantLen := int(2 * maxShuffle)
	for r, table := range tables {
		if len(table) != wantLen {
			return fmt.Errorf("%w: round %d has %d entries, want %d",
				ErrTableLength, r, len(table), wantLen)
		}
		for i, e := range table {
			if e >= maxShuffle {
				return fmt.Errorf("%w: round %d position %d holds %d, want < %d",
					ErrTableEntry, r, i, e, maxShuffle)
			}
		}
	}
	return nil
}
