package shuffle

import "errors"

var (
	// ErrBitSize indicates the requested bit width is not an even integer in [2, 64].
	ErrBitSize = errors.New("shuffle: bit size must be an even integer in [2, 64]")
	// ErrRounds indicates a round count below 1, or an empty table schedule.
	ErrRounds = errors.New("shuffle: round count must be at least 1")
	// ErrTableLength indicates a round table whose length is not 2·2^(bitSize/2).
	ErrTableLength = errors.New("shuffle: round table has wrong length")
	// ErrTableEntry indicates a round-table entry outside [0, 2^(bitSize/2)).
	ErrTableEntry = errors.New("shuffle: round table entry out of range")
	// ErrValueRange indicates an Encode/Decode input outside [0, 2^bitSize).
	ErrValueRange = errors.New("shuffle: value outside cipher domain")
)
