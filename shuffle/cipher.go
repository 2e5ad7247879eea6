// Package shuffle provides a keyed bijection over [0, 2^bitSize),
// built as a multi-round table-driven mixing network whose every step
// is addition modulo a power of two — and therefore exactly invertible.
package shuffle

import "fmt"

// New constructs a Cipher from an explicit round schedule.
//
// bitSize must be an even integer in [2, 64]; tables must hold at least
// one round, each of exactly 2·2^(bitSize/2) entries in
// [0, 2^(bitSize/2)). The tables are deep-copied so later mutation of
// the caller's slices cannot affect the cipher.
//
// Returns ErrBitSize, ErrRounds, ErrTableLength or ErrTableEntry on
// invalid input.
//
// Complexity: O(rounds · 2^(bitSize/2)) time and memory.
func New(bitSize int, tables [][]uint64) (*Cipher, error) {
	if err := validateBitSize(bitSize); err != nil {
		return nil, err
	}
	halfSize := bitSize / 2
	maxShuffle := uint64(1) << halfSize
	if err := validateTables(tables, maxShuffle); err != nil {
		return nil, err
	}

	// Deep copy to prevent external mutation.
	sched := make([][]uint64, len(tables))
	for r, t := range tables {
		sched[r] = make([]uint64, len(t))
		copy(sched[r], t)
	}

	// bitSize may be 64, where a direct 1<<bitSize wraps to zero, so the
	// domain mask is assembled from the two half shifts.
	domainMask := (maxShuffle-1)<<halfSize | (maxShuffle - 1)

	return &Cipher{
		bitSize:    bitSize,
		halfSize:   halfSize,
		maxShuffle: maxShuffle,
		xMask:      maxShuffle - 1,
		domainMask: domainMask,
		tables:     sched,
	}, nil
}

// FromSeed constructs a Cipher whose round schedule is derived
// deterministically from seed (the secret key), applying any number of
// functional Options. The default schedule length is DefaultRounds;
// override with WithRounds.
//
// Two FromSeed calls with identical (bitSize, seed, rounds) produce
// ciphers with identical tables and identical Encode/Decode behavior.
//
// Returns ErrBitSize for an invalid width, ErrRounds for an invalid
// rounds option.
func FromSeed(bitSize int, seed int64, opts ...Option) (*Cipher, error) {
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	tables, err := NewSchedule(bitSize, seed, o.Rounds)
	if err != nil {
		return nil, err
	}
	return New(bitSize, tables)
}

// Encode maps value to its shuffled image in [0, 2^bitSize).
//
// The value is split into halves x (low bits) and y (high bits); each
// round adds a keyed table entry to x, then to y using the just-updated
// x, modulo 2^(bitSize/2). Restricted to the domain, Encode is a
// bijection for any valid schedule: every step is invertible, so the
// composition is too.
//
// Returns ErrValueRange if value lies outside [0, 2^bitSize).
//
// Complexity: O(rounds), no allocations.
func (c *Cipher) Encode(value uint64) (uint64, error) {
	if value&^c.domainMask != 0 {
		return 0, fmt.Errorf("%w: %d not in [0, 2^%d)", ErrValueRange, value, c.bitSize)
	}

	x := value & c.xMask
	y := (value >> c.halfSize) & c.xMask
	half := uint64(c.halfSize)

	for _, t := range c.tables {
		x = (x + t[y]) & c.xMask
		y = (y + t[x+half]) & c.xMask
	}

	return (y << c.halfSize) | x, nil
}

// Decode recovers the value that Encode mapped to the given image.
// For every v in the domain, Decode(Encode(v)) == v exactly.
//
// Rounds are replayed in reverse order with the two steps undone in
// reverse: y is restored first (it was updated last), using the x that
// Encode's first step had already produced at that round, then x.
// Unsigned subtraction wraps modulo 2^64, a multiple of 2^(bitSize/2),
// so masking yields the correct modular difference.
//
// Returns ErrValueRange if value lies outside [0, 2^bitSize).
//
// Complexity: O(rounds), no allocations.
func (c *Cipher) Decode(value uint64) (uint64, error) {
	if value&^c.domainMask != 0 {
		return 0, fmt.Errorf("%w: %d not in [0, 2^%d)", ErrValueRange, value, c.bitSize)
	}

	x := value & c.xMask
	y := (value >> c.halfSize) & c.xMask
	half := uint64(c.halfSize)

	for r := len(c.tables) - 1; r >= 0; r-- {
		t := c.tables[r]
		y = (y - t[x+half]) & c.xMask
		x = (x - t[y]) & c.xMask
	}

	return (y << c.halfSize) | x, nil
}
