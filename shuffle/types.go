// Package shuffle defines the Cipher value type and the options
// accepted by its seeded constructor.
package shuffle

import "fmt"

// DefaultRounds is the number of mixing rounds FromSeed uses unless
// overridden with WithRounds. Five rounds diffuse both halves through
// the whole domain while keeping Encode/Decode a handful of lookups.
const DefaultRounds = 5

// Cipher is an immutable keyed permutation over [0, 2^bitSize).
//
// Construct it once, from explicit tables with New or from a secret
// seed with FromSeed, then call Encode and Decode freely. A Cipher
// never changes after construction, so a single instance may be shared
// across goroutines without locking.
type Cipher struct {
	bitSize  int
	halfSize int // bitSize / 2; width of each half

	// maxShuffle == 1 << halfSize. It is a power of two, so reduction
	// modulo maxShuffle is `& xMask` throughout.
	maxShuffle uint64
	xMask      uint64 // maxShuffle - 1; also extracts the low half
	domainMask uint64 // (1 << bitSize) - 1, with bitSize == 64 handled

	// tables is the round schedule, applied in slice order by Encode
	// and in reverse by Decode. Owned by the Cipher; never mutated.
	tables [][]uint64
}

// BitSize returns the width of the cipher's domain [0, 2^BitSize()).
func (c *Cipher) BitSize() int { return c.bitSize }

// Rounds returns the number of mixing rounds in the schedule.
func (c *Cipher) Rounds() int { return len(c.tables) }

// Tables returns a copy of the round schedule in application order.
// This is the interoperable form of the key material: feeding it back
// into New (with the same bit size) reconstructs an identical cipher,
// with no dependency on how the tables were originally generated.
// Mutating the returned slices does not affect the cipher.
//
// Complexity: O(rounds · 2^(bitSize/2)).
func (c *Cipher) Tables() [][]uint64 {
	out := make([][]uint64, len(c.tables))
	for r, t := range c.tables {
		out[r] = make([]uint64, len(t))
		copy(out[r], t)
	}
	return out
}

// Option configures FromSeed via functional arguments.
// If an Option is invalid (e.g. zero rounds), it is recorded internally
// and surfaced as an error when FromSeed is invoked.
type Option func(*Options)

// Options holds the tunable parameters of a seeded cipher.
type Options struct {
	// Rounds is the number of mixing rounds to derive. More rounds mix
	// harder at a linear cost per Encode/Decode call.
	Rounds int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Rounds == DefaultRounds
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Rounds: DefaultRounds,
		err:    nil,
	}
}

// WithRounds sets the number of mixing rounds derived from the seed.
//
//	n >= 1: use n rounds
//	n < 1:  invalid option → ErrRounds
func WithRounds(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrRounds, n)
			return
		}
		o.Rounds = n
	}
}
