// Package shuffle provides the seeded deck permutation used at game start.
//
// The generator reproduces the 48-bit linear congruential generator used by
// the reference data sets, so a given seed always yields the same order.
package shuffle

const (
	multiplier = 0x5DEECE66D
	addend     = 0xB
	mask       = (int64(1) << 48) - 1
)

// Random is a 48-bit linear congruential generator.
type Random struct {
	seed int64
}

// NewRandom creates a generator from a seed.
func NewRandom(seed int64) *Random {
	return &Random{seed: (seed ^ multiplier) & mask}
}

func (r *Random) next(bits uint) int32 {
	r.seed = (r.seed*multiplier + addend) & mask
	return int32(uint64(r.seed) >> (48 - bits))
}

// Intn returns a uniformly distributed value in [0, bound). It panics if bound <= 0.
func (r *Random) Intn(bound int32) int32 {
	if bound <= 0 {
		panic("shuffle: bound must be positive")
	}

	v := r.next(31)
	m := bound - 1
	if bound&m == 0 {
		return int32((int64(bound) * int64(v)) >> 31)
	}

	// Reject values from the incomplete final block; the sum wraps negative
	// exactly when u lies in it.
	for u := v; ; u = r.next(31) {
		v = u % bound
		if u-v+m >= 0 {
			break
		}
	}
	return v
}

// Shuffle permutes n elements in place by calling swap, walking from the last
// position down to the second.
func Shuffle(n int, seed int64, swap func(i, j int)) {
	rnd := NewRandom(seed)
	for i := n; i > 1; i-- {
		swap(i-1, int(rnd.Intn(int32(i))))
	}
}
