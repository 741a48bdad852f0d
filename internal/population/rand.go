// Package population generates the deterministic synthetic at-risk customer
// population and derives the queue views served from it.
package population

// Rand is a seeded 32-bit mulberry generator. The zero value is usable and
// equivalent to NewRand(0). A Rand is not safe for concurrent use.
type Rand struct {
	state uint32
}

// NewRand returns a generator seeded with seed.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Uint32 advances the stream and returns the next raw value.
func (r *Rand) Uint32() uint32 {
	r.state += 0x6d2b79f5
	t := r.state
	z := (t ^ (t >> 15)) * (1 | t)
	z ^= z + (z^(z>>7))*(61|z)
	return z ^ (z >> 14)
}

// Next returns a float in [0, 1).
func (r *Rand) Next() float64 {
	return float64(r.Uint32()) / 4294967296
}

// Intn returns an integer uniformly drawn from [lo, hi].
func (r *Rand) Intn(lo, hi int) int {
	return int(r.Next()*float64(hi-lo+1)) + lo
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Next() < p
}

// Pick returns a uniformly chosen element of items. items must be non-empty.
func Pick[T any](r *Rand, items []T) T {
	return items[int(r.Next()*float64(len(items)))]
}
