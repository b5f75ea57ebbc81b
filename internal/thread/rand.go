package thread

import "math/rand/v2"

// Rand draws a uniform integer from the inclusive range [lo, hi].
// Callers guarantee lo <= hi.
type Rand interface {
	IntRange(lo, hi int) int
}

// RandFunc adapts a plain function to the Rand interface.
type RandFunc func(lo, hi int) int

// IntRange calls f(lo, hi).
func (f RandFunc) IntRange(lo, hi int) int {
	return f(lo, hi)
}

type source struct {
	r *rand.Rand
}

func (s source) IntRange(lo, hi int) int {
	if s.r == nil {
		return lo + rand.IntN(hi-lo+1)
	}
	return lo + s.r.IntN(hi-lo+1)
}

// DefaultRand returns a Rand backed by the randomly seeded global source.
func DefaultRand() Rand {
	return source{}
}

// NewRand returns a deterministic Rand for the given seed.
func NewRand(seed uint64) Rand {
	return source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Fixed returns a Rand that always yields n, clamped into the requested range.
func Fixed(n int) Rand {
	return RandFunc(func(lo, hi int) int {
		return min(max(n, lo), hi)
	})
}
