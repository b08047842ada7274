// Package rand provides deterministic random data for tests and benchmarks.
package rand

import (
	mrand "math/rand/v2"
)

const strChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Rand is a seeded, non thread-safe pseudo random source.
type Rand struct {
	*mrand.Rand
}

// NewRand returns a Rand seeded with seed. Equal seeds give equal sequences.
func NewRand(seed uint64) *Rand {
	return &Rand{Rand: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Str returns a random alphanumeric string of length n.
func (r *Rand) Str(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = strChars[r.IntN(len(strChars))]
	}
	return string(b)
}

// Ints returns n random ints in [0, limit).
func (r *Rand) Ints(n, limit int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.IntN(limit)
	}
	return out
}

// Seq returns 1..n in increasing order, the worst insertion order for an
// unbalanced search tree.
func Seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Shuffled returns 1..n in random order.
func (r *Rand) Shuffled(n int) []int {
	out := Seq(n)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
