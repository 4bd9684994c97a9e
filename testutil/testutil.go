package testutil

import (
	"math/rand"
	"sync"

	"golang.org/x/exp/constraints"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Strings returns num random lowercase strings of the given length.
func (r *RNG) Strings(num, length int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, num)
	buf := make([]byte, length)
	for i := range out {
		for j := range buf {
			buf[j] = letters[r.rand.Intn(len(letters))]
		}
		out[i] = string(buf)
	}
	return out
}

// Integers returns num random values in [0, limit). A small limit produces
// many duplicates, which is what search and count tests want. limit must be
// positive and representable in T.
func Integers[T constraints.Integer](r *RNG, num, limit int) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]T, num)
	for i := range out {
		out[i] = T(r.rand.Intn(limit))
	}
	return out
}
