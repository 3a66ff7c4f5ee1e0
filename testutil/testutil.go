// Package testutil provides deterministic random value generation for tests.
package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/geo3d"
)

// RNG encapsulates a seeded random number generator. It is thread-safe.
type RNG struct {
	mu   sync.Mutex
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
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

// Float64InRange returns a pseudo-random float64 in [lo, hi).
func (r *RNG) Float64InRange(lo, hi float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + (hi-lo)*r.rand.Float64()
}

// Vec3 returns a vector with each component drawn from [lo, hi).
func (r *RNG) Vec3(lo, hi float64) geo3d.Vec3 {
	return geo3d.NewVec3(
		r.Float64InRange(lo, hi),
		r.Float64InRange(lo, hi),
		r.Float64InRange(lo, hi),
	)
}

// Point returns a point with each coordinate drawn from [lo, hi).
func (r *RNG) Point(lo, hi float64) geo3d.Point {
	return geo3d.Point(r.Vec3(lo, hi))
}

// Vec3s returns n vectors with components drawn from [lo, hi).
func (r *RNG) Vec3s(n int, lo, hi float64) []geo3d.Vec3 {
	vectors := make([]geo3d.Vec3, n)
	for i := range vectors {
		vectors[i] = r.Vec3(lo, hi)
	}

	return vectors
}
