// Package rng provides a seeded random-number service for game code:
// bounded integers, element sampling, Fisher–Yates shuffles and a
// random-start cyclic iteration order, backed by a XorShift128+ generator
// whose state can be exported and restored.
//
// None of the types here are safe for concurrent use.
package rng

import (
	"math/rand/v2"
)

// Source is what the sampling and shuffling helpers need. *RNG implements
// it; any other generator can be plugged in.
type Source interface {
	// IntN returns a value in [0, n). IntN(0) returns 0.
	IntN(n int) int
}

// Snapshot is the exported generator state.
type Snapshot struct {
	S0 uint64 `json:"s0"`
	S1 uint64 `json:"s1"`
}

// RNG adapts an XS128 generator to a richer interface.
type RNG struct {
	x *XS128
}

var _ rand.Source = (*XS128)(nil)

// New returns an RNG with a random seed.
func New() *RNG {
	return NewSeeded(int64(rand.Uint64()))
}

// NewSeeded returns an RNG seeded with seed.
func NewSeeded(seed int64) *RNG {
	return NewFrom(NewXS128(seed))
}

// NewFrom returns an RNG drawing from x. Panics if x is nil.
func NewFrom(x *XS128) *RNG {
	if x == nil {
		panic("rng: nil generator")
	}
	return &RNG{x: x}
}

// Generator returns the underlying generator.
func (r *RNG) Generator() *XS128 {
	return r.x
}

// Bool returns a random boolean.
func (r *RNG) Bool() bool {
	return r.x.Uint64()&1 != 0
}

// Float32 returns a value in [0, 1) built from the top 24 bits.
func (r *RNG) Float32() float32 {
	return float32(r.x.Uint64()>>40) * (1.0 / (1 << 24))
}

// Float64 returns a value in [0, 1) built from the top 53 bits.
func (r *RNG) Float64() float64 {
	return float64(r.x.Uint64()>>11) * (1.0 / (1 << 53))
}

// Int32 returns an unconstrained 32-bit integer.
func (r *RNG) Int32() int32 {
	return int32(r.x.Uint64())
}

// Int64 returns an unconstrained 64-bit integer.
func (r *RNG) Int64() int64 {
	return int64(r.x.Uint64())
}

// Uint64 returns 64 random bits.
func (r *RNG) Uint64() uint64 {
	return r.x.Uint64()
}

// IntN returns a value in [0, bound). IntN(0) returns 0. Panics if bound is
// negative.
func (r *RNG) IntN(bound int) int {
	if bound < 0 {
		panic("rng: negative bound")
	}
	if bound == 0 {
		return 0
	}
	return int(r.Int64N(int64(bound)))
}

// Int64N returns a value in [0, n) for n > 0, rejecting the values that
// would bias the modulo.
func (r *RNG) Int64N(n int64) int64 {
	if n <= 0 {
		panic("rng: non-positive bound")
	}
	for {
		bits := int64(r.x.Uint64() >> 1)
		value := bits % n
		if bits-value+(n-1) >= 0 {
			return value
		}
	}
}

// Between returns a value in [min, max). The caller must ensure min < max.
func (r *RNG) Between(min, max int) int {
	return min + r.IntN(max-min)
}

// State returns the two generator words.
func (r *RNG) State() (s0, s1 uint64) {
	return r.x.State()
}

// SetState restores the two generator words.
func (r *RNG) SetState(s0, s1 uint64) {
	r.x.SetState(s0, s1)
}

// Snapshot exports the generator state.
func (r *RNG) Snapshot() Snapshot {
	s0, s1 := r.x.State()
	return Snapshot{S0: s0, S1: s1}
}

// Restore sets the generator state from s.
func (r *RNG) Restore(s Snapshot) {
	r.x.SetState(s.S0, s.S1)
}

// Clone returns an independent RNG that will produce the same sequence.
func (r *RNG) Clone() *RNG {
	x := *r.x
	return &RNG{x: &x}
}

// MarshalBinary encodes the generator state.
func (r *RNG) MarshalBinary() ([]byte, error) {
	return r.x.MarshalBinary()
}

// UnmarshalBinary restores the generator state.
func (r *RNG) UnmarshalBinary(data []byte) error {
	if r.x == nil {
		r.x = &XS128{}
	}
	return r.x.UnmarshalBinary(data)
}

// Rand returns a math/rand/v2 generator sharing this RNG's state, for code
// expecting *rand.Rand.
func (r *RNG) Rand() *rand.Rand {
	return rand.New(r.x)
}
