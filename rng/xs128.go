package rng

import (
	"encoding/binary"
	"errors"
	"math"
)

// XS128 is a XorShift128+ generator. Its output matches the classic
// two-word xorshift128+ with 23/17/26 shifts. It implements
// math/rand/v2.Source.
//
// XS128 has no internal synchronization.
type XS128 struct {
	s0, s1 uint64
}

// NewXS128 seeds a generator from a single 64-bit seed.
func NewXS128(seed int64) *XS128 {
	x := &XS128{}
	x.Seed(seed)
	return x
}

// Seed reseeds the generator. The seed is spread over both state words with
// the MurmurHash3 finaliser; a zero seed is replaced by math.MinInt64 so the
// state is never all zero.
func (x *XS128) Seed(seed int64) {
	if seed == 0 {
		seed = math.MinInt64
	}
	s0 := murmurHash3(uint64(seed))
	x.SetState(s0, murmurHash3(s0))
}

// Uint64 returns the next 64 random bits.
func (x *XS128) Uint64() uint64 {
	s1 := x.s0
	s0 := x.s1
	x.s0 = s0
	s1 ^= s1 << 23
	x.s1 = s1 ^ s0 ^ (s1 >> 17) ^ (s0 >> 26)
	return x.s1 + s0
}

// State returns the two internal state words.
func (x *XS128) State() (s0, s1 uint64) {
	return x.s0, x.s1
}

// SetState restores state words previously returned by State.
func (x *XS128) SetState(s0, s1 uint64) {
	x.s0 = s0
	x.s1 = s1
}

const xs128BinaryLen = 1 + 16

var errBadState = errors.New("rng: invalid XS128 state encoding")

// MarshalBinary encodes the state words.
func (x *XS128) MarshalBinary() ([]byte, error) {
	b := make([]byte, 1, xs128BinaryLen)
	b[0] = 1 // version
	b = binary.BigEndian.AppendUint64(b, x.s0)
	b = binary.BigEndian.AppendUint64(b, x.s1)
	return b, nil
}

// UnmarshalBinary restores state encoded by MarshalBinary.
func (x *XS128) UnmarshalBinary(data []byte) error {
	if len(data) != xs128BinaryLen || data[0] != 1 {
		return errBadState
	}
	x.s0 = binary.BigEndian.Uint64(data[1:9])
	x.s1 = binary.BigEndian.Uint64(data[9:17])
	return nil
}

func murmurHash3(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}
