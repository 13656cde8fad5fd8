package rng

import (
	"container/list"
	"iter"
	"slices"
)

// Element returns a random element of s, or false when s is empty.
func Element[T any](r Source, s []T) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	return s[r.IntN(len(s))], true
}

// ElementOf returns a random element of a collection of the given size that
// has no random access. It scans seq up to the sampled index. Returns false
// when size is 0 or seq ends early.
func ElementOf[T any](r Source, size int, seq iter.Seq[T]) (T, bool) {
	var zero T
	if size <= 0 {
		return zero, false
	}
	target := r.IntN(size)
	i := 0
	for v := range seq {
		if i == target {
			return v, true
		}
		i++
	}
	return zero, false
}

// Shuffle returns a shuffled copy of s. s is untouched.
func Shuffle[T any](r Source, s []T) []T {
	dst := make([]T, len(s))
	ShuffleInto(r, s, dst)
	return dst
}

// ShuffleInto writes a random permutation of src into dst using the
// inside-out Fisher–Yates algorithm. Panics if dst is shorter than src.
// src and dst must not overlap.
func ShuffleInto[T any](r Source, src, dst []T) {
	if len(dst) < len(src) {
		panic("rng: shuffle destination is shorter than source")
	}
	for i := range src {
		j := r.IntN(i + 1)
		if j != i {
			dst[i] = dst[j]
		}
		dst[j] = src[i]
	}
}

// ShuffleInPlace permutes s in place.
func ShuffleInPlace[T any](r Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Sequence is an indexed view used by ShuffleSequence. It only needs Get and
// Set, so linked structures qualify.
type Sequence[T any] interface {
	Len() int
	Get(i int) T
	Set(i int, v T)
}

// ShuffleSequence permutes seq in place with Fisher–Yates, touching it only
// through Get and Set.
func ShuffleSequence[T any](r Source, seq Sequence[T]) {
	for i := seq.Len() - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		if i == j {
			continue
		}
		vi := seq.Get(i)
		seq.Set(i, seq.Get(j))
		seq.Set(j, vi)
	}
}

// Slice adapts a slice to Sequence.
type Slice[T any] []T

// Len returns the number of elements.
func (s Slice[T]) Len() int { return len(s) }

// Get returns the element at i.
func (s Slice[T]) Get(i int) T { return s[i] }

// Set replaces the element at i.
func (s Slice[T]) Set(i int, v T) { s[i] = v }

// All yields the elements in order.
func (s Slice[T]) All() iter.Seq[T] { return slices.Values(s) }

// List adapts a container/list whose values are all of type T to Sequence.
// Get and Set walk the list, so they cost O(i).
type List[T any] struct {
	L *list.List
}

// Len returns the number of elements.
func (l List[T]) Len() int {
	return l.L.Len()
}

// Get returns the value at index i.
func (l List[T]) Get(i int) T {
	return l.at(i).Value.(T)
}

// Set replaces the value at index i.
func (l List[T]) Set(i int, v T) {
	l.at(i).Value = v
}

// All yields the values front to back.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.L.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(T)) {
				return
			}
		}
	}
}

func (l List[T]) at(i int) *list.Element {
	if i < 0 || i >= l.L.Len() {
		panic("rng: list index out of range")
	}
	e := l.L.Front()
	for ; i > 0; i-- {
		e = e.Next()
	}
	return e
}
