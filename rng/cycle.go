package rng

import (
	"errors"
	"iter"
	"slices"
)

// ErrIterationExhausted is returned by Cursor.Next once every element has
// been yielded.
var ErrIterationExhausted = errors.New("rng: iteration exhausted")

// RandomStartIterable walks a slice starting at an offset chosen once, when
// it was created, and wrapping to the front. Every traversal follows the same
// order.
type RandomStartIterable[T any] struct {
	elems []T
	start int
}

// RandomStart picks a start offset in s uniformly at random. Calling it
// again generally picks a different offset. s is copied, so later changes to
// it do not affect the traversal order. Panics if s is empty.
func RandomStart[T any](r Source, s []T) *RandomStartIterable[T] {
	if len(s) == 0 {
		panic("rng: random start over an empty sequence")
	}
	return &RandomStartIterable[T]{elems: slices.Clone(s), start: r.IntN(len(s))}
}

// Start returns the fixed offset.
func (it *RandomStartIterable[T]) Start() int {
	return it.start
}

// Len returns the number of elements each traversal yields.
func (it *RandomStartIterable[T]) Len() int {
	return len(it.elems)
}

// All yields every element once, from the start offset to the end and then
// from the front up to the offset.
func (it *RandomStartIterable[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := len(it.elems)
		for i := 0; i < n; i++ {
			if !yield(it.elems[(it.start+i)%n]) {
				return
			}
		}
	}
}

// Cursor returns a fresh cursor positioned at the start offset.
func (it *RandomStartIterable[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{it: it}
}

// Cursor is a single traversal of a RandomStartIterable. Elements cannot be
// removed through it.
type Cursor[T any] struct {
	it      *RandomStartIterable[T]
	emitted int
}

// HasNext reports whether Next will yield another element.
func (c *Cursor[T]) HasNext() bool {
	return c.emitted < len(c.it.elems)
}

// Next returns the next element, or ErrIterationExhausted once all have been
// returned.
func (c *Cursor[T]) Next() (T, error) {
	n := len(c.it.elems)
	if c.emitted >= n {
		var zero T
		return zero, ErrIterationExhausted
	}
	v := c.it.elems[(c.it.start+c.emitted)%n]
	c.emitted++
	return v, nil
}
