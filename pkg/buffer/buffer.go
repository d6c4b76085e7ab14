// Package buffer provides Buffer, a generic contiguous container with
// amortized constant-time append.
//
// Capacity grows to max(2*capacity+1, required) whenever an append does not
// fit, so the capacity sequence for single appends is 0, 1, 3, 7, 15, ...
package buffer

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfMemory is returned when a growth request cannot be satisfied
// because it would exceed the buffer's configured capacity ceiling.
var ErrOutOfMemory = errors.New("out of memory")

// Buffer is a growable contiguous array of T.
// The zero value is an empty buffer with no backing storage.
type Buffer[T any] struct {
	items []T // len(items) is the length, cap(items) the capacity
	max   int // capacity ceiling, 0 means unbounded
}

// Option configures a Buffer created with New.
type Option func(*config)

type config struct {
	maxCapacity int
}

// WithMaxCapacity caps the number of elements the buffer may ever hold.
// A growth that cannot fit under the cap fails with ErrOutOfMemory.
func WithMaxCapacity(n int) Option {
	return func(c *config) {
		c.maxCapacity = n
	}
}

// New returns an empty buffer. No storage is allocated until the first append.
func New[T any](opts ...Option) *Buffer[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &Buffer[T]{max: c.maxCapacity}
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// Cap returns the number of elements the buffer can hold before it grows.
func (b *Buffer[T]) Cap() int {
	return cap(b.items)
}

// MaxCapacity returns the configured ceiling, or 0 if unbounded.
func (b *Buffer[T]) MaxCapacity() int {
	return b.max
}

// Append adds v at the end, growing the storage first if it is full.
func (b *Buffer[T]) Append(v T) error {
	if err := b.fit(1); err != nil {
		return err
	}
	b.items = append(b.items, v)
	return nil
}

// AppendSlice adds every element of vs, growing at most once.
func (b *Buffer[T]) AppendSlice(vs ...T) error {
	if err := b.fit(len(vs)); err != nil {
		return err
	}
	b.items = append(b.items, vs...)
	return nil
}

// At returns the element at index i. It panics if i is out of range.
func (b *Buffer[T]) At(i int) T {
	return b.items[i]
}

// Set overwrites the element at index i. It panics if i is out of range.
func (b *Buffer[T]) Set(i int, v T) {
	b.items[i] = v
}

// Last returns the final element and true, or the zero T and false when empty.
func (b *Buffer[T]) Last() (T, bool) {
	if len(b.items) == 0 {
		var zero T
		return zero, false
	}
	return b.items[len(b.items)-1], true
}

// Slice returns the live elements. The result aliases the buffer's storage
// and stays valid only until the next growth.
func (b *Buffer[T]) Slice() []T {
	return b.items
}

// All yields each index and element in order.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range b.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields each element in order.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Reset drops all elements but keeps the allocated storage.
func (b *Buffer[T]) Reset() {
	clear(b.items)
	b.items = b.items[:0]
}

// Release frees the storage. Afterwards the buffer is indistinguishable from
// a freshly created one. Calling Release more than once is harmless.
func (b *Buffer[T]) Release() {
	b.items = nil
}

// fit makes room for n more elements.
func (b *Buffer[T]) fit(n int) error {
	if len(b.items)+n <= cap(b.items) {
		return nil
	}
	return b.grow(len(b.items) + n)
}

func (b *Buffer[T]) grow(required int) error {
	capacity := max(2*cap(b.items)+1, required)
	if b.max > 0 && capacity > b.max {
		if required > b.max {
			return fmt.Errorf("buffer: growing to %d elements exceeds limit %d: %w", required, b.max, ErrOutOfMemory)
		}
		capacity = b.max
	}

	items := make([]T, len(b.items), capacity)
	copy(items, b.items)
	b.items = items
	return nil
}
