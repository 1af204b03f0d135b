// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ring implements a fixed size sample buffer that overwrites
// its oldest samples when full.
package ring

// Buffer is a ring of samples. The zero value is an empty buffer that
// discards all writes.
type Buffer[T any] struct {
	data []T
	head int // index of the oldest sample
	n    int // number of held samples
}

// NewBuffer returns a buffer holding up to n samples.
func NewBuffer[T any](n int) *Buffer[T] {
	return &Buffer[T]{data: make([]T, max(n, 0))}
}

// Len returns the number of samples held.
func (r *Buffer[T]) Len() int { return r.n }

// Size returns the capacity of the buffer.
func (r *Buffer[T]) Size() int { return len(r.data) }

// Full reports whether the buffer holds Size samples.
func (r *Buffer[T]) Full() bool { return r.n == len(r.data) }

// Write appends src to the buffer, dropping the oldest samples if
// there is not enough room.
func (r *Buffer[T]) Write(src []T) {
	size := len(r.data)
	if size == 0 {
		return
	}
	if len(src) >= size {
		copy(r.data, src[len(src)-size:])
		r.head = 0
		r.n = size
		return
	}
	tail := (r.head + r.n) % size
	k := copy(r.data[tail:], src)
	copy(r.data, src[k:])
	r.n += len(src)
	if r.n > size {
		r.head = (r.head + r.n - size) % size
		r.n = size
	}
}

// Read copies the oldest samples into dst and removes them from the
// buffer, returning the number of samples read.
func (r *Buffer[T]) Read(dst []T) int {
	n := r.CopyTo(dst)
	r.Advance(n)
	return n
}

// CopyTo copies the oldest samples into dst without removing them,
// returning the number of samples copied.
func (r *Buffer[T]) CopyTo(dst []T) int {
	k := min(len(dst), r.n)
	first := min(k, len(r.data)-r.head)
	copy(dst, r.data[r.head:r.head+first])
	copy(dst[first:k], r.data[:k-first])
	return k
}

// Advance discards the n oldest samples.
func (r *Buffer[T]) Advance(n int) {
	n = min(max(n, 0), r.n)
	if n == 0 {
		return
	}
	r.head = (r.head + n) % len(r.data)
	r.n -= n
}

// Reset empties the buffer.
func (r *Buffer[T]) Reset() {
	r.head = 0
	r.n = 0
}
