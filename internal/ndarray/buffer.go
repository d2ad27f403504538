package ndarray

import "sync/atomic"

// buffer is the reference-counted flat storage shared by an Array and the
// Views taken on it. The owning Array holds one reference and every live
// View holds one more.
type buffer[T any] struct {
	data     []T
	refCount atomic.Int32
}

// newBuffer creates a buffer of n elements set to fill, with refCount = 1.
func newBuffer[T any](n int, fill T) *buffer[T] {
	buf := &buffer[T]{data: make([]T, n)}
	for i := range buf.data {
		buf.data[i] = fill
	}
	buf.refCount.Store(1)
	return buf
}

// wrapBuffer takes ownership of data, with refCount = 1.
func wrapBuffer[T any](data []T) *buffer[T] {
	buf := &buffer[T]{data: data}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (a View was taken).
func (b *buffer[T]) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count.
func (b *buffer[T]) release() {
	b.refCount.Add(-1)
}

// isUnique returns true if only the owning Array references the buffer.
func (b *buffer[T]) isUnique() bool {
	return b.refCount.Load() == 1
}

// detach returns a private copy of the buffer with refCount = 1 and drops
// the caller's reference on b. Views keep using b.
func (b *buffer[T]) detach() *buffer[T] {
	data := make([]T, len(b.data))
	copy(data, b.data)
	b.release()
	return wrapBuffer(data)
}
