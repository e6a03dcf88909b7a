package ring

import "sync"

// Buffer is a bounded circular FIFO buffer. All methods are safe for
// concurrent use by any number of goroutines.
//
// The zero value is not usable; create a Buffer with [New].
type Buffer[T any] struct {
	mu    sync.Mutex
	items []T
	head  int // index of the oldest item
	count int
}

// New creates a Buffer holding at most capacity items.
// It panics if capacity is not positive.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	return &Buffer[T]{
		items: make([]T, capacity),
	}
}

// TryPush appends v to the buffer. It reports whether the push
// succeeded; false means the buffer was full and v was not stored.
// TryPush never blocks.
func (b *Buffer[T]) TryPush(v T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == len(b.items) {
		return false
	}
	b.items[(b.head+b.count)%len(b.items)] = v
	b.count++
	return true
}

// TryPop removes and returns the oldest item in the buffer. The
// boolean is false when the buffer was empty. TryPop never blocks.
func (b *Buffer[T]) TryPop() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var zero T
	if b.count == 0 {
		return zero, false
	}
	v := b.items[b.head]
	// Zero the vacated slot so the buffer does not retain references.
	b.items[b.head] = zero
	b.head = (b.head + 1) % len(b.items)
	b.count--
	return v, true
}

// Len returns the number of items currently buffered.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.count
}

// Cap returns the fixed capacity set at construction.
func (b *Buffer[T]) Cap() int {
	return len(b.items)
}
