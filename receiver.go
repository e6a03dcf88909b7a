package mpsc

import (
	"context"
	"sync"
	"sync/atomic"
)

// Receiver is the consumer handle. Exactly one exists per channel and
// it must not be shared between goroutines; the channel is
// multi-producer, single-consumer.
//
// Closing the Receiver shuts the channel down from the consumer side:
// every subsequent send is rejected.
type Receiver[T any] struct {
	st     *state[T]
	once   sync.Once
	closed atomic.Bool
}

// PollRecv attempts one non-blocking receive.
//
//   - [RecvReady]: an item is returned and a sender blocked on a full
//     buffer, if any, has been woken.
//   - [RecvBlocked]: the buffer is empty but senders remain. If w is
//     non-nil it has been registered and fires once data (or the
//     closing of the last sender) arrives; a nil w makes PollRecv
//     purely advisory.
//   - [RecvClosed]: every sender is closed and the buffer is drained.
//     Terminal; stop polling.
//
// PollRecv panics if the Receiver has been closed.
func (r *Receiver[T]) PollRecv(w Waker) (T, RecvStatus) {
	v, status, _ := r.pollRecv(w)
	return v, status
}

// pollRecv additionally hands back the registration's cancel function
// on the blocked path, so blocking callers can withdraw the entry
// when they stop waiting.
func (r *Receiver[T]) pollRecv(w Waker) (T, RecvStatus, func()) {
	if r.closed.Load() {
		panic("mpsc: PollRecv on closed Receiver")
	}

	st := r.st
	var zero T

	if v, ok := st.buf.TryPop(); ok {
		st.sendWaiters.notify()
		return v, RecvReady, nil
	}

	// Buffered items drain before the closed state is reported, so
	// the sender count only matters on an empty buffer.
	if st.senders.Load() == 0 {
		return zero, RecvClosed, nil
	}

	if w == nil {
		return zero, RecvBlocked, nil
	}

	// Register before re-checking; a push (or the last sender
	// closing) between the failed pop and the registration must not
	// be a lost wake-up.
	cancel := st.recvWaiters.register(w)

	if v, ok := st.buf.TryPop(); ok {
		cancel()
		st.sendWaiters.notify()
		return v, RecvReady, nil
	}
	if st.senders.Load() == 0 {
		cancel()
		return zero, RecvClosed, nil
	}
	return zero, RecvBlocked, cancel
}

// Recv blocks until an item arrives, the channel closes, or ctx is
// cancelled. It returns [ErrClosed] once every sender is closed and
// the buffer is drained, or the context error.
func (r *Receiver[T]) Recv(ctx context.Context) (T, error) {
	sig := NewSignal()
	for {
		v, status, cancel := r.pollRecv(sig)
		switch status {
		case RecvReady:
			return v, nil
		case RecvClosed:
			var zero T
			return zero, ErrClosed
		}

		select {
		case <-sig.Ready():
		case <-ctx.Done():
			// Withdraw the registration so a stale entry cannot eat a
			// future data notification.
			cancel()
			var zero T
			return zero, ctx.Err()
		}
	}
}

// TryRecv attempts to receive without blocking and without
// registering a waker. It returns [ErrEmpty] if the buffer is empty
// but senders remain, or [ErrClosed] if the channel is closed and
// drained.
func (r *Receiver[T]) TryRecv() (T, error) {
	v, st := r.PollRecv(nil)
	switch st {
	case RecvReady:
		return v, nil
	case RecvClosed:
		var zero T
		return zero, ErrClosed
	default:
		var zero T
		return zero, ErrEmpty
	}
}

// RecvBatch receives up to n items, blocking for each one. It
// returns the full batch and nil on success, or the items collected
// so far and the context error if ctx is cancelled mid-batch. If the
// channel closes before n items are received, it returns the partial
// batch with a nil error, or ([]T)(nil) and [ErrClosed] when nothing
// was collected.
//
// RecvBatch panics if n is not positive.
func (r *Receiver[T]) RecvBatch(ctx context.Context, n int) ([]T, error) {
	if n <= 0 {
		panic("mpsc: RecvBatch requires n > 0")
	}

	batch := make([]T, 0, n)
	for len(batch) < n {
		v, err := r.Recv(ctx)
		if err == ErrClosed {
			if len(batch) == 0 {
				return nil, ErrClosed
			}
			return batch, nil
		}
		if err != nil {
			return batch, err
		}
		batch = append(batch, v)
	}
	return batch, nil
}

// Drain receives and discards items until the channel closes or ctx
// is cancelled, and returns the number discarded. The error is nil
// when the channel closed normally.
func (r *Receiver[T]) Drain(ctx context.Context) (int, error) {
	var n int
	for {
		_, err := r.Recv(ctx)
		if err == ErrClosed {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}

// Close releases the consumer handle. Every blocked sender is woken
// and every future send is rejected. Items still buffered are
// discarded; Close returns how many. Close is idempotent; repeated
// calls return zero.
func (r *Receiver[T]) Close() int {
	var discarded int
	r.once.Do(func() {
		r.closed.Store(true)
		r.st.rxGone.Store(true)
		close(r.st.rxDone)

		// Best effort: a sender that passed its liveness check before
		// rxGone was set may still complete one push after this loop.
		// Such an item stays in the buffer and is released with it.
		for {
			if _, ok := r.st.buf.TryPop(); !ok {
				break
			}
			discarded++
		}

		r.st.sendWaiters.notifyAll()
	})
	return discarded
}

// SendersExhausted reports whether every Sender handle has been
// closed. Buffered items may still be receivable.
func (r *Receiver[T]) SendersExhausted() bool {
	return r.st.senders.Load() == 0
}

// Len returns the number of items currently buffered.
func (r *Receiver[T]) Len() int { return r.st.buf.Len() }

// Cap returns the channel's fixed buffer capacity.
func (r *Receiver[T]) Cap() int { return r.st.buf.Cap() }
