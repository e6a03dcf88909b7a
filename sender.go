package mpsc

import (
	"context"
	"sync"
	"sync/atomic"
)

// Sender is a producer handle. Any number of Senders may send into
// the same channel concurrently; create additional handles with
// [Sender.Clone], never by copying the struct.
//
// Each handle must be closed exactly once when its producer is done.
// The channel's send side shuts down when the last handle is closed.
type Sender[T any] struct {
	st     *state[T]
	once   sync.Once
	closed atomic.Bool
}

// PollSend attempts one non-blocking hand-off of v into the channel.
//
//   - [SendAccepted]: v is buffered and a waiting receiver, if any,
//     has been woken.
//   - [SendBlocked]: the buffer is full. If w is non-nil it has been
//     registered and fires once space frees up; the caller should then
//     retry. A nil w makes PollSend purely advisory.
//   - [SendRejected]: the receiver is gone; retrying is pointless.
//
// On SendBlocked and SendRejected the caller still owns v.
//
// PollSend panics if the handle has been closed.
func (s *Sender[T]) PollSend(v T, w Waker) SendStatus {
	status, _ := s.pollSend(v, w)
	return status
}

// pollSend additionally hands back the registration's cancel function
// on the blocked path, so blocking callers can withdraw the entry
// when they stop waiting.
func (s *Sender[T]) pollSend(v T, w Waker) (SendStatus, func()) {
	if s.closed.Load() {
		panic("mpsc: PollSend on closed Sender")
	}

	st := s.st
	if st.rxGone.Load() {
		return SendRejected, nil
	}

	if st.buf.TryPush(v) {
		st.recvWaiters.notify()
		return SendAccepted, nil
	}

	if w == nil {
		return SendBlocked, nil
	}

	// Register before re-checking, otherwise a pop (or the receiver
	// closing) between our failed push and the registration would be
	// a lost wake-up and this producer would stall forever.
	cancel := st.sendWaiters.register(w)

	if st.rxGone.Load() {
		cancel()
		return SendRejected, nil
	}
	if st.buf.TryPush(v) {
		// Space appeared while registering. Withdraw the registration
		// so a later notify goes to a producer that still needs it; a
		// wake already in flight is harmless, wakes are idempotent.
		cancel()
		st.recvWaiters.notify()
		return SendAccepted, nil
	}
	return SendBlocked, cancel
}

// Send blocks until v is accepted, the channel closes, or ctx is
// cancelled. It returns nil on success, [ErrClosed] if the receiver
// is gone, or the context error.
func (s *Sender[T]) Send(ctx context.Context, v T) error {
	sig := NewSignal()
	for {
		status, cancel := s.pollSend(v, sig)
		switch status {
		case SendAccepted:
			return nil
		case SendRejected:
			return ErrClosed
		}

		select {
		case <-sig.Ready():
		case <-s.st.rxDone:
			// Receiver closed; the next poll observes the rejection.
		case <-ctx.Done():
			// Withdraw the registration so a notification meant for
			// this producer is not eaten; if one already landed, the
			// registry passes it to the next blocked producer.
			cancel()
			return ctx.Err()
		}
	}
}

// TrySend attempts to send without blocking and without registering a
// waker. It returns nil on success, [ErrFull] if the buffer is full,
// or [ErrClosed] if the receiver is gone.
func (s *Sender[T]) TrySend(v T) error {
	switch s.PollSend(v, nil) {
	case SendAccepted:
		return nil
	case SendRejected:
		return ErrClosed
	default:
		return ErrFull
	}
}

// Clone creates an independent Sender handle for the same channel.
// Clone panics if s has been closed; a channel whose senders all
// closed stays closed.
func (s *Sender[T]) Clone() *Sender[T] {
	if s.closed.Load() {
		panic("mpsc: Clone of closed Sender")
	}
	s.st.senders.Add(1)
	return &Sender[T]{st: s.st}
}

// Close releases this producer handle. When the last handle is
// closed the receiver is woken so a blocked [Receiver.PollRecv]
// re-evaluates and observes the closed channel. Buffered items remain
// receivable.
//
// Close is idempotent; only the first call has any effect.
func (s *Sender[T]) Close() {
	s.once.Do(func() {
		s.closed.Store(true)
		if s.st.senders.Add(-1) == 0 {
			s.st.recvWaiters.notifyAll()
		}
	})
}

// ReceiverGone reports whether the Receiver has been closed. Once
// true, every send returns [SendRejected] or [ErrClosed].
func (s *Sender[T]) ReceiverGone() bool {
	return s.st.rxGone.Load()
}

// Len returns the number of items currently buffered.
func (s *Sender[T]) Len() int { return s.st.buf.Len() }

// Cap returns the channel's fixed buffer capacity.
func (s *Sender[T]) Cap() int { return s.st.buf.Cap() }
