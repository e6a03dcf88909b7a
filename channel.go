package mpsc

import (
	"sync/atomic"

	"github.com/baxromumarov/mpsc/ring"
)

// state is the channel state shared by every Sender handle and the
// Receiver. Handles hold a pointer to it; nothing points back, so the
// whole structure is released once the last handle is unreachable.
type state[T any] struct {
	buf *ring.Buffer[T]

	// senders counts live Sender handles. It reaches zero exactly
	// once; Clone panics on a closed handle, so the count never
	// re-increments afterwards.
	senders atomic.Int64

	// rxGone becomes true when the Receiver is closed and never
	// resets. rxDone is closed at the same moment so blocking sends
	// can select on it.
	rxGone atomic.Bool
	rxDone chan struct{}

	sendWaiters wakeRegistry // producers blocked on a full buffer
	recvWaiters wakeRegistry // the consumer blocked on an empty buffer
}

// New creates a bounded multi-producer single-consumer channel with
// the given buffer capacity and returns its initial [Sender] and the
// sole [Receiver]. Additional producers are created with
// [Sender.Clone]; the Receiver must never be shared between
// goroutines.
//
// New panics if capacity is not positive. A capacity of zero would be
// a rendezvous channel, which this package deliberately does not
// implement.
func New[T any](capacity int, opts ...Option) (*Sender[T], *Receiver[T]) {
	if capacity <= 0 {
		panic("mpsc: capacity must be positive")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	st := &state[T]{
		buf:    ring.New[T](capacity),
		rxDone: make(chan struct{}),
	}
	if cfg.singleSlotWake {
		st.sendWaiters = &wakeSlot{}
		st.recvWaiters = &wakeSlot{}
	} else {
		st.sendWaiters = &wakeQueue{}
		st.recvWaiters = &wakeQueue{}
	}
	st.senders.Store(1)

	return &Sender[T]{st: st}, &Receiver[T]{st: st}
}
