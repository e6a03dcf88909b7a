package mpsc

// Waker is the wake-up token a blocked caller registers with
// [Sender.PollSend] or [Receiver.PollRecv]. When progress becomes
// possible the channel calls Wake exactly once per notification.
//
// Wake must be safe to call from any goroutine, at any time, any
// number of times, including after the registering caller has already
// retried through other means. A Waker carries no payload; it only
// means "poll again".
type Waker interface {
	Wake()
}

// WakerFunc adapts a plain function to the [Waker] interface.
type WakerFunc func()

// Wake calls f.
func (f WakerFunc) Wake() { f() }

// Signal is a channel-backed [Waker] for callers that wait in a
// select statement. Wake performs a non-blocking send into a
// one-slot buffer, so repeated wakes before the waiter drains the
// signal collapse into one.
//
// Create a Signal with [NewSignal]. A Signal may be reused across
// poll attempts; [Sender.Send] and [Receiver.Recv] do exactly that.
type Signal struct {
	ch chan struct{}
}

// NewSignal creates an unfired Signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Wake marks the signal ready. It never blocks; if the signal is
// already ready the wake is coalesced.
func (s *Signal) Wake() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Ready returns the channel that delivers one value per coalesced
// wake. Receiving from it consumes the pending wake.
func (s *Signal) Ready() <-chan struct{} {
	return s.ch
}
