package mpsc

// SendStatus is the outcome of a single [Sender.PollSend] attempt.
type SendStatus int

const (
	// SendAccepted means the value was stored in the channel buffer.
	// If the receiver was waiting for data, it has been woken.
	SendAccepted SendStatus = iota

	// SendBlocked means the buffer was full and the value was not
	// stored. The caller keeps the value and should retry after its
	// waker fires.
	SendBlocked

	// SendRejected means the receiver is gone. The condition is
	// permanent: no send on this channel will ever succeed again.
	SendRejected
)

// RecvStatus is the outcome of a single [Receiver.PollRecv] attempt.
type RecvStatus int

const (
	// RecvReady means an item was returned. If a sender was waiting
	// for buffer space, it has been woken.
	RecvReady RecvStatus = iota

	// RecvBlocked means the buffer was empty but senders remain. The
	// caller should retry after its waker fires.
	RecvBlocked

	// RecvClosed means every sender handle has been closed and the
	// buffer is drained. The condition is terminal: no item will ever
	// arrive and the caller should stop polling.
	RecvClosed
)
