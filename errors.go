package mpsc

import "errors"

// ErrClosed is returned by [Sender.Send] and [Sender.TrySend] when the
// receiver is gone, and by [Receiver.Recv] and [Receiver.TryRecv] when
// every sender has been closed and the buffer is drained.
var ErrClosed = errors.New("mpsc: channel is closed")

// ErrFull is returned by [Sender.TrySend] when the buffer is full.
var ErrFull = errors.New("mpsc: buffer is full")

// ErrEmpty is returned by [Receiver.TryRecv] when the buffer is empty
// but senders remain.
var ErrEmpty = errors.New("mpsc: buffer is empty")
