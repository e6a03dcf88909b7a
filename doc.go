// Package mpsc provides a bounded multi-producer, single-consumer
// channel with explicit backpressure and cooperative shutdown.
//
// Unlike a native Go channel, the hand-off protocol is poll-based: an
// attempt either completes immediately or registers a [Waker] and
// reports that it would block. Nothing in the core ever blocks a
// goroutine or spawns one, which makes the channel usable as a
// building block inside schedulers, event loops, and pipelines that
// manage their own waiting.
//
// # Creating a channel
//
// [New] returns the first [Sender] and the sole [Receiver]:
//
//	tx, rx := mpsc.New[int](8)
//
// Additional producers are created with [Sender.Clone]. Every Sender
// handle must be closed when its producer finishes; the Receiver is
// closed when the consumer stops caring.
//
// # The poll protocol
//
// [Sender.PollSend] tries to buffer a value. On a full buffer it
// registers the caller's waker and returns [SendBlocked]; the waker
// fires once the receiver frees space, and the caller retries. When
// the Receiver has been closed, PollSend returns [SendRejected],
// which is permanent.
//
// [Receiver.PollRecv] mirrors this: it returns an item, or registers
// the waker and reports [RecvBlocked], or reports [RecvClosed] once
// every sender is closed and the buffer is drained. Items always
// arrive in push order.
//
// # Blocking convenience API
//
// Callers that just want an ordinary blocking hand-off use
// [Sender.Send], [Sender.TrySend], [Receiver.Recv],
// [Receiver.TryRecv], [Receiver.RecvBatch], and [Receiver.Drain].
// These are thin loops over the poll protocol using a [Signal] waker
// and respect context cancellation; the waiting happens on the
// caller's own goroutine.
//
// # Shutdown
//
// The two sides shut down independently. Closing the last Sender
// wakes a blocked receiver, which drains any buffered items and then
// observes [RecvClosed]. Closing the Receiver wakes every blocked
// sender, discards buffered items, and makes all future sends return
// [SendRejected]. Neither direction waits for the other.
//
// # Wake registration
//
// By default each side keeps a FIFO queue of registered wakers and
// wakes the oldest per notification, so no blocked producer can be
// starved. [WithSingleSlotWake] switches both sides to a single
// overwrite-on-register slot, which trades that guarantee for an
// allocation-free registration and is safe when at most one producer
// blocks at a time.
package mpsc
