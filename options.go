package mpsc

type config struct {
	singleSlotWake bool
}

// Option configures a channel created by [New].
type Option func(*config)

func defaultConfig() config {
	return config{}
}

// WithSingleSlotWake makes each side of the channel remember at most
// one registered waker, a later registration overwriting an earlier
// one, instead of the default FIFO waker queue.
//
// The single slot avoids an allocation per registration but is only
// safe when at most one producer can be blocked at a time: with two
// producers blocked on a full buffer, the first producer's waker is
// overwritten and that producer is never woken. The default queue
// wakes waiters in registration order, one per freed slot, so no
// waiter can be starved.
func WithSingleSlotWake() Option {
	return func(c *config) {
		c.singleSlotWake = true
	}
}
