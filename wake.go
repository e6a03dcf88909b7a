package mpsc

import "sync"

// wakeRegistry stores the wakers of callers blocked on one side of
// the channel. register remembers a waker and returns a cancel
// function that withdraws the registration; the poll methods use it
// when the operation succeeds on re-check after registering, and the
// blocking methods use it when the caller's context is cancelled
// mid-wait. notify wakes one pending waker, notifyAll wakes every
// pending waker. All methods are safe for concurrent use and wakers
// are always invoked outside the internal lock.
type wakeRegistry interface {
	register(w Waker) (cancel func())
	notify()
	notifyAll()
}

// wakeSlot keeps at most one waker: a later register overwrites an
// earlier one. Selected by [WithSingleSlotWake].
type wakeSlot struct {
	mu  sync.Mutex
	w   Waker
	seq uint64 // bumped on every register, guards cancel
}

func (s *wakeSlot) register(w Waker) func() {
	s.mu.Lock()
	s.w = w
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		if s.seq == seq {
			s.w = nil
		}
		s.mu.Unlock()
	}
}

func (s *wakeSlot) notify() {
	s.mu.Lock()
	w := s.w
	s.w = nil
	s.mu.Unlock()

	if w != nil {
		w.Wake()
	}
}

// notifyAll is identical to notify for a single slot.
func (s *wakeSlot) notifyAll() { s.notify() }

type waitEntry struct {
	w        Waker
	dead     bool // cancelled before a notification reached it
	notified bool // popped by notify/notifyAll; no longer queued
}

// wakeQueue keeps every registered waker in FIFO order and wakes the
// oldest first, so no blocked caller can be starved by later
// registrations. This is the default registry.
type wakeQueue struct {
	mu sync.Mutex
	ws []*waitEntry
}

func (q *wakeQueue) register(w Waker) func() {
	e := &waitEntry{w: w}

	q.mu.Lock()
	q.ws = append(q.ws, e)
	q.mu.Unlock()

	// cancel removes a still-queued entry outright. If a notification
	// already consumed the entry, the caller is abandoning a wake it
	// will never act on, so the notification is passed to the next
	// live waiter instead of being lost.
	return func() {
		q.mu.Lock()
		forward := e.notified && !e.dead
		e.dead = true
		e.w = nil
		if !e.notified {
			for i, queued := range q.ws {
				if queued == e {
					q.ws = append(q.ws[:i], q.ws[i+1:]...)
					break
				}
			}
		}
		q.mu.Unlock()

		if forward {
			q.notify()
		}
	}
}

func (q *wakeQueue) notify() {
	q.mu.Lock()
	var w Waker
	for len(q.ws) > 0 {
		e := q.ws[0]
		q.ws[0] = nil
		q.ws = q.ws[1:]
		if !e.dead {
			e.notified = true
			w = e.w
			break
		}
	}
	q.mu.Unlock()

	if w != nil {
		w.Wake()
	}
}

func (q *wakeQueue) notifyAll() {
	q.mu.Lock()
	ws := make([]Waker, 0, len(q.ws))
	for _, e := range q.ws {
		if !e.dead {
			e.notified = true
			ws = append(ws, e.w)
		}
	}
	q.ws = nil
	q.mu.Unlock()

	for _, w := range ws {
		w.Wake()
	}
}
