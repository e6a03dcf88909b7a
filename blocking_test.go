package mpsc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRecvBlocking(t *testing.T) {
	ctx := context.Background()
	tx, rx := New[int](1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer tx.Close()
		for i := 1; i <= 10; i++ {
			if err := tx.Send(ctx, i); err != nil {
				t.Errorf("Send(%d): %v", i, err)
				return
			}
		}
	}()

	var got []int
	for {
		v, err := rx.Recv(ctx)
		if err != nil {
			require.ErrorIs(t, err, ErrClosed)
			break
		}
		got = append(got, v)
	}
	<-done

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, got)
}

func TestSendContextCanceled(t *testing.T) {
	tx, _ := New[int](1)
	require.NoError(t, tx.TrySend(1)) // fill the buffer

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tx.Send(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecvContextCanceled(t *testing.T) {
	_, rx := New[int](1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := rx.Recv(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSendAfterReceiverCloseBlocking(t *testing.T) {
	tx, rx := New[int](1)
	rx.Close()

	err := tx.Send(context.Background(), 1)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestRecvUnblocksOnSenderClose(t *testing.T) {
	tx, rx := New[int](1)

	go func() {
		time.Sleep(10 * time.Millisecond)
		tx.Close()
	}()

	_, err := rx.Recv(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestRecvBatch(t *testing.T) {
	ctx := context.Background()
	tx, rx := New[int](8)
	for i := 1; i <= 5; i++ {
		require.NoError(t, tx.TrySend(i))
	}
	tx.Close()

	batch, err := rx.RecvBatch(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, batch)

	// The channel closes before the batch fills: partial batch,
	// nil error.
	batch, err = rx.RecvBatch(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, batch)

	batch, err = rx.RecvBatch(ctx, 3)
	assert.ErrorIs(t, err, ErrClosed)
	assert.Nil(t, batch)
}

func TestRecvBatchBlocksForFullBatch(t *testing.T) {
	ctx := context.Background()
	tx, rx := New[int](2)

	go func() {
		defer tx.Close()
		for i := 1; i <= 4; i++ {
			if err := tx.Send(ctx, i); err != nil {
				return
			}
		}
	}()

	// More items than the buffer holds at once: the batch must wait
	// for each value rather than stop at the first empty poll.
	batch, err := rx.RecvBatch(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, batch)
}

func TestRecvBatchContextCanceled(t *testing.T) {
	tx, rx := New[int](4)
	require.NoError(t, tx.TrySend(1))
	require.NoError(t, tx.TrySend(2))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	batch, err := rx.RecvBatch(ctx, 5)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, []int{1, 2}, batch, "partial batch returned with the error")
}

func TestRecvBatchInvalidSizePanics(t *testing.T) {
	_, rx := New[int](1)
	mustPanic(t, "RecvBatch requires n > 0", func() {
		rx.RecvBatch(context.Background(), 0)
	})
}

// TestCancelledSendDoesNotEatWake covers the abandoned-registration
// case: producer A blocks, is cancelled, and producer B blocked
// behind it must still be woken when a slot frees up.
func TestCancelledSendDoesNotEatWake(t *testing.T) {
	tx, rx := New[int](1)
	require.NoError(t, tx.TrySend(0)) // fill the buffer

	actx, acancel := context.WithCancel(context.Background())
	aErr := make(chan error, 1)
	go func() { aErr <- tx.Send(actx, 1) }()
	time.Sleep(20 * time.Millisecond) // let A block first

	tx2 := tx.Clone()
	bErr := make(chan error, 1)
	go func() { bErr <- tx2.Send(context.Background(), 2) }()
	time.Sleep(20 * time.Millisecond) // let B queue behind A

	acancel()
	require.ErrorIs(t, <-aErr, context.Canceled)

	// Free one slot; the notification must reach B even though A
	// registered first and abandoned its wait.
	v, st := rx.PollRecv(nil)
	require.Equal(t, RecvReady, st)
	require.Equal(t, 0, v)

	select {
	case err := <-bErr:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("second producer never woke after a slot freed up")
	}

	v, err := rx.TryRecv()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	tx.Close()
	tx2.Close()
}

// TestCancelledRecvDoesNotEatWake is the receive-side counterpart: a
// consumer that blocks, is cancelled, and polls again must still see
// data sent in between.
func TestCancelledRecvDoesNotEatWake(t *testing.T) {
	tx, rx := New[int](1)
	defer tx.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := rx.Recv(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, tx.TrySend(7))
	v, err := rx.Recv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestDrain(t *testing.T) {
	ctx := context.Background()
	tx, rx := New[int](8)
	for i := 0; i < 6; i++ {
		require.NoError(t, tx.TrySend(i))
	}
	tx.Close()

	n, err := rx.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestDrainContextCanceled(t *testing.T) {
	tx, rx := New[int](4)
	require.NoError(t, tx.TrySend(1))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	n, err := rx.Drain(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, n)
}
