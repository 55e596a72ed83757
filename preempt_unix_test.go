//go:build unix

package uthread

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestScheduler_RealPreemptionRelayDoesNotDeadlock drives the actual
// SIGVTALRM relay in preempt_unix.go, rather than simulating a tick by
// calling a scheduler method directly from within a fiber's own goroutine
// the way the other tests in this package do. Before requestPreemption was
// split out, the relay goroutine called reschedule's general case directly,
// which ends in current.context.swapTo(next.context) — sound only when the
// calling goroutine IS current. Called from the relay goroutine instead, it
// would wake the next fiber's goroutine to run concurrently with current's
// still-executing one, then block the relay goroutine forever on a channel
// nothing sends to, deadlocking the first time a real tick needed to switch
// between two distinct ready fibers. Two MEDIUM fibers spin and
// continuously Yield while the real timer fires in the background; if the
// relay path regresses to calling reschedule itself, this test hangs until
// its own timeout fires.
func TestScheduler_RealPreemptionRelayDoesNotDeadlock(t *testing.T) {
	s, err := New(WithTimeSlice(2 * time.Millisecond))
	require.NoError(t, err)
	defer s.Close()

	const spins = 20_000
	var aYields, bYields atomic.Int64

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := s.ScheduleThread(func(any) {
			_, err := s.ScheduleThread(func(any) {
				for i := 0; i < spins; i++ {
					s.Yield()
					aYields.Add(1)
				}
			}, nil, PriorityMedium, 0)
			if err != nil {
				panic(err)
			}

			_, err = s.ScheduleThread(func(any) {
				for i := 0; i < spins; i++ {
					s.Yield()
					bYields.Add(1)
				}
			}, nil, PriorityMedium, 0)
			if err != nil {
				panic(err)
			}
		}, nil, PriorityHigh, 0)
		if err != nil {
			panic(err)
		}
	}()

	select {
	case <-done:
	case <-time.After(20 * time.Second):
		t.Fatal("real preemption relay deadlocked switching between two ready fibers")
	}

	require.EqualValues(t, spins, aYields.Load())
	require.EqualValues(t, spins, bYields.Load())
}
