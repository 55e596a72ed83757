package uthread

import (
	"sync/atomic"
	"time"
)

// preemptionDriver owns the real OS-level interval timer and the
// asynchronous relay that turns its ticks into calls to onPreempt. Exactly
// one driver may be active per process (see claimPreemptionTimer), since
// the underlying facility (a process-wide virtual-CPU-time timer, see
// DESIGN.md) cannot be scoped to one Scheduler the way the original
// per-kernel-thread design intended.
type preemptionDriver interface {
	// arm starts delivering ticks to onPreempt every interval, until stop
	// is called. onPreempt is invoked from a dedicated relay goroutine,
	// never concurrently with itself, and never the goroutine of whichever
	// fiber is logically "current" — it must therefore be cheap and
	// non-blocking, limited to recording that a tick arrived (see
	// Scheduler.requestPreemption), never a direct reschedule/context swap.
	arm(interval time.Duration, onPreempt func(), onError func(error)) error
	// stop disarms the timer and halts the relay goroutine. Idempotent.
	stop()
}

// processPreemptionClaimed guards against more than one live Scheduler in
// the process, since the preemption driver's timer and signal are
// process-wide resources (see DESIGN.md, "per-thread timer ->
// process-wide ITIMER_VIRTUAL").
var processPreemptionClaimed atomic.Bool

func claimPreemptionTimer() bool {
	return processPreemptionClaimed.CompareAndSwap(false, true)
}

func releasePreemptionTimer() {
	processPreemptionClaimed.Store(false)
}
