package uthread

import (
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler is one instance of the preemptive fiber scheduler: the
// Go-idiomatic expression of the distilled spec's "global per-kernel-thread
// state," returned as an explicit handle by New rather than kept as a
// package-level singleton (see DESIGN.md, Open Question 2 resolution).
type Scheduler struct {
	opts *schedulerOptions

	logger  *Logger
	limiter interface {
		Allow(category any) (time.Time, bool)
	}

	driver preemptionDriver
	clock  func() time.Time

	// gate serializes every Ready-Queue Set mutation, standing in for the
	// Block/Unblock signal-mask protocol (see DESIGN.md, "Preemption
	// Driver" substitution #2).
	gate sync.Mutex

	// pendingPreempt records that a timer tick arrived while a fiber was
	// running. It is only ever set from the driver's relay goroutine (see
	// requestPreemption) and only ever cleared by the running fiber's own
	// goroutine servicing it via Yield — never touched while holding gate.
	pendingPreempt atomic.Bool

	queues       [3]readyQueue // indexed by Priority
	runningQueue Priority      // priorityUndefined when no thread runs
	runningCtx   atomic.Pointer[ThreadBlock]

	idCounter *atomic.Int64 // points at threadIDs, shared process-wide

	mainContext *Context
	exitContext *Context // linked-context target: funnels returns into exit

	closed atomic.Bool
}

// threadIDs is the thread id counter shared by every Scheduler, so ids keep
// increasing across successive Schedulers in one process and never repeat.
var threadIDs atomic.Int64

// New constructs a Scheduler: allocates the per-instance state, captures
// the main context eagerly (resolving Open Question 4 structurally — there
// is no window in which a thread could exist before main is captured),
// installs the preemption handler, and arms the timer. At most one
// Scheduler may be active per process at a time; a second concurrent
// attempt returns ErrAlreadyInitialized.
func New(opts ...Option) (*Scheduler, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	if !claimPreemptionTimer() {
		return nil, ErrAlreadyInitialized
	}

	s := &Scheduler{
		opts:         o,
		logger:       o.logger,
		clock:        o.clock,
		runningQueue: priorityUndefined,
		driver:       newPreemptionDriver(),
		idCounter:    &threadIDs,
	}
	if o.limiter != nil {
		s.limiter = o.limiter
	}
	s.mainContext = newContext(nil, nil, nil, 0)
	s.exitContext = newPersistentContext(func(any) { s.handleExit() })

	if err := s.driver.arm(o.timeSlice, s.requestPreemption, func(err error) {
		logPreemptionError(s.logger, s.clock(), err)
	}); err != nil {
		releasePreemptionTimer()
		return nil, err
	}

	logPreemptionArmed(s.logger, s.clock(), o.timeSlice.Nanoseconds(), hostThreadID())
	return s, nil
}

// Close disarms the preemption timer and releases the process-wide claim.
// It does not forcibly terminate any still-running fiber; Close is meant
// to be called once all fibers have exited (the Empty-all law) or when the
// host is shutting down regardless.
func (s *Scheduler) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrSchedulerClosed
	}
	s.driver.stop()
	releasePreemptionTimer()
	logClosed(s.logger, s.clock())
	return nil
}

// currentRunningThread returns the ThreadBlock occupying RUNNING status, or
// nil if none does.
func (s *Scheduler) currentRunningThread() *ThreadBlock {
	return s.runningCtx.Load()
}

// pickNext implements §4.3 step 3: scan HIGH->LOW, return the queue head
// (preempting a lower or absent priority) or head.next (round-robin
// rotation within the priority that is already running).
func (s *Scheduler) pickNext() (*ThreadBlock, Priority) {
	for _, pr := range priorityScanOrder {
		q := &s.queues[pr]
		if q.head == nil {
			continue
		}
		if s.runningQueue == pr {
			return q.head.next, pr
		}
		return q.head, pr
	}
	return nil, priorityUndefined
}

// reschedule implements the Reschedule(removeRunning) routine of §4.3.
// Must be called with s.gate held; reschedule releases it at the correct
// point for each branch (immediately before any context transfer, never
// while a goroutine is parked waiting to be resumed).
func (s *Scheduler) reschedule(removeRunning bool) {
	current := s.currentRunningThread()

	if removeRunning && current != nil {
		s.queues[s.runningQueue].remove(current)
		// The outgoing thread no longer occupies any queue, so its former
		// priority must not be treated as "already running" for rotation
		// purposes below — whatever is picked next is a fresh dispatch,
		// exactly like the first-run case, even within the same priority.
		s.runningQueue = priorityUndefined
	}

	next, queueIdx := s.pickNext()

	switch {
	case next == nil:
		// Empty case (§4.3 step 4): all queues empty, return to main.
		s.runningQueue = priorityUndefined
		s.runningCtx.Store(nil)
		s.gate.Unlock()
		s.mainContext.wake()
		return

	case current != nil && next == current:
		// Same-thread case (§4.3 step 5): alone in its queue, not removed.
		s.gate.Unlock()
		return

	case current == nil:
		// First-run case (§4.3 step 6).
		s.queues[queueIdx].moveToHead(next)
		next.status = StatusRunning
		s.runningQueue = queueIdx
		s.runningCtx.Store(next)
		s.gate.Unlock()
		s.mainContext.swapTo(next.context)
		return

	default:
		// General case (§4.3 step 7).
		s.queues[queueIdx].moveToHead(next)
		next.status = StatusRunning
		s.runningQueue = queueIdx
		s.runningCtx.Store(next)
		if !removeRunning {
			current.status = StatusReady
		}
		s.gate.Unlock()
		if removeRunning {
			current.context.handoffTo(next.context)
			return
		}
		current.context.swapTo(next.context)
		return
	}
}

// requestPreemption is the Preemption Driver's tick handler (§4.4). It runs
// on the driver's own relay goroutine, which is never the goroutine of
// whichever fiber is logically "current" — so it must not call reschedule
// or touch any Context directly. reschedule's general case ends in
// current.context.swapTo(next.context), and swapTo's contract ("resume to,
// then block until resumed again") is only sound when the calling goroutine
// IS current: called from a third-party goroutine instead, it wakes next's
// goroutine to run concurrently with current's still-executing one, and
// then blocks the relay goroutine forever on a channel nothing will ever
// signal, deadlocking every subsequent tick. requestPreemption only records
// that a tick arrived; the running fiber is the one that actually services
// it, on its own goroutine, the next time it calls Yield.
func (s *Scheduler) requestPreemption() {
	s.pendingPreempt.Store(true)
}

// handleExit is the entry function of exitContext, the linked continuation
// every fiber's Context transfers to on natural return (§4.1's "funnels
// returns into the thread-exit routine"). ExitThread does not go through
// handleExit: it performs the same reschedule(true) itself and then ends
// its goroutine with runtime.Goexit.
func (s *Scheduler) handleExit() {
	s.gate.Lock()
	id := int64(0)
	if t := s.currentRunningThread(); t != nil {
		id = t.id
	}
	s.reschedule(true)
	logExited(s.logger, s.clock(), id, true)
}
