package uthread

import (
	"runtime"
	"weak"
)

// ScheduleThread creates a new fiber running entry(arg) at priority pr and
// makes it ready to run. If stackSize is 0, the Scheduler's configured
// default (see WithStackSize) is used. It returns the new thread's id. On
// a closed Scheduler it returns -1 and ErrSchedulerClosed.
//
// An invalid pr (anything other than PriorityLow/Medium/High) is rejected
// before any allocation occurs, returning ErrInvalidPriority — this is a
// deliberate correction of the documented original behavior, which silently
// allocated and then abandoned a ThreadBlock for an out-of-range priority
// tag (see SPEC_FULL.md, REDESIGN FLAGS).
func (s *Scheduler) ScheduleThread(entry func(arg any), arg any, pr Priority, stackSize uint) (int64, error) {
	if s.closed.Load() {
		return -1, ErrSchedulerClosed
	}
	if !pr.valid() {
		logRejectedPriority(s.logger, s.clock(), pr)
		return 0, ErrInvalidPriority
	}
	if !s.allowCreate(pr) {
		logRateLimited(s.logger, s.clock(), pr)
		return 0, ErrRateLimited
	}
	if stackSize == 0 {
		stackSize = s.opts.stackSize
	}

	id := s.idCounter.Add(1)
	block := &ThreadBlock{
		id:     id,
		status: StatusReady,
	}
	block.context = newContext(func(a any) { entry(a) }, arg, s.exitContext, stackSize)

	s.gate.Lock()
	var parentID int64
	var hasParent bool
	if parent := s.currentRunningThread(); parent != nil {
		block.parent = weak.Make(parent)
		parent.numberOfChildren++
		parentID = parent.id
		hasParent = true
	}
	s.queues[pr].addTail(block)
	logCreated(s.logger, s.clock(), id, pr, parentID, hasParent)

	// Reschedule(false) decides whether this preempts the caller: it may
	// context-switch immediately (the caller only regains control once
	// nothing of equal-or-greater claim to the CPU remains selected ahead
	// of it), or it may return right back here unchanged.
	s.reschedule(false)
	return id, nil
}

// ExitThread terminates the calling fiber immediately: it does not return.
// Calling it from the main goroutine (outside any fiber) is a programming
// error and panics, matching the precondition that SetContext(main) is only
// ever a scheduler-internal transfer.
//
// Control is handed off to whichever fiber (or main) Reschedule selects
// before this call unwinds the calling goroutine's stack via
// runtime.Goexit, so the abandoned entry function never resumes executing
// after the explicit exit point.
func (s *Scheduler) ExitThread() {
	s.gate.Lock()
	current := s.currentRunningThread()
	if current == nil {
		s.gate.Unlock()
		panic("uthread: ExitThread called with no fiber running")
	}
	id := current.id
	s.reschedule(true)
	logExited(s.logger, s.clock(), id, false)
	runtime.Goexit()
}

// Yield offers the scheduler a chance to switch the calling fiber out for
// another ready fiber of equal or higher priority, and is the only place a
// preemption tick actually takes effect. The timer's relay goroutine
// cannot safely perform the context transfer itself (see
// requestPreemption); it only marks a tick pending, which the running
// fiber clears and services here, on its own goroutine, where swapTo's
// contract holds. Calling Yield with no tick pending is harmless: it
// behaves as a plain voluntary cooperative yield, matching the state
// model's "timer tick / yield" transition being one and the same edge.
// Calling it from the main goroutine (outside any fiber) is a no-op.
func (s *Scheduler) Yield() {
	s.pendingPreempt.Store(false)
	s.gate.Lock()
	if s.runningQueue == priorityUndefined {
		s.gate.Unlock()
		return
	}
	s.reschedule(false)
}
