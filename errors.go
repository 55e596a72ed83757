package uthread

import "errors"

var (
	// ErrAlreadyInitialized is returned by New when the process-wide
	// preemption timer is already claimed by another live Scheduler.
	ErrAlreadyInitialized = errors.New("uthread: preemption timer already claimed by another scheduler")

	// ErrInvalidPriority is returned by ScheduleThread when given a
	// priority tag outside {PriorityLow, PriorityMedium, PriorityHigh}.
	ErrInvalidPriority = errors.New("uthread: invalid priority")

	// ErrSchedulerClosed is returned by operations attempted after Close.
	ErrSchedulerClosed = errors.New("uthread: scheduler closed")

	// ErrUnsupportedPlatform is returned by the preemption driver on
	// platforms without a CPU-time interval timer facility.
	ErrUnsupportedPlatform = errors.New("uthread: preemption driver unsupported on this platform")

	// ErrRateLimited is returned by ScheduleThread when a configured
	// per-priority creation rate limiter rejects the request.
	ErrRateLimited = errors.New("uthread: thread creation rate limited")
)
