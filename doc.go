// Package uthread implements a preemptive user-space thread (fiber)
// scheduler: many lightweight threads of control, each with its own stack
// and saved execution state, multiplexed onto a single logical kernel
// thread. A periodic virtual-CPU-time timer preempts the running fiber so
// that a strict three-level priority scheduler (LOW, MEDIUM, HIGH) can
// rotate between ready fibers, round-robin within a priority level.
//
// A [Scheduler] owns exactly one claim on the process-wide SIGVTALRM timer;
// at most one may be active in a process at a time (see [New]). Fibers are
// created with [Scheduler.ScheduleThread] and may terminate either by
// returning normally from their entry function or by calling
// [Scheduler.ExitThread]. The timer only flags that a preemption is due; a
// running fiber services it, and so actually gives up the processor, by
// calling [Scheduler.Yield].
package uthread
