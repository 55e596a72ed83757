package uthread

import "time"

// logCreated logs a fiber's creation. A nil logger is always safe: the
// logiface Logger's zero value and nil pointer both produce a disabled,
// allocation-free builder chain. now is stamped from the Scheduler's
// configured clock (see WithClock) rather than left to whatever wall-clock
// source the logging backend defaults to, so a fixed clock in tests
// produces a fixed, assertable timestamp field.
func logCreated(l *Logger, now time.Time, id int64, pr Priority, parentID int64, hasParent bool) {
	b := l.Debug().
		Time(`logged_at`, now).
		Int64(`id`, id).
		Str(`priority`, pr.String())
	if hasParent {
		b = b.Int64(`parent`, parentID)
	}
	b.Log(`thread scheduled`)
}

func logExited(l *Logger, now time.Time, id int64, implicit bool) {
	l.Debug().
		Time(`logged_at`, now).
		Int64(`id`, id).
		Bool(`implicit`, implicit).
		Log(`thread exited`)
}

func logRejectedPriority(l *Logger, now time.Time, pr Priority) {
	l.Warning().
		Time(`logged_at`, now).
		Str(`priority`, pr.String()).
		Log(`rejected invalid priority`)
}

func logRateLimited(l *Logger, now time.Time, pr Priority) {
	l.Warning().
		Time(`logged_at`, now).
		Str(`priority`, pr.String()).
		Log(`rejected: rate limited`)
}

// logPreemptionArmed also logs which OS thread is hosting the scheduler's
// goroutine at arm time (see hostThreadID), for correlating this process's
// preemption timer with OS-level diagnostics (e.g. strace/perf output
// keyed by tid). The goroutine is not pinned to that thread afterward.
func logPreemptionArmed(l *Logger, now time.Time, timeSliceNanos int64, hostTID int) {
	l.Info().
		Time(`logged_at`, now).
		Int64(`time_slice_ns`, timeSliceNanos).
		Int(`host_thread_id`, hostTID).
		Log(`preemption timer armed`)
}

func logPreemptionError(l *Logger, now time.Time, err error) {
	l.Err().
		Time(`logged_at`, now).
		Err(err).
		Log(`preemption driver error`)
}

func logClosed(l *Logger, now time.Time) {
	l.Info().
		Time(`logged_at`, now).
		Log(`scheduler closed`)
}
