//go:build unix

package uthread

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// unixPreemptionDriver arms a process-wide ITIMER_VIRTUAL (CPU-time domain)
// and relays its SIGVTALRM deliveries to onPreempt via a dedicated
// goroutine, standing in for the original per-kernel-thread
// timer_create/SIGEV_THREAD_ID facility (see DESIGN.md for why a
// process-wide timer is the closest portable substitute reachable from
// pure Go). relay's goroutine is never the goroutine of any fiber, so
// onPreempt must stay a cheap, non-blocking flag set (Scheduler never
// reschedules from here — see Scheduler.requestPreemption).
type unixPreemptionDriver struct {
	sigCh chan os.Signal
	done  chan struct{}
}

func newPreemptionDriver() preemptionDriver {
	return &unixPreemptionDriver{}
}

func (d *unixPreemptionDriver) arm(interval time.Duration, onPreempt func(), onError func(error)) error {
	d.sigCh = make(chan os.Signal, 1)
	d.done = make(chan struct{})

	signal.Notify(d.sigCh, syscall.SIGVTALRM)

	it := unix.Itimerval{
		Value:    unix.NsecToTimeval(interval.Nanoseconds()),
		Interval: unix.NsecToTimeval(interval.Nanoseconds()),
	}
	if err := unix.Setitimer(unix.ITIMER_VIRTUAL, &it, nil); err != nil {
		signal.Stop(d.sigCh)
		return err
	}

	go d.relay(onPreempt, onError)
	return nil
}

func (d *unixPreemptionDriver) relay(onPreempt func(), onError func(error)) {
	for {
		select {
		case <-d.sigCh:
			onPreempt()
		case <-d.done:
			return
		}
	}
}

func (d *unixPreemptionDriver) stop() {
	if d.done == nil {
		return
	}
	select {
	case <-d.done:
		return
	default:
	}
	var zero unix.Itimerval
	_ = unix.Setitimer(unix.ITIMER_VIRTUAL, &zero, nil)
	signal.Stop(d.sigCh)
	close(d.done)
}
