//go:build windows

package uthread

import "time"

// windowsPreemptionDriver is a stub: Windows has no CPU-time-domain
// interval timer with per-thread signal delivery exposed by this module's
// dependency set. arm always fails with ErrUnsupportedPlatform, following
// the teacher lineage's precedent of per-OS stub files for a facility that
// exists on some platforms and not others.
type windowsPreemptionDriver struct{}

func newPreemptionDriver() preemptionDriver {
	return &windowsPreemptionDriver{}
}

func (d *windowsPreemptionDriver) arm(time.Duration, func(), func(error)) error {
	return ErrUnsupportedPlatform
}

func (d *windowsPreemptionDriver) stop() {}
