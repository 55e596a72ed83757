package uthread

import (
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/joeycumines/ilogrus"
	"github.com/joeycumines/logiface"
)

// Logger is the structured logger type accepted by WithLogger, a direct
// alias of the logiface generic logger bound to the logrus-backed event
// type (see logging.go).
type Logger = logiface.Logger[*ilogrus.Event]

const (
	defaultStackSize uint          = 64 * 1024
	defaultTimeSlice time.Duration = 10 * time.Millisecond
)

// schedulerOptions holds resolved configuration for New.
type schedulerOptions struct {
	stackSize uint
	timeSlice time.Duration
	logger    *Logger
	limiter   *catrate.Limiter
	clock     func() time.Time
}

// Option configures a Scheduler at construction time.
type Option interface {
	apply(*schedulerOptions) error
}

type optionFunc func(*schedulerOptions) error

func (f optionFunc) apply(o *schedulerOptions) error { return f(o) }

// WithStackSize sets the default stack size (in bytes) used when
// ScheduleThread is called with stackSize == 0. Go goroutine stacks grow
// and shrink automatically; this value is preserved on each ThreadBlock's
// Context purely for API fidelity and observability, not used to size a
// manually managed buffer.
func WithStackSize(bytes uint) Option {
	return optionFunc(func(o *schedulerOptions) error {
		if bytes > 0 {
			o.stackSize = bytes
		}
		return nil
	})
}

// WithTimeSlice sets the preemption quantum. Values <= 0 are ignored (the
// default is retained).
func WithTimeSlice(d time.Duration) Option {
	return optionFunc(func(o *schedulerOptions) error {
		if d > 0 {
			o.timeSlice = d
		}
		return nil
	})
}

// WithLogger attaches a structured logger for lifecycle events (thread
// creation/exit, rejected priorities, preemption-driver errors). The
// scheduler's hot path (Reschedule) never logs; a nil logger (the default)
// is always safe to use.
func WithLogger(l *Logger) Option {
	return optionFunc(func(o *schedulerOptions) error {
		o.logger = l
		return nil
	})
}

// WithRateLimiter attaches an optional per-priority thread-creation rate
// limiter. ScheduleThread consults Allow(priority) before enqueueing, and
// returns ErrRateLimited when the budget for that priority is exceeded.
func WithRateLimiter(l *catrate.Limiter) Option {
	return optionFunc(func(o *schedulerOptions) error {
		o.limiter = l
		return nil
	})
}

// WithClock overrides the time source stamped onto every lifecycle log
// record (thread creation/exit, rejected priorities, preemption-driver
// errors, arm/close events — see logging.go). catrate.Limiter's own sliding
// window has no clock-injection hook, so rate-limiting decisions always use
// the real wall clock regardless of this option. Intended for deterministic
// tests that assert on logged timestamps.
func WithClock(now func() time.Time) Option {
	return optionFunc(func(o *schedulerOptions) error {
		if now != nil {
			o.clock = now
		}
		return nil
	})
}

func resolveOptions(opts []Option) (*schedulerOptions, error) {
	o := &schedulerOptions{
		stackSize: defaultStackSize,
		timeSlice: defaultTimeSlice,
		clock:     time.Now,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
