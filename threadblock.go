package uthread

import "weak"

// ThreadBlock is the per-fiber record: identity, lifecycle status, owned
// context, a non-owning back-reference to its creator, and the ring
// pointers used by exactly one ready queue at a time.
type ThreadBlock struct {
	id     int64
	status Status

	context *Context

	// parent is a weak, non-owning back-reference to the ThreadBlock that
	// created this one. It must never be dereferenced to extend the
	// parent's lifetime, and it naturally yields the zero Pointer once the
	// parent has become unreachable.
	parent weak.Pointer[ThreadBlock]

	// numberOfChildren is write-only: incremented by ScheduleThread,
	// decremented by nothing, consumed by nothing. Reserved for a future
	// join primitive (see DESIGN.md, Open Question 1).
	numberOfChildren int64

	next, previous *ThreadBlock
}

// ID returns the thread's monotonically increasing, process-unique id.
func (t *ThreadBlock) ID() int64 { return t.id }

// Status returns the thread's current lifecycle status.
func (t *ThreadBlock) Status() Status { return t.status }

// Parent returns the creating ThreadBlock, or nil if it has no parent or
// the parent has already terminated.
func (t *ThreadBlock) Parent() *ThreadBlock { return t.parent.Value() }

// singleton reports whether t is the only member of its ring.
func (t *ThreadBlock) singleton() bool { return t.next == t }
