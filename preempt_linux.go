//go:build linux

package uthread

import "golang.org/x/sys/unix"

// hostThreadID returns the kernel thread id hosting this goroutine, used
// only as a diagnostic logging field (Go's M:N scheduler does not keep a
// goroutine pinned to one OS thread unless it calls runtime.LockOSThread,
// and even then fiber bodies are ordinary goroutines, not pinned ones).
func hostThreadID() int {
	return unix.Gettid()
}
