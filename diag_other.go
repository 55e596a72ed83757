//go:build !linux

package uthread

// hostThreadID is unavailable outside Linux (gettid has no portable
// equivalent exposed by golang.org/x/sys/unix on every unix target); -1
// signals "unknown" to diagnostic logging.
func hostThreadID() int {
	return -1
}
