//go:build unix

package keyboard

import (
	"time"

	"golang.org/x/sys/unix"
)

const focusPollTimeoutMs = 10

// stdinFocus watches the process's stdin with a short poll timeout and
// discards whatever bytes arrive, keeping only their arrival instant.
// The terminal is already in raw mode by the time the engine runs, so
// bytes show up per keypress rather than per line.
type stdinFocus struct {
	fd  int
	buf [128]byte
}

func newStdinFocus() FocusSource {
	return &stdinFocus{fd: 0}
}

func (f *stdinFocus) Wait(stop <-chan struct{}) (time.Time, bool) {
	select {
	case <-stop:
		return time.Time{}, false
	default:
	}

	fds := []unix.PollFd{{Fd: int32(f.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, focusPollTimeoutMs)
	if err != nil || n == 0 {
		return time.Time{}, false
	}

	at := time.Now()
	// Drain the readable bytes; their content is irrelevant here.
	if _, err := unix.Read(f.fd, f.buf[:]); err != nil {
		return time.Time{}, false
	}
	return at, true
}

func (f *stdinFocus) Close() error {
	// stdin is shared with the terminal backend; nothing to release.
	return nil
}
