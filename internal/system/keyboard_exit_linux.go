//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

// pollTimeoutMs bounds how long a watcher waits before rechecking ctx.
const pollTimeoutMs = 250

// StartExitOnKey watches the evdev devices under /dev/input and calls onExit
// once when one of ExitKeys is pressed. Watchers stop when ctx is done or after
// the first exit key. Devices that cannot be opened are skipped.
func StartExitOnKey(ctx context.Context, l logger, onExit func()) {
	if onExit == nil {
		return
	}
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if l != nil {
			l.Infof("input", "no evdev devices found for exit key")
		}
		return
	}

	tvSize := binary.Size(unix.Timeval{})
	watchCtx, cancel := context.WithCancel(ctx)
	pressed := make(chan string, len(paths))

	var wg sync.WaitGroup
	for _, path := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if name, ok := watchDevice(watchCtx, path, tvSize); ok {
				pressed <- name
			}
		}()
	}

	go func() {
		defer cancel()
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case name := <-pressed:
			if l != nil {
				l.Infof("input", "%s pressed: exiting", name)
			}
			cancel()
			onExit()
		case <-watchCtx.Done():
		case <-done:
			if l != nil {
				l.Infof("input", "all input devices closed")
			}
		}
	}()
}

// watchDevice reads input events from path until an exit key is pressed, ctx
// is done, or the device fails.
func watchDevice(ctx context.Context, path string, tvSize int) (string, bool) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return "", false
	}
	defer unix.Close(fd)

	buf := make([]byte, 64*eventSize(tvSize))
	for ctx.Err() == nil {
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(fds, pollTimeoutMs); err != nil {
			if err == unix.EINTR {
				continue
			}
			return "", false
		}
		if fds[0].Revents&unix.POLLIN == 0 {
			if fds[0].Revents&(unix.POLLERR|unix.POLLHUP) != 0 {
				return "", false
			}
			continue
		}
		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return "", false
		}
		if name, ok := scanExitKey(buf[:n], tvSize); ok {
			return name, true
		}
	}
	return "", false
}
