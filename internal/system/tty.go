//go:build linux

package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// Prefer /dev/tty (active VT), fallback to /dev/tty0.
var vtPaths = []string{"/dev/tty", "/dev/tty0"}

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// EnterGraphics switches the active console to KD_GRAPHICS and hides the
// cursor so the framebuffer is not overdrawn by the text console. The
// returned function restores text mode and is safe to call when entering
// failed.
func EnterGraphics(l logger) (restore func()) {
	err := setMode(kdGraphics)
	logResult(l, "KD_GRAPHICS set", "KD_GRAPHICS failed", err)
	graphics := err == nil
	logResult(l, "cursor hidden", "hide cursor failed", writeVT("\x1b[?25l"))

	return func() {
		logResult(l, "cursor shown", "show cursor failed", writeVT("\x1b[?25h"))
		if graphics {
			logResult(l, "KD_TEXT set", "KD_TEXT failed", setMode(kdText))
		}
	}
}

func setMode(mode int) error {
	var lastErr error
	for _, p := range vtPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	return lastErr
}

func writeVT(s string) error {
	var lastErr error
	for _, p := range vtPaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT failed: %v", lastErr)
}

func logResult(l logger, ok, failed string, err error) {
	if l == nil {
		return
	}
	if err != nil {
		l.Errorf("tty", "%s: %v", failed, err)
		return
	}
	l.Infof("tty", "%s", ok)
}
