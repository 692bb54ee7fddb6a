//go:build !linux

package system

import "context"

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// EnterGraphics is a no-op outside Linux.
func EnterGraphics(l logger) (restore func()) {
	if l != nil {
		l.Infof("tty", "console mode switching unsupported on this platform")
	}
	return func() {}
}

// StartExitOnKey is a no-op outside Linux.
func StartExitOnKey(ctx context.Context, l logger, onExit func()) {}
