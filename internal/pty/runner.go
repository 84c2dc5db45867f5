// Package pty abstracts spawning an interactive process behind a
// pseudo-terminal so the shell overlay can be tested without one.
package pty

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner spawns and controls a PTY. Implementations can be swapped
// (creack/pty in the app, StubRunner in tests).
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// CreackPTY implements Runner using github.com/creack/pty.
type CreackPTY struct{}

var _ Runner = (*CreackPTY)(nil)

// Start spawns cmd in a PTY with the given size. Context cancellation is
// the caller's job (close the returned ReadWriteCloser).
func (c *CreackPTY) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	ws := &pty.Winsize{Rows: size.Rows, Cols: size.Cols}
	f, err := pty.StartWithSize(cmd, ws)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Resize resizes the PTY. The rwc must be the *os.File returned by Start;
// other types are a no-op.
func (c *CreackPTY) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}
