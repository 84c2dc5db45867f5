package pty

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"sync"
)

// StubRunner implements Runner without spawning anything. Writes are
// recorded; Reads drain whatever the test queued via Feed. Used by UI
// tests that exercise the shell overlay.
type StubRunner struct {
	LastCmd  *exec.Cmd
	LastSize Size
	Resizes  []Size
	StartErr error

	conn *stubConn
}

var _ Runner = (*StubRunner)(nil)

// Start records the command and returns an in-memory connection.
func (s *StubRunner) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	if s.StartErr != nil {
		return nil, s.StartErr
	}
	s.LastCmd = cmd
	s.LastSize = size
	s.conn = &stubConn{}
	return s.conn, nil
}

// Resize records the requested size.
func (s *StubRunner) Resize(rwc io.ReadWriteCloser, size Size) error {
	s.Resizes = append(s.Resizes, size)
	return nil
}

// Feed queues data for the next Read on the stub connection.
func (s *StubRunner) Feed(data []byte) {
	if s.conn != nil {
		s.conn.feed(data)
	}
}

// Written returns everything written to the stub connection so far.
func (s *StubRunner) Written() []byte {
	if s.conn == nil {
		return nil
	}
	return s.conn.written()
}

// Closed reports whether the connection was closed.
func (s *StubRunner) Closed() bool {
	return s.conn != nil && s.conn.isClosed()
}

type stubConn struct {
	mu     sync.Mutex
	ready  *sync.Cond
	out    bytes.Buffer // data queued for Read
	in     bytes.Buffer // data collected from Write
	closed bool
}

// Read blocks until data is fed or the connection is closed, mirroring a
// real PTY read so the overlay's reader goroutine does not spin.
func (c *stubConn) Read(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready == nil {
		c.ready = sync.NewCond(&c.mu)
	}
	for c.out.Len() == 0 && !c.closed {
		c.ready.Wait()
	}
	if c.out.Len() == 0 {
		return 0, io.EOF
	}
	return c.out.Read(p)
}

func (c *stubConn) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, io.ErrClosedPipe
	}
	return c.in.Write(p)
}

func (c *stubConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.ready != nil {
		c.ready.Broadcast()
	}
	return nil
}

func (c *stubConn) feed(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.Write(data)
	if c.ready != nil {
		c.ready.Broadcast()
	}
}

func (c *stubConn) written() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte(nil), c.in.Bytes()...)
}

func (c *stubConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
