package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned by Open when stdin is not a terminal
var ErrNotTerminal = errors.New("not a terminal")

// ANSI control sequences
const (
	enterAltScreen = "\x1b[?1049h"
	exitAltScreen  = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	clearScreen    = "\x1b[2J\x1b[H"
)

// Terminal is a terminal in raw mode showing the alternate screen.
// Close must be called on every exit path to give the user their shell back.
type Terminal struct {
	in    io.Reader
	dst   io.Writer
	out   *bufio.Writer
	fd    int
	state *term.State
	buf   []byte

	// mu guards out, which the signal handler closes from another goroutine
	mu     sync.Mutex
	closed bool
}

// Open switches the terminal behind in to raw mode and out to the alternate screen
func Open(in, out *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("could not enter raw mode: %w", err)
	}

	t := newTerminal(in, out)
	t.fd = fd
	t.state = state

	_, _ = t.out.WriteString(enterAltScreen + hideCursor)
	if err := t.out.Flush(); err != nil {
		_ = term.Restore(fd, state)
		return nil, fmt.Errorf("could not switch screens: %w", err)
	}

	return t, nil
}

func newTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  in,
		dst: out,
		out: bufio.NewWriter(out),
		buf: make([]byte, 64),
	}
}

// ReadKeys blocks until at least one byte is read and returns the keys it decodes to
func (t *Terminal) ReadKeys() ([]Key, error) {
	n, err := t.in.Read(t.buf)
	if n > 0 {
		return Decode(t.buf[:n]), nil
	}

	return nil, err
}

// Write buffers p until Flush is called.
// Output written after Close is dropped.
func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return len(p), nil
	}

	return t.out.Write(p)
}

// Clear clears the screen and moves the cursor to the top left
func (t *Terminal) Clear() error {
	_, err := t.Write([]byte(clearScreen))
	return err
}

// Flush writes the buffered output to the terminal
func (t *Terminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}

	return t.out.Flush()
}

// Close leaves the alternate screen and restores the terminal mode saved by Open.
// It is safe to call more than once, and from another goroutine than the one drawing.
func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	// a frame may be half written
	t.out.Reset(t.dst)
	_, _ = t.out.WriteString(clearScreen + showCursor + exitAltScreen)
	flushErr := t.out.Flush()

	if t.state != nil {
		if err := term.Restore(t.fd, t.state); err != nil {
			return fmt.Errorf("could not restore terminal: %w", err)
		}
	}

	return flushErr
}
