// Package terminal wraps the host terminal: size queries with fallbacks,
// the keyboard byte stream and scoped raw mode.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sync"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	DefaultHeight = 24
	DefaultWidth  = 80
)

// ErrNoTTY is returned when no terminal is available for keyboard input
var ErrNoTTY = errors.New("no terminal available for keyboard input")

var termGetSize = term.GetSize

// SizeProvider reports the current terminal size. Implementations sample
// the size on every call so resizes are picked up between frames.
type SizeProvider interface {
	Height() int
	Width() int
}

// FixedSize is a SizeProvider with constant dimensions
type FixedSize struct {
	Rows int
	Cols int
}

func (f FixedSize) Height() int { return f.Rows }
func (f FixedSize) Width() int  { return f.Cols }

// Options configures a Terminal
type Options struct {
	FallbackHeight int
	FallbackWidth  int
}

// Terminal is the keyboard and size source for one session
type Terminal struct {
	in        *os.File
	out       *os.File
	reader    *bufio.Reader
	ownsInput bool
	fallbackH int
	fallbackW int
}

// New wraps explicit input and output files
func New(in, out *os.File, opts Options) *Terminal {
	if opts.FallbackHeight <= 0 {
		opts.FallbackHeight = DefaultHeight
	}
	if opts.FallbackWidth <= 0 {
		opts.FallbackWidth = DefaultWidth
	}
	return &Terminal{
		in:        in,
		out:       out,
		reader:    bufio.NewReader(in),
		fallbackH: opts.FallbackHeight,
		fallbackW: opts.FallbackWidth,
	}
}

// Open picks the keyboard source: stdin when it is a terminal, otherwise the
// controlling tty, since stdin then carries the content.
func Open(stdin, stdout *os.File, opts Options) (*Terminal, error) {
	if IsTerminal(stdin) {
		return New(stdin, stdout, opts), nil
	}

	name := "/dev/tty"
	if runtime.GOOS == "windows" {
		name = "CONIN$"
	}
	tty, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTTY, err)
	}
	t := New(tty, stdout, opts)
	t.ownsInput = true
	return t, nil
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Reader returns the buffered keyboard stream
func (t *Terminal) Reader() *bufio.Reader {
	return t.reader
}

// Input returns the keyboard file
func (t *Terminal) Input() *os.File {
	return t.in
}

// Height returns the number of rows, or the fallback when the query fails
func (t *Terminal) Height() int {
	if _, h, ok := t.size(); ok {
		return h
	}
	return t.fallbackH
}

// Width returns the number of columns, or the fallback when the query fails
func (t *Terminal) Width() int {
	if w, _, ok := t.size(); ok {
		return w
	}
	return t.fallbackW
}

func (t *Terminal) size() (w, h int, ok bool) {
	for _, f := range []*os.File{t.out, t.in} {
		if f == nil {
			continue
		}
		w, h, err := termGetSize(int(f.Fd()))
		if err == nil && w > 0 && h > 0 {
			return w, h, true
		}
	}
	return 0, 0, false
}

// RawMode is an acquired raw-mode session. Restore is idempotent and safe to
// call from a signal handler goroutine and a deferred call alike.
type RawMode struct {
	fd    int
	state *term.State
	once  sync.Once
	err   error
}

// EnableRaw switches the keyboard to raw mode
func (t *Terminal) EnableRaw() (*RawMode, error) {
	fd := int(t.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	return &RawMode{fd: fd, state: state}, nil
}

// Restore puts the terminal back the way EnableRaw found it
func (r *RawMode) Restore() error {
	if r == nil {
		return nil
	}
	r.once.Do(func() {
		r.err = term.Restore(r.fd, r.state)
	})
	return r.err
}

// WithRaw runs fn with the keyboard in raw mode and always restores it,
// including when fn panics or a termination signal arrives. onSignal hooks
// run before the process exits on a signal. When raw mode cannot be entered
// fn still runs, in cooked mode.
func (t *Terminal) WithRaw(fn func() error, onSignal ...func()) error {
	raw, err := t.EnableRaw()
	if err != nil {
		log.Printf("Raw mode unavailable, continuing without it: %v", err)
		return fn()
	}
	stop := RestoreOnSignal(raw, onSignal...)
	defer stop()
	defer raw.Restore()
	return fn()
}

// exit is swapped in tests
var exit = os.Exit

// RestoreOnSignal runs the cleanup hooks, restores raw mode and exits when
// the process is told to terminate. The returned func stops watching.
func RestoreOnSignal(raw *RawMode, cleanup ...func()) func() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, terminationSignals...)
	stop := watchSignals(sigChan, raw, cleanup)
	return func() {
		signal.Stop(sigChan)
		stop()
	}
}

func watchSignals(sigChan <-chan os.Signal, raw *RawMode, cleanup []func()) func() {
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-sigChan:
			log.Printf("Received %v, restoring terminal", sig)
			for _, fn := range cleanup {
				fn()
			}
			_ = raw.Restore()
			exit(1)
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// Close releases the tty opened by Open
func (t *Terminal) Close() error {
	if t.ownsInput && t.in != nil {
		return t.in.Close()
	}
	return nil
}
