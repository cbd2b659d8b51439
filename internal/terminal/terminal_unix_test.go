//go:build unix

package terminal

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func openPTY(t *testing.T, rows, cols uint16) (ptmx, tty *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = ptmx.Close()
		_ = tty.Close()
	})
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: rows, Cols: cols}))
	return ptmx, tty
}

func TestSizeFromPTY(t *testing.T) {
	ptmx, tty := openPTY(t, 30, 100)
	tm := New(tty, tty, Options{})

	assert.Equal(t, 30, tm.Height())
	assert.Equal(t, 100, tm.Width())
	assert.True(t, IsTerminal(tty))

	// Resizes are visible on the next query
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 12, Cols: 40}))
	assert.Equal(t, 12, tm.Height())
}

func TestRawModeDeliversKeysWithoutNewline(t *testing.T) {
	ptmx, tty := openPTY(t, 24, 80)
	tm := New(tty, tty, Options{})

	before, err := term.GetState(int(tty.Fd()))
	require.NoError(t, err)

	raw, err := tm.EnableRaw()
	require.NoError(t, err)

	_, err = ptmx.Write([]byte("q"))
	require.NoError(t, err)

	got := make(chan byte, 1)
	go func() {
		b, err := tm.Reader().ReadByte()
		if err == nil {
			got <- b
		}
	}()

	select {
	case b := <-got:
		assert.Equal(t, byte('q'), b)
	case <-time.After(2 * time.Second):
		t.Fatal("raw read did not return without a newline")
	}

	require.NoError(t, raw.Restore())
	require.NoError(t, raw.Restore(), "restore is idempotent")

	after, err := term.GetState(int(tty.Fd()))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSignalRunsCleanupAndRestoresBeforeExit(t *testing.T) {
	_, tty := openPTY(t, 24, 80)
	tm := New(tty, tty, Options{})

	before, err := term.GetState(int(tty.Fd()))
	require.NoError(t, err)
	raw, err := tm.EnableRaw()
	require.NoError(t, err)

	codes := make(chan int, 1)
	orig := exit
	exit = func(code int) { codes <- code }
	t.Cleanup(func() { exit = orig })

	var steps []string
	sigChan := make(chan os.Signal, 1)
	stop := watchSignals(sigChan, raw, []func(){
		func() { steps = append(steps, "leave alternate screen") },
	})
	defer stop()

	sigChan <- syscall.SIGTERM
	select {
	case code := <-codes:
		assert.Equal(t, 1, code)
	case <-time.After(2 * time.Second):
		t.Fatal("signal was not handled")
	}
	assert.Equal(t, []string{"leave alternate screen"}, steps)

	after, err := term.GetState(int(tty.Fd()))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStopIgnoresLaterSignals(t *testing.T) {
	called := make(chan struct{}, 1)
	orig := exit
	exit = func(int) { called <- struct{}{} }
	t.Cleanup(func() { exit = orig })

	sigChan := make(chan os.Signal, 1)
	stop := watchSignals(sigChan, nil, nil)
	stop()
	stop()

	sigChan <- syscall.SIGHUP
	select {
	case <-called:
		t.Fatal("exit after stop")
	case <-time.After(100 * time.Millisecond):
	}
}
