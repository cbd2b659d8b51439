package paint

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"scrollpage/internal/terminal"
	"scrollpage/internal/ui/viewmodels"
	"scrollpage/internal/ui/views"
)

// FullScreenSink redraws the whole alternate screen on every frame. Close
// may be called from a signal handler while a frame is being drawn.
type FullScreenSink struct {
	mu       sync.Mutex
	w        *bufio.Writer
	size     terminal.SizeProvider
	renderer *views.Renderer
	entered  bool
	closed   bool
}

// NewFullScreenSink creates a scroller sink writing to w
func NewFullScreenSink(w io.Writer, size terminal.SizeProvider, renderer *views.Renderer) *FullScreenSink {
	if renderer == nil {
		renderer = views.NewRenderer("")
	}
	return &FullScreenSink{w: bufio.NewWriter(w), size: size, renderer: renderer}
}

// Paint clears the screen and draws the frame. The first call switches to
// the alternate screen. Frames after Close are dropped.
func (s *FullScreenSink) Paint(frame viewmodels.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	if !s.entered {
		s.w.WriteString(ansi.SetAltScreenSaveCursorMode)
		s.w.WriteString(ansi.HideCursor)
		s.entered = true
	}
	s.w.WriteString(ansi.CursorHomePosition)
	s.w.WriteString(ansi.EraseEntireScreen)

	width, height := s.size.Width(), s.size.Height()
	rows := s.renderer.Rows(frame, width)
	for i, row := range rows {
		s.w.WriteString(ansi.CursorPosition(1, i+1))
		s.w.WriteString(row)
	}
	if frame.Legend != nil {
		s.w.WriteString(ansi.CursorPosition(1, max(height, len(rows)+1)))
		s.w.WriteString(s.renderer.Legend(frame.Legend, width))
	}

	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("failed to draw frame: %w", err)
	}
	return nil
}

// Close restores the cursor and the main screen
func (s *FullScreenSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if !s.entered {
		return nil
	}
	s.entered = false
	s.w.WriteString(ansi.ShowCursor)
	s.w.WriteString(ansi.ResetAltScreenSaveCursorMode)
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("failed to leave alternate screen: %w", err)
	}
	return nil
}
