package paint

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"scrollpage/internal/ui/viewmodels"
	"scrollpage/internal/ui/views"
)

// eraseLine moves to the start of the previous line and clears it
var eraseLine = ansi.CursorPreviousLine(1) + ansi.EraseEntireLine

// IncrementalSink appends pager output below what is already on screen.
// The prompt is always the last line written and is erased before the next
// write.
type IncrementalSink struct {
	w           *bufio.Writer
	renderer    *views.Renderer
	promptShown bool
}

// NewIncrementalSink creates a pager sink writing to w
func NewIncrementalSink(w io.Writer, renderer *views.Renderer) *IncrementalSink {
	if renderer == nil {
		renderer = views.NewRenderer("")
	}
	return &IncrementalSink{w: bufio.NewWriter(w), renderer: renderer}
}

// Paint erases the previous prompt, writes the new lines and the new prompt
func (s *IncrementalSink) Paint(frame viewmodels.Frame) error {
	s.erasePrompt()
	for _, l := range frame.Lines {
		s.w.WriteString(l.Text)
		s.w.WriteString(Newline)
	}
	if frame.Prompt != "" {
		s.w.WriteString(s.renderer.Prompt(frame.Prompt))
		s.w.WriteString(Newline)
		s.promptShown = true
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}

// Close erases a prompt left on screen
func (s *IncrementalSink) Close() error {
	s.erasePrompt()
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("failed to erase prompt: %w", err)
	}
	return nil
}

func (s *IncrementalSink) erasePrompt() {
	if s.promptShown {
		s.w.WriteString(eraseLine)
		s.promptShown = false
	}
}
