package paint

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"scrollpage/internal/ui/input"
	"scrollpage/internal/ui/input/types"
	"scrollpage/internal/ui/viewmodels"
	"scrollpage/internal/ui/views"
)

// ScreenStyles are the tcell styles used by Screen
type ScreenStyles struct {
	Content     tcell.Style
	Marker      tcell.Style
	Thumb       tcell.Style
	Track       tcell.Style
	KeyEnabled  tcell.Style
	KeyDisabled tcell.Style
	Legend      tcell.Style
}

// DefaultScreenStyles mirrors the lipgloss styles of the other backends
func DefaultScreenStyles() ScreenStyles {
	return ScreenStyles{
		Content:     tcell.StyleDefault,
		Marker:      tcell.StyleDefault.Foreground(tcell.PaletteColor(241)).Italic(true),
		Thumb:       tcell.StyleDefault.Foreground(tcell.PaletteColor(252)),
		Track:       tcell.StyleDefault,
		KeyEnabled:  tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite),
		KeyDisabled: tcell.StyleDefault.Dim(true),
		Legend:      tcell.StyleDefault.Foreground(tcell.PaletteColor(245)),
	}
}

// Screen is the tcell backend. It draws frames, reports the screen size and
// turns tcell key events into actions, so one value serves as Sink,
// terminal.SizeProvider and types.ActionSource.
type Screen struct {
	screen    tcell.Screen
	handler   *input.Handler
	styles    ScreenStyles
	thumbChar rune
	fini      sync.Once
}

// NewScreen initialises s and wraps it
func NewScreen(s tcell.Screen, handler *input.Handler, thumbChar string) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	s.HideCursor()

	thumb := []rune(thumbChar)
	if len(thumb) == 0 {
		thumb = []rune(views.DefaultScrollbarChar)
	}
	return &Screen{
		screen:    s,
		handler:   handler,
		styles:    DefaultScreenStyles(),
		thumbChar: thumb[0],
	}, nil
}

// Height implements terminal.SizeProvider
func (s *Screen) Height() int {
	_, h := s.screen.Size()
	return h
}

// Width implements terminal.SizeProvider
func (s *Screen) Width() int {
	w, _ := s.screen.Size()
	return w
}

// NextAction blocks for the next key. Resize events only resync the
// screen; the new size is picked up by the next frame.
func (s *Screen) NextAction() (types.Action, error) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return types.ActionNone, io.EOF
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			return s.handler.HandleTcellKey(ev), nil
		}
	}
}

// Paint draws the frame and shows it
func (s *Screen) Paint(frame viewmodels.Frame) error {
	s.screen.Clear()
	width, height := s.screen.Size()

	textWidth := width
	if frame.Scrollbar != nil && width > 1 {
		textWidth = width - 1
	}

	for row, l := range frame.Lines {
		style := s.styles.Content
		if l.Kind == viewmodels.LineMarker {
			style = s.styles.Marker
		}
		s.drawText(0, row, textWidth, l.Text, style)
	}

	if textWidth < width {
		for row, thumb := range frame.Scrollbar {
			if thumb {
				s.screen.SetContent(width-1, row, s.thumbChar, nil, s.styles.Thumb)
			}
		}
	}

	if frame.Legend != nil {
		s.drawLegend(max(height-1, len(frame.Lines)), width, frame.Legend)
	}
	if frame.Prompt != "" {
		s.drawText(0, len(frame.Lines), width, frame.Prompt, s.styles.KeyDisabled)
	}

	s.screen.Show()
	return nil
}

// Close finalises the screen. Later calls do nothing.
func (s *Screen) Close() error {
	s.fini.Do(s.screen.Fini)
	return nil
}

func (s *Screen) drawLegend(row, width int, legend viewmodels.Legend) {
	x := 0
	put := func(text string, style tcell.Style) {
		x = s.drawText(x, row, width, text, style)
	}
	for gi, g := range legend {
		if gi > 0 {
			put(" | ", s.styles.Legend)
		}
		for ki, k := range g.Keys {
			if ki > 0 {
				put("/", s.styles.Legend)
			}
			if k.Enabled {
				put(k.Label, s.styles.KeyEnabled)
			} else {
				put(k.Label, s.styles.KeyDisabled)
			}
		}
		put(": "+g.Description, s.styles.Legend)
	}
}

// drawText writes text from column x, stopping at limit, and returns the
// column after the last cell written
func (s *Screen) drawText(x, y, limit int, text string, style tcell.Style) int {
	for _, r := range ansi.Strip(text) {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		s.screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}
