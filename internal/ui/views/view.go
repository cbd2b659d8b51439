package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"scrollpage/internal/ui/viewmodels"
)

// DefaultScrollbarChar draws the scrollbar thumb
const DefaultScrollbarChar = "|"

// Renderer turns frames into styled text
type Renderer struct {
	styles    *Styles
	thumbChar string
}

// NewRenderer creates a new renderer. An empty thumbChar selects the default.
func NewRenderer(thumbChar string) *Renderer {
	if thumbChar == "" {
		thumbChar = DefaultScrollbarChar
	}
	return &Renderer{
		styles:    NewStyles(),
		thumbChar: thumbChar,
	}
}

// Styles returns the styles in use
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Rows renders the content area of a full-screen frame, one string per
// window row, each exactly width cells wide. The last column holds the
// scrollbar when the frame has one.
func (r *Renderer) Rows(frame viewmodels.Frame, width int) []string {
	rows := max(frame.Geometry.WindowSize, len(frame.Lines))
	textWidth := width
	if frame.Scrollbar != nil && width > 1 {
		textWidth = width - 1
	}

	out := make([]string, rows)
	for i := 0; i < rows; i++ {
		var line string
		if i < len(frame.Lines) {
			line = r.renderLine(frame.Lines[i], textWidth)
		}
		line = pad(line, textWidth)

		if frame.Scrollbar != nil && textWidth < width {
			line += r.scrollbarCell(frame.Scrollbar, i)
		}
		out[i] = line
	}
	return out
}

// Legend renders the control line, truncated to width
func (r *Renderer) Legend(legend viewmodels.Legend, width int) string {
	var b strings.Builder
	for gi, g := range legend {
		if gi > 0 {
			b.WriteString(r.styles.Legend.Render(" | "))
		}
		for ki, k := range g.Keys {
			if ki > 0 {
				b.WriteString(r.styles.Legend.Render("/"))
			}
			if k.Enabled {
				b.WriteString(r.styles.KeyEnabled.Render(k.Label))
			} else {
				b.WriteString(r.styles.KeyDisabled.Render(k.Label))
			}
		}
		b.WriteString(r.styles.Legend.Render(": " + g.Description))
	}
	if width <= 0 {
		return b.String()
	}
	return ansi.Truncate(b.String(), width, "")
}

// Prompt renders the pager prompt
func (r *Renderer) Prompt(prompt string) string {
	return r.styles.Prompt.Render(prompt)
}

// Frame renders a whole full-screen frame as newline-joined rows plus the
// legend line
func (r *Renderer) Frame(frame viewmodels.Frame, width int) string {
	rows := r.Rows(frame, width)
	if frame.Legend != nil {
		rows = append(rows, r.Legend(frame.Legend, width))
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) renderLine(l viewmodels.Line, width int) string {
	text := l.Text
	if width > 0 {
		text = ansi.Truncate(text, width, "")
	}
	if l.Kind == viewmodels.LineMarker {
		return r.styles.Marker.Render(text)
	}
	return r.styles.Content.Render(text)
}

func (r *Renderer) scrollbarCell(cells []bool, row int) string {
	if row < len(cells) && cells[row] {
		return r.styles.Thumb.Render(r.thumbChar)
	}
	return r.styles.Track.Render(" ")
}

func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
