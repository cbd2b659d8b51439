package viewmodels

import (
	"fmt"

	"scrollpage/internal/domain"
	"scrollpage/internal/ui/input"
	"scrollpage/internal/ui/viewport"
)

// DefaultMarker replaces an edge line when content continues past it
const DefaultMarker = "(more...)"

// DefaultPrompt is shown by the pager between pages
const DefaultPrompt = "More..."

// LineKind tells a sink how to style a line
type LineKind int

const (
	LineContent LineKind = iota
	LineMarker
)

// Line is one row of the content area
type Line struct {
	Text  string
	Kind  LineKind
	Index int // content index, -1 for markers
}

// Frame is one paint request. The pager fills Lines and Prompt; the
// full-screen scroller fills Lines, Scrollbar and Legend.
type Frame struct {
	Lines     []Line
	Scrollbar []bool // one cell per window row, true = thumb; nil when absent
	Prompt    string // pager status line, empty when none
	Legend    Legend // scroller status line, nil when none
	Percent   int
	Exhausted bool // pager: every line has been printed
	Geometry  viewport.Geometry
}

// ViewModel turns content and scroll geometry into paint plans
type ViewModel struct {
	content  *domain.Content
	marker   string
	prompt   string
	bindings input.KeyBindings
}

// NewViewModel creates a view model. Empty marker or prompt select the defaults.
func NewViewModel(content *domain.Content, marker, prompt string, bindings input.KeyBindings) *ViewModel {
	if marker == "" {
		marker = DefaultMarker
	}
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &ViewModel{
		content:  content,
		marker:   marker,
		prompt:   prompt,
		bindings: bindings,
	}
}

// Content returns the content being planned
func (vm *ViewModel) Content() *domain.Content {
	return vm.content
}

// ScrollerFrame builds the full-screen frame for g
func (vm *ViewModel) ScrollerFrame(g viewport.Geometry) Frame {
	visible := vm.content.Slice(g.VisibleStart, g.VisibleCount)
	lines := make([]Line, len(visible))
	for i, text := range visible {
		lines[i] = Line{Text: text, Kind: LineContent, Index: g.VisibleStart + i}
	}

	// Never hide the only visible line
	if len(lines) > 1 {
		if g.MoreAbove() {
			lines[0] = Line{Text: vm.marker, Kind: LineMarker, Index: -1}
		}
		if g.MoreBelow() {
			lines[len(lines)-1] = Line{Text: vm.marker, Kind: LineMarker, Index: -1}
		}
	}

	return Frame{
		Lines:     lines,
		Scrollbar: ScrollbarCells(g),
		Legend:    vm.legend(g.MoreAbove(), g.MoreBelow()),
		Geometry:  g,
	}
}

// PagerPage builds the next incremental step: lines [printed, end) plus the
// prompt. end is clamped to the content.
func (vm *ViewModel) PagerPage(printed, end int) Frame {
	total := vm.content.Len()
	end = min(max(end, 0), total)
	printed = min(max(printed, 0), end)

	revealed := vm.content.Slice(printed, end-printed)
	lines := make([]Line, len(revealed))
	for i, text := range revealed {
		lines[i] = Line{Text: text, Kind: LineContent, Index: printed + i}
	}

	page := Frame{
		Lines:     lines,
		Percent:   viewport.Percent(end, total),
		Exhausted: end >= total,
	}
	if !page.Exhausted {
		page.Prompt = fmt.Sprintf("%s [%d%%]", vm.prompt, page.Percent)
	}
	return page
}

// Texts returns the text of each line
func (f Frame) Texts() []string {
	out := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		out[i] = l.Text
	}
	return out
}

// ScrollbarCells lays the thumb onto a track of g.WindowSize cells
func ScrollbarCells(g viewport.Geometry) []bool {
	cells := make([]bool, g.WindowSize)
	size, pos := viewport.Scrollbar(g.VisibleStart, g.WindowSize, g.ContentLen)
	for i := pos; i < pos+size && i < len(cells); i++ {
		cells[i] = true
	}
	return cells
}
