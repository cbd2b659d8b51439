// Package viewport holds the pure arithmetic behind the visible window:
// how many lines fit, how far the window may scroll, which lines are in view
// and where the scrollbar thumb sits.
package viewport

// Geometry describes one frame. It is derived from the terminal height and
// the scroll position every frame and never stored between frames.
type Geometry struct {
	WindowSize   int
	MaxScroll    int
	VisibleStart int
	VisibleCount int
	ContentLen   int
}

// VisibleEnd is the index one past the last visible line
func (g Geometry) VisibleEnd() int {
	return g.VisibleStart + g.VisibleCount
}

// MoreAbove reports whether lines exist before the window
func (g Geometry) MoreAbove() bool {
	return g.VisibleStart > 0
}

// MoreBelow reports whether lines exist after the window
func (g Geometry) MoreBelow() bool {
	return g.VisibleEnd() < g.ContentLen
}

// WindowSize is the number of content lines that fit after reserving lines
// for status output. It is at least 1.
func WindowSize(terminalHeight, reserved int) int {
	return max(1, terminalHeight-reserved)
}

// MaxScroll is the largest valid scroll position
func MaxScroll(contentLen, windowSize int) int {
	return max(0, contentLen-windowSize)
}

// VisibleSlice returns the first visible index and how many lines are shown.
// Out-of-range positions are clamped rather than reported.
func VisibleSlice(position, windowSize, contentLen int) (start, count int) {
	if contentLen < 0 {
		contentLen = 0
	}
	start = min(max(position, 0), contentLen)
	count = min(max(windowSize, 0), contentLen-start)
	return start, count
}

// Scrollbar returns the thumb size and offset for a track of windowSize cells.
// The thumb never leaves the track: pos+size <= windowSize when windowSize >= 1.
func Scrollbar(position, windowSize, contentLen int) (size, pos int) {
	if windowSize < 1 {
		return 0, 0
	}
	size = max(1, windowSize*windowSize/(3*max(windowSize, contentLen)))
	size = min(size, windowSize)

	if contentLen <= windowSize {
		return size, 0
	}
	position = min(max(position, 0), contentLen-windowSize)
	pos = position * (windowSize - size) / (contentLen - windowSize)
	return size, min(max(pos, 0), windowSize-size)
}

// Percent is the share of content shown so far, rounded half up
func Percent(shown, contentLen int) int {
	if contentLen <= 0 {
		return 100
	}
	shown = min(max(shown, 0), contentLen)
	return int(100.0*float64(shown)/float64(contentLen) + 0.5)
}

// Compute bundles the math for one frame
func Compute(terminalHeight, reserved, position, contentLen int) Geometry {
	window := WindowSize(terminalHeight, reserved)
	maxScroll := MaxScroll(contentLen, window)
	start, count := VisibleSlice(min(max(position, 0), maxScroll), window, contentLen)
	return Geometry{
		WindowSize:   window,
		MaxScroll:    maxScroll,
		VisibleStart: start,
		VisibleCount: count,
		ContentLen:   max(contentLen, 0),
	}
}
