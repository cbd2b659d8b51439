package domain

// Content is the immutable list of lines shown by a pager session
type Content struct {
	lines []string
}

// NewContent wraps lines; the slice is copied so later caller writes are not visible
func NewContent(lines []string) *Content {
	cp := make([]string, len(lines))
	copy(cp, lines)
	return &Content{lines: cp}
}

// Len returns the number of lines
func (c *Content) Len() int {
	if c == nil {
		return 0
	}
	return len(c.lines)
}

// Line returns line i, or "" when i is out of range
func (c *Content) Line(i int) string {
	if c == nil || i < 0 || i >= len(c.lines) {
		return ""
	}
	return c.lines[i]
}

// Slice returns up to count lines starting at start. The result is clamped
// to the content and must not be modified.
func (c *Content) Slice(start, count int) []string {
	if c == nil {
		return nil
	}
	n := len(c.lines)
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := start + count
	if count < 0 || end > n {
		end = n
	}
	return c.lines[start:end:end]
}

// Empty reports whether there is nothing to show
func (c *Content) Empty() bool {
	return c.Len() == 0
}

// SessionStats summarises a finished pager or scroller session
type SessionStats struct {
	Mode          string
	Lines         int
	FinalPosition int
	Actions       int
	Exhausted     bool // pager printed every line
}
