package navigation

// ScrollState is a bounded position: the first visible line for the
// scroller, the number of lines printed so far for the pager.
// Its methods are pure: each returns a new state clamped to [0, maxScroll].
type ScrollState struct {
	Position int
}

// Clamp pulls the position back into [0, maxScroll]
func (s ScrollState) Clamp(maxScroll int) ScrollState {
	return ScrollState{Position: clamp(s.Position, 0, max(maxScroll, 0))}
}

func (s ScrollState) LineDown(maxScroll int) ScrollState {
	return ScrollState{Position: min(s.Position+1, max(maxScroll, 0))}.Clamp(maxScroll)
}

func (s ScrollState) LineUp(maxScroll int) ScrollState {
	return ScrollState{Position: max(s.Position-1, 0)}.Clamp(maxScroll)
}

func (s ScrollState) PageDown(windowSize, maxScroll int) ScrollState {
	return ScrollState{Position: min(s.Position+windowSize, max(maxScroll, 0))}.Clamp(maxScroll)
}

func (s ScrollState) PageUp(windowSize, maxScroll int) ScrollState {
	return ScrollState{Position: max(s.Position-windowSize, 0)}.Clamp(maxScroll)
}

func (s ScrollState) Home() ScrollState {
	return ScrollState{}
}

func (s ScrollState) End(maxScroll int) ScrollState {
	return ScrollState{Position: max(maxScroll, 0)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
