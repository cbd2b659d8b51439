package navigation

import (
	"scrollpage/internal/domain"
	"scrollpage/internal/ui/input/types"
	"scrollpage/internal/ui/services/events"
	"scrollpage/internal/ui/viewport"
)

// Service owns the scroll state of one session
type Service struct {
	state      ScrollState
	bus        events.EventBus
	reserved   int
	contentLen int
	lastWindow int
}

// NewService creates a navigation service for contentLen lines, reserving
// the given number of terminal rows for status output
func NewService(bus events.EventBus, contentLen, reserved int) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		bus:        bus,
		reserved:   reserved,
		contentLen: max(contentLen, 0),
	}
}

// Position returns the current scroll position
func (s *Service) Position() int {
	return s.state.Position
}

// ContentLen returns the number of lines being navigated
func (s *Service) ContentLen() int {
	return s.contentLen
}

// Geometry recomputes the frame for the given terminal height and pulls the
// position back into range when the window grew
func (s *Service) Geometry(terminalHeight int) viewport.Geometry {
	g := viewport.Compute(terminalHeight, s.reserved, s.state.Position, s.contentLen)
	s.state = s.state.Clamp(g.MaxScroll)

	if s.lastWindow != 0 && s.lastWindow != g.WindowSize {
		s.bus.Publish(domain.ResizedEvent{OldWindow: s.lastWindow, NewWindow: g.WindowSize})
	}
	s.lastWindow = g.WindowSize
	return g
}

// Apply performs one action against the current terminal height.
// It returns true when the position changed.
func (s *Service) Apply(action types.Action, terminalHeight int) bool {
	g := s.Geometry(terminalHeight)
	old := s.state

	switch action {
	case types.ActionLineDown:
		s.state = s.state.LineDown(g.MaxScroll)
	case types.ActionLineUp:
		s.state = s.state.LineUp(g.MaxScroll)
	case types.ActionPageDown:
		s.state = s.state.PageDown(g.WindowSize, g.MaxScroll)
	case types.ActionPageUp:
		s.state = s.state.PageUp(g.WindowSize, g.MaxScroll)
	case types.ActionHome:
		s.state = s.state.Home()
	case types.ActionEnd:
		s.state = s.state.End(g.MaxScroll)
	case types.ActionQuit:
		s.bus.Publish(domain.QuitRequestedEvent{Position: s.state.Position})
		return false
	}

	if old == s.state {
		return false
	}
	s.bus.Publish(domain.ScrolledEvent{
		From:      old.Position,
		To:        s.state.Position,
		MaxScroll: g.MaxScroll,
		Action:    action.String(),
	})
	return true
}

// CanScrollUp reports whether any upward motion is possible
func (s *Service) CanScrollUp() bool {
	return s.state.Position > 0
}

// CanScrollDown reports whether any downward motion is possible at the given height
func (s *Service) CanScrollDown(terminalHeight int) bool {
	g := viewport.Compute(terminalHeight, s.reserved, s.state.Position, s.contentLen)
	return s.state.Position < g.MaxScroll
}
