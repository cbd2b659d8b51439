package ui

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"scrollpage/internal/domain"
	"scrollpage/internal/ui/input"
	"scrollpage/internal/ui/input/types"
	"scrollpage/internal/ui/services/events"
	"scrollpage/internal/ui/services/navigation"
	"scrollpage/internal/ui/viewmodels"
	"scrollpage/internal/ui/viewport"
	"scrollpage/internal/ui/views"
)

// Model is the Bubble Tea rendition of the full-screen scroller
type Model struct {
	bus      events.EventBus
	nav      *navigation.Service
	vm       *viewmodels.ViewModel
	renderer *views.Renderer
	handler  *input.Handler

	// UI-specific state
	width    int
	height   int
	geometry viewport.Geometry
	actions  int
	quitting bool
}

// NewModel creates a scroller model over the view model's content
func NewModel(bus events.EventBus, vm *viewmodels.ViewModel, renderer *views.Renderer, reserved int) *Model {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if renderer == nil {
		renderer = views.NewRenderer("")
	}
	return &Model{
		bus:      bus,
		nav:      navigation.NewService(bus, vm.Content().Len(), reserved),
		vm:       vm,
		renderer: renderer,
		handler:  input.New(types.ModeScroller),
	}
}

// Init starts the session
func (m *Model) Init() tea.Cmd {
	m.bus.Publish(domain.SessionStartedEvent{Mode: types.ModeScroller.String(), Lines: m.nav.ContentLen()})
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.geometry = m.nav.Geometry(m.height)

	case tea.KeyMsg:
		action := m.handler.HandleTeaKey(msg)
		m.actions++
		if action == types.ActionNone {
			return m, nil
		}
		// No size yet: nothing is on screen to scroll
		if m.height == 0 && action != types.ActionQuit {
			return m, nil
		}
		m.nav.Apply(action, m.height)
		if action == types.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.geometry = m.nav.Geometry(m.height)
	}
	return m, nil
}

// View renders the current frame
func (m *Model) View() string {
	if m.quitting || m.height == 0 {
		return ""
	}
	return m.renderer.Frame(m.vm.ScrollerFrame(m.geometry), m.width)
}

// Position returns the current scroll position
func (m *Model) Position() int {
	return m.nav.Position()
}

// Stats summarises the session so far
func (m *Model) Stats() domain.SessionStats {
	return domain.SessionStats{
		Mode:          types.ModeScroller.String(),
		Lines:         m.nav.ContentLen(),
		FinalPosition: m.nav.Position(),
		Actions:       m.actions,
	}
}

// RunScroller runs the model as a full-screen program reading keys from in
func RunScroller(ctx context.Context, m *Model, in io.Reader, out io.Writer) (domain.SessionStats, error) {
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	log.Printf("Starting Bubble Tea scroller over %d lines", m.nav.ContentLen())
	_, err := p.Run()

	stats := m.Stats()
	m.bus.Publish(domain.SessionEndedEvent{Stats: stats})
	if err != nil {
		return stats, fmt.Errorf("failed to run scroller: %w", err)
	}
	return stats, nil
}
