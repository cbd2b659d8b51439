package loop

import (
	"context"
	"fmt"

	"scrollpage/internal/domain"
	"scrollpage/internal/ui/input/types"
	"scrollpage/internal/ui/services/navigation"
)

// Scroller redraws a fixed viewport over the content
type Scroller struct {
	deps Deps
	nav  *navigation.Service
}

// NewScroller creates a scroller loop
func NewScroller(deps Deps) *Scroller {
	return &Scroller{
		deps: deps,
		nav:  navigation.NewService(deps.bus(), deps.ViewModel.Content().Len(), deps.Reserved),
	}
}

// Position returns the current scroll position
func (s *Scroller) Position() int {
	return s.nav.Position()
}

// Run paints the first frame and then repaints after every action until
// quit is requested
func (s *Scroller) Run(ctx context.Context) (stats domain.SessionStats, err error) {
	d := s.deps
	bus := d.bus()
	stats = domain.SessionStats{Mode: types.ModeScroller.String(), Lines: s.nav.ContentLen()}

	started(bus, types.ModeScroller, s.nav.ContentLen())
	defer func() {
		stats.FinalPosition = s.nav.Position()
		bus.Publish(domain.SessionEndedEvent{Stats: stats})
	}()
	defer closeSink(d.Sink, &err)

	if err := s.paint(); err != nil {
		return stats, err
	}

	for {
		action, err := nextAction(ctx, d.Source)
		if err != nil {
			return stats, fmt.Errorf("failed to read key: %w", err)
		}
		stats.Actions++

		if action == types.ActionNone {
			continue
		}
		s.nav.Apply(action, d.Size.Height())
		if action == types.ActionQuit {
			return stats, nil
		}
		if err := s.paint(); err != nil {
			return stats, err
		}
	}
}

func (s *Scroller) paint() error {
	g := s.nav.Geometry(s.deps.Size.Height())
	if err := s.deps.Sink.Paint(s.deps.ViewModel.ScrollerFrame(g)); err != nil {
		return fmt.Errorf("failed to paint frame: %w", err)
	}
	return nil
}
