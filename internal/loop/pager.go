package loop

import (
	"context"
	"fmt"

	"scrollpage/internal/domain"
	"scrollpage/internal/ui/input/types"
	"scrollpage/internal/ui/services/navigation"
	"scrollpage/internal/ui/viewport"
)

// Pager prints content a page at a time below the shell prompt. Its scroll
// position counts the lines printed so far, bounded by the content length.
type Pager struct {
	deps  Deps
	state navigation.ScrollState
}

// NewPager creates a pager loop
func NewPager(deps Deps) *Pager {
	return &Pager{deps: deps}
}

// Printed returns how many lines have been printed
func (p *Pager) Printed() int {
	return p.state.Position
}

// Run paints the first page and then reveals more on each action until the
// content is exhausted or quit is requested
func (p *Pager) Run(ctx context.Context) (stats domain.SessionStats, err error) {
	d := p.deps
	bus := d.bus()
	total := d.ViewModel.Content().Len()
	stats = domain.SessionStats{Mode: types.ModePager.String(), Lines: total}

	started(bus, types.ModePager, total)
	defer func() {
		stats.FinalPosition = p.state.Position
		stats.Exhausted = p.state.Position >= total
		bus.Publish(domain.SessionEndedEvent{Stats: stats})
	}()
	defer closeSink(d.Sink, &err)

	if err := p.reveal(p.state.PageDown(p.window(), total), types.ActionNone); err != nil {
		return stats, err
	}

	for p.state.Position < total {
		action, err := nextAction(ctx, d.Source)
		if err != nil {
			return stats, fmt.Errorf("failed to read key: %w", err)
		}
		stats.Actions++

		switch action {
		case types.ActionLineDown:
			err = p.reveal(p.state.LineDown(total), action)
		case types.ActionPageDown:
			err = p.reveal(p.state.PageDown(p.window(), total), action)
		case types.ActionQuit:
			bus.Publish(domain.QuitRequestedEvent{Position: p.state.Position})
			return stats, nil
		}
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// window is sampled fresh for every page
func (p *Pager) window() int {
	return viewport.WindowSize(p.deps.Size.Height(), p.deps.Reserved)
}

func (p *Pager) reveal(next navigation.ScrollState, action types.Action) error {
	from := p.state.Position
	if err := p.deps.Sink.Paint(p.deps.ViewModel.PagerPage(from, next.Position)); err != nil {
		return fmt.Errorf("failed to paint page: %w", err)
	}
	p.state = next
	if action != types.ActionNone && next.Position != from {
		p.deps.bus().Publish(domain.ScrolledEvent{
			From:      from,
			To:        next.Position,
			MaxScroll: p.deps.ViewModel.Content().Len(),
			Action:    action.String(),
		})
	}
	return nil
}
