// Package loop drives a pager or scroller session: read an action, update
// the scroll state, paint.
package loop

import (
	"context"
	"errors"
	"io"

	"scrollpage/internal/domain"
	"scrollpage/internal/paint"
	"scrollpage/internal/terminal"
	"scrollpage/internal/ui/input/types"
	"scrollpage/internal/ui/services/events"
	"scrollpage/internal/ui/viewmodels"
)

// Deps are the collaborators shared by both loops
type Deps struct {
	ViewModel *viewmodels.ViewModel
	Source    types.ActionSource
	Size      terminal.SizeProvider
	Sink      paint.Sink
	Bus       events.EventBus
	Reserved  int
}

func (d *Deps) bus() events.EventBus {
	if d.Bus == nil {
		return &events.NullBus{}
	}
	return d.Bus
}

// nextAction reads one action. End of input counts as a quit request.
func nextAction(ctx context.Context, src types.ActionSource) (types.Action, error) {
	if err := ctx.Err(); err != nil {
		return types.ActionNone, err
	}
	action, err := src.NextAction()
	if errors.Is(err, io.EOF) {
		return types.ActionQuit, nil
	}
	return action, err
}

func closeSink(sink paint.Sink, err *error) {
	if cerr := sink.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

func started(bus events.EventBus, mode types.Mode, lines int) {
	bus.Publish(domain.SessionStartedEvent{Mode: mode.String(), Lines: lines})
}
