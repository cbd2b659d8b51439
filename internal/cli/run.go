package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"scrollpage/internal/config"
	"scrollpage/internal/content"
	"scrollpage/internal/domain"
	"scrollpage/internal/loop"
	"scrollpage/internal/paint"
	"scrollpage/internal/terminal"
	"scrollpage/internal/ui"
	"scrollpage/internal/ui/input"
	"scrollpage/internal/ui/input/types"
	"scrollpage/internal/ui/services/events"
	"scrollpage/internal/ui/viewmodels"
	"scrollpage/internal/ui/views"
)

// newScreen is swapped in tests
var newScreen = tcell.NewScreen

func run(ctx context.Context, app *App, f *flags, mode types.Mode, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	piped := !terminal.IsTerminal(app.Stdin)
	c, origin, err := content.Load(app.Stdin, piped, args, content.Options{TabWidth: cfg.Terminal.TabWidth})
	if err != nil {
		return err
	}
	log.Printf("Loaded %d lines from %s", c.Len(), origin)

	// Output is not a terminal: nothing to page
	if !terminal.IsTerminal(app.Stdout) {
		return copyThrough(app.Stdout, c)
	}

	term, err := terminal.Open(app.Stdin, app.Stdout, terminal.Options{
		FallbackHeight: cfg.Terminal.FallbackHeight,
		FallbackWidth:  cfg.Terminal.FallbackWidth,
	})
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer term.Close()

	bus := events.NewBus()
	subscribeLogger(bus)

	s := &session{cfg: cfg, term: term, out: app.Stdout, bus: bus, content: c}
	stats, err := s.run(ctx, mode)
	if err != nil {
		return err
	}
	log.Printf("Session finished: mode=%s lines=%d position=%d actions=%d exhausted=%t",
		stats.Mode, stats.Lines, stats.FinalPosition, stats.Actions, stats.Exhausted)
	return nil
}

// session wires one pager or scroller run to its backend
type session struct {
	cfg     *config.Config
	term    *terminal.Terminal
	out     io.Writer
	bus     events.EventBus
	content *domain.Content
}

func (s *session) run(ctx context.Context, mode types.Mode) (domain.SessionStats, error) {
	handler := input.New(mode)
	renderer := views.NewRenderer(s.cfg.Scroller.ScrollbarChar)
	vm := viewmodels.NewViewModel(s.content, s.cfg.Scroller.Marker, s.cfg.Pager.Prompt, handler.Bindings())

	if mode == types.ModePager {
		return s.withRaw(func() (domain.SessionStats, error) {
			return loop.NewPager(loop.Deps{
				ViewModel: vm,
				Source:    input.NewByteSource(handler, s.term.Reader()),
				Size:      s.term,
				Sink:      paint.NewIncrementalSink(s.out, renderer),
				Bus:       s.bus,
				Reserved:  s.cfg.Pager.ReservedLines,
			}).Run(ctx)
		})
	}

	log.Printf("Scroller backend: %s", s.cfg.Scroller.Backend)
	switch s.cfg.Scroller.Backend {
	case config.BackendANSI:
		sink := paint.NewFullScreenSink(s.out, s.term, renderer)
		return s.withRaw(func() (domain.SessionStats, error) {
			return loop.NewScroller(loop.Deps{
				ViewModel: vm,
				Source:    input.NewByteSource(handler, s.term.Reader()),
				Size:      s.term,
				Sink:      sink,
				Bus:       s.bus,
				Reserved:  s.cfg.Scroller.ReservedLines,
			}).Run(ctx)
		}, func() { _ = sink.Close() })

	case config.BackendTcell:
		screen, err := newScreen()
		if err != nil {
			return domain.SessionStats{}, fmt.Errorf("failed to create screen: %w", err)
		}
		sc, err := paint.NewScreen(screen, handler, s.cfg.Scroller.ScrollbarChar)
		if err != nil {
			return domain.SessionStats{}, err
		}
		return loop.NewScroller(loop.Deps{
			ViewModel: vm,
			Source:    sc,
			Size:      sc,
			Sink:      sc,
			Bus:       s.bus,
			Reserved:  s.cfg.Scroller.ReservedLines,
		}).Run(ctx)

	default:
		m := ui.NewModel(s.bus, vm, renderer, s.cfg.Scroller.ReservedLines)
		return ui.RunScroller(ctx, m, s.term.Input(), s.out)
	}
}

func (s *session) withRaw(fn func() (domain.SessionStats, error), onSignal ...func()) (domain.SessionStats, error) {
	var stats domain.SessionStats
	err := s.term.WithRaw(func() error {
		var err error
		stats, err = fn()
		return err
	}, onSignal...)
	return stats, err
}

func copyThrough(out io.Writer, c *domain.Content) error {
	w := bufio.NewWriter(out)
	for _, line := range c.Slice(0, c.Len()) {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to path, or discards logs when
// path is empty. The pager owns stdout and stderr.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(logFile)
	return func() {
		log.SetOutput(io.Discard)
		logFile.Close()
	}, nil
}

// subscribeLogger logs every session event
func subscribeLogger(bus events.EventBus) {
	for _, et := range []domain.EventType{
		domain.EventSessionStarted,
		domain.EventScrolled,
		domain.EventResized,
		domain.EventQuitRequested,
		domain.EventSessionEnded,
	} {
		bus.Subscribe(et, func(e domain.DomainEvent) {
			log.Printf("Event %s: %+v", e.Type(), e)
		})
	}
}
