package ui

import (
	"fmt"
	"strings"

	"github.com/noborus/ov/oviewer"

	"scrollpage/internal/ui/input"
	"scrollpage/internal/ui/input/types"
	"scrollpage/internal/ui/views"
)

// referenceOrder is the order keys are listed in the key reference
var referenceOrder = []types.Key{
	types.KeyUp,
	types.KeyDown,
	types.KeyPageUp,
	types.KeyPageDown,
	types.KeyHome,
	types.KeyEnd,
	types.KeyEnter,
	types.KeyQuit,
	types.KeyEscape,
	types.KeyInterrupt,
}

var actionDescriptions = map[types.Mode]map[types.Action]string{
	types.ModePager: {
		types.ActionLineDown: "Show one more line",
		types.ActionPageDown: "Show the next page",
		types.ActionQuit:     "Quit",
	},
	types.ModeScroller: {
		types.ActionLineDown: "Scroll down one line",
		types.ActionLineUp:   "Scroll up one line",
		types.ActionPageDown: "Scroll down one page",
		types.ActionPageUp:   "Scroll up one page",
		types.ActionHome:     "Go to top",
		types.ActionEnd:      "Go to bottom",
		types.ActionQuit:     "Quit",
	},
}

// HelpRenderer handles key reference rendering
type HelpRenderer struct {
	styles  *views.Styles
	handler *input.Handler
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(styles *views.Styles) *HelpRenderer {
	if styles == nil {
		styles = views.NewStyles()
	}
	return &HelpRenderer{styles: styles, handler: input.New(types.ModePager)}
}

// RenderKeyReference lists the keys of both modes
func (r *HelpRenderer) RenderKeyReference() string {
	var help strings.Builder

	help.WriteString(r.styles.Title.Render("scrollpage keys"))
	help.WriteString("\n")

	r.renderSection(&help, "more", types.ModePager)
	help.WriteString("\n")
	r.renderSection(&help, "scroll", types.ModeScroller)

	return help.String()
}

func (r *HelpRenderer) renderSection(help *strings.Builder, title string, mode types.Mode) {
	help.WriteString(r.styles.Section.Render(title))
	help.WriteString("\n")

	km := r.handler.Keymap(mode)
	bindings := r.handler.Bindings()
	for _, k := range referenceOrder {
		action := km.Action(k)
		if action == types.ActionNone {
			continue
		}
		b, ok := bindings.Binding(k)
		if !ok {
			continue
		}
		label := fmt.Sprintf("%-8s", b.Help().Key)
		help.WriteString(fmt.Sprintf("  %s  %s\n", r.styles.HelpKey.Render(label), r.styles.HelpDesc.Render(actionDescriptions[mode][action])))
	}
}

// ShowKeysInPager shows content in the ov pager. It takes over the terminal
// until the user quits ov.
func ShowKeysInPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}

	// Configure ov to not write on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	if err := root.Run(); err != nil {
		return fmt.Errorf("failed to run pager: %w", err)
	}
	return nil
}
