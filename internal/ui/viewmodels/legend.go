package viewmodels

import "strings"

// LegendKey is one highlighted key label
type LegendKey struct {
	Label   string
	Enabled bool
}

// LegendGroup is a pair of keys with a description, e.g. "PgUp/PgDn: Scroll Page"
type LegendGroup struct {
	Keys        []LegendKey
	Description string
}

// Legend is the control line of the full-screen scroller
type Legend []LegendGroup

// Plain renders the legend without styling
func (l Legend) Plain() string {
	parts := make([]string, 0, len(l))
	for _, g := range l {
		labels := make([]string, len(g.Keys))
		for i, k := range g.Keys {
			labels[i] = k.Label
		}
		parts = append(parts, strings.Join(labels, "/")+": "+g.Description)
	}
	return strings.Join(parts, " | ")
}

func (vm *ViewModel) legend(canUp, canDown bool) Legend {
	b := vm.bindings
	pair := func(up, down, desc string) LegendGroup {
		return LegendGroup{
			Keys:        []LegendKey{{Label: up, Enabled: canUp}, {Label: down, Enabled: canDown}},
			Description: desc,
		}
	}
	return Legend{
		pair(b.Up.Help().Key, b.Down.Help().Key, "Scroll"),
		pair(b.PageUp.Help().Key, b.PageDown.Help().Key, "Scroll Page"),
		pair(b.Home.Help().Key, b.End.Help().Key, "Top/Bottom"),
		{
			Keys:        []LegendKey{{Label: b.Quit.Help().Key, Enabled: true}, {Label: b.Escape.Help().Key, Enabled: true}},
			Description: "Quit",
		},
	}
}
