package input

import (
	"github.com/gdamore/tcell/v2"

	"scrollpage/internal/ui/input/types"
)

// KeyFromTcell maps a tcell key event to a key
func KeyFromTcell(ev *tcell.EventKey) types.Key {
	if ev == nil {
		return types.KeyNone
	}
	switch ev.Key() {
	case tcell.KeyUp:
		return types.KeyUp
	case tcell.KeyDown:
		return types.KeyDown
	case tcell.KeyLeft:
		return types.KeyLeft
	case tcell.KeyRight:
		return types.KeyRight
	case tcell.KeyPgUp:
		return types.KeyPageUp
	case tcell.KeyPgDn:
		return types.KeyPageDown
	case tcell.KeyHome:
		return types.KeyHome
	case tcell.KeyEnd:
		return types.KeyEnd
	case tcell.KeyEnter:
		return types.KeyEnter
	case tcell.KeyEscape:
		return types.KeyEscape
	case tcell.KeyCtrlC:
		return types.KeyInterrupt
	case tcell.KeyRune:
		if r := ev.Rune(); r == 'q' || r == 'Q' {
			return types.KeyQuit
		}
	}
	return types.KeyNone
}
