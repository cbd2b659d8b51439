package input

import "scrollpage/internal/ui/input/types"

// Keymap turns keys into actions for one mode. Missing keys mean ActionNone.
type Keymap map[types.Key]types.Action

// Action looks up a key
func (k Keymap) Action(key types.Key) types.Action {
	return k[key]
}

// PagerKeymap is forward-only: Enter pages, Down reveals one more line
func PagerKeymap() Keymap {
	return Keymap{
		types.KeyEnter:     types.ActionPageDown,
		types.KeyDown:      types.ActionLineDown,
		types.KeyQuit:      types.ActionQuit,
		types.KeyEscape:    types.ActionQuit,
		types.KeyInterrupt: types.ActionQuit,
	}
}

// ScrollerKeymap has dedicated paging keys, so Enter does nothing
func ScrollerKeymap() Keymap {
	return Keymap{
		types.KeyDown:      types.ActionLineDown,
		types.KeyUp:        types.ActionLineUp,
		types.KeyPageDown:  types.ActionPageDown,
		types.KeyPageUp:    types.ActionPageUp,
		types.KeyHome:      types.ActionHome,
		types.KeyEnd:       types.ActionEnd,
		types.KeyQuit:      types.ActionQuit,
		types.KeyEscape:    types.ActionQuit,
		types.KeyInterrupt: types.ActionQuit,
	}
}
