package types

// Action is what the loop should do in response to one key
type Action int

const (
	ActionNone Action = iota
	ActionLineDown
	ActionLineUp
	ActionPageDown
	ActionPageUp
	ActionHome
	ActionEnd
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionLineDown:
		return "line_down"
	case ActionLineUp:
		return "line_up"
	case ActionPageDown:
		return "page_down"
	case ActionPageUp:
		return "page_up"
	case ActionHome:
		return "home"
	case ActionEnd:
		return "end"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Moves reports whether the action can change the scroll position
func (a Action) Moves() bool {
	return a != ActionNone && a != ActionQuit
}
