package types

// Mode selects which keymap interprets keys
type Mode int

const (
	ModePager Mode = iota
	ModeScroller
)

func (m Mode) String() string {
	if m == ModePager {
		return "more"
	}
	return "scroll"
}

// Key is a decoded physical key, independent of where it was read from
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyEscape
	KeyQuit      // q or Q
	KeyInterrupt // Ctrl+C
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyPageUp:
		return "pgup"
	case KeyPageDown:
		return "pgdown"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	case KeyQuit:
		return "q"
	case KeyInterrupt:
		return "ctrl+c"
	default:
		return "none"
	}
}

// ActionSource yields one action per call, blocking until a key arrives
type ActionSource interface {
	NextAction() (Action, error)
}
